package storage

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// Archiver copies uploaded media and exports into a MinIO bucket
type Archiver struct {
	client    *minio.Client
	bucket    string
	publicURL string // e.g. https://minio.example.com when behind a proxy
}

// NewArchiver connects to MinIO and makes sure the bucket exists
func NewArchiver(ctx context.Context, cfg *config.StorageConfig) (*Archiver, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	a := &Archiver{client: client, bucket: cfg.BucketName, publicURL: cfg.PublicURL}
	if err := a.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return a, nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// ArchiveFile uploads the file at path as objectName
func (a *Archiver) ArchiveFile(ctx context.Context, objectName, path string) error {
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := a.client.FPutObject(ctx, a.bucket, objectName, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}

// GetFileURL returns a presigned download URL, rewritten onto the public
// endpoint when one is configured
func (a *Archiver) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return rewriteHost(u, a.publicURL), nil
}

// ListFiles lists object keys under prefix
func (a *Archiver) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	files := []string{}
	for object := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		files = append(files, object.Key)
	}
	return files, nil
}

// rewriteHost swaps scheme://endpoint for publicURL, keeping path and query
func rewriteHost(u *url.URL, publicURL string) string {
	if publicURL == "" {
		return u.String()
	}
	return publicURL + u.RequestURI()
}
