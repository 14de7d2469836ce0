package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidName is returned for download names that escape their directory
var ErrInvalidName = errors.New("invalid file name")

const (
	audioSubdir = "audio"
	ttsSubdir   = "tts"
)

// LocalStore keeps uploads and generated exports on the local disk
type LocalStore struct {
	uploadDir string
	exportDir string
}

// NewLocalStore creates the upload, audio, tts and export directories
func NewLocalStore(uploadDir, exportDir string) (*LocalStore, error) {
	s := &LocalStore{uploadDir: uploadDir, exportDir: exportDir}
	for _, dir := range []string{uploadDir, s.AudioDir(), s.TTSDir(), exportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return s, nil
}

func (s *LocalStore) UploadDir() string { return s.uploadDir }
func (s *LocalStore) ExportDir() string { return s.exportDir }
func (s *LocalStore) AudioDir() string  { return filepath.Join(s.uploadDir, audioSubdir) }
func (s *LocalStore) TTSDir() string    { return filepath.Join(s.uploadDir, ttsSubdir) }

// SaveUpload stores media as <uuid>_<basename> under the upload directory
func (s *LocalStore) SaveUpload(originalName string, r io.Reader) (string, error) {
	base := filepath.Base(filepath.Clean("/" + originalName))
	if base == "/" || base == "." {
		base = "upload"
	}
	return writeFile(filepath.Join(s.uploadDir, uuid.NewString()+"_"+base), r)
}

// SaveAudio stores audio under uploads/audio with a uuid name, keeping the
// extension (.mp3 when there is none)
func (s *LocalStore) SaveAudio(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".mp3"
	}
	return writeFile(filepath.Join(s.AudioDir(), uuid.NewString()+ext), r)
}

// SaveTTS stores synthesized speech as uploads/tts/tts_<uuid><ext>
func (s *LocalStore) SaveTTS(data []byte, ext string) (string, error) {
	name := fmt.Sprintf("tts_%s%s", uuid.NewString(), ext)
	path := filepath.Join(s.TTSDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportPath returns the path of a named export inside the export directory
func (s *LocalStore) ExportPath(name string) (string, error) {
	return within(s.exportDir, name)
}

// TTSPath returns the path of a named TTS file inside uploads/tts
func (s *LocalStore) TTSPath(name string) (string, error) {
	return within(s.TTSDir(), name)
}

// Exists reports whether path is an existing regular file
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func within(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrInvalidName
	}
	return filepath.Join(dir, name), nil
}

func writeFile(path string, r io.Reader) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
