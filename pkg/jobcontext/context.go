package jobcontext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyJobStartTime KeyContext = "job_start_time"
)

// JobBegin tags ctx with a fresh run id, the job type and the start time
func JobBegin(parentCtx context.Context, jobType string) context.Context {
	ctx := context.WithValue(parentCtx, keyJobID, uuid.New())
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx
}

// Retry runs fn until it succeeds, fails with a non-transient error or has
// been retried maxRetries times. Panics inside fn are returned as errors.
func Retry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func(context.Context) error) error {
	attempts := 0
	op := func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				err = backoff.Permanent(fmt.Errorf("panic recovered: %v", p))
			}
		}()

		if ctx.Err() != nil {
			return backoff.Permanent(fmt.Errorf("context cancelled before job execution: %w", ctx.Err()))
		}

		attempts++
		if err := fn(ctx); err != nil {
			if !IsTransientDBError(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = baseDelay
	bo.MaxInterval = 30 * time.Second

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxRetries)), ctx))
	if err != nil && attempts > maxRetries {
		return fmt.Errorf("max retries (%d) exceeded: %w", maxRetries, err)
	}
	return err
}

// Elapsed returns the time since JobBegin, or zero outside a job
func Elapsed(ctx context.Context) time.Duration {
	start, ok := ctx.Value(keyJobStartTime).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// Fields returns the job metadata as log fields
func Fields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id, ok := ctx.Value(keyJobID).(uuid.UUID); ok {
		fields = append(fields, zap.String("job_id", id.String()))
	}
	if jobType, ok := ctx.Value(keyJobType).(string); ok {
		fields = append(fields, zap.String("job_type", jobType))
	}
	return fields
}

// IsTransientDBError reports lock, serialization and connection failures
// that may succeed when the statement is run again
func IsTransientDBError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Connection errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Postgres serialization_failure (40001) and deadlock_detected (40P01)
	if strings.Contains(errStr, "deadlock") ||
		strings.Contains(errStr, "40001") ||
		strings.Contains(errStr, "40p01") {
		return true
	}

	// SQLite busy
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "sqlite_busy")
}
