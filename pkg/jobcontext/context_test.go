package jobcontext

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJobBegin_Fields(t *testing.T) {
	ctx := JobBegin(context.Background(), "upload")

	if len(Fields(ctx)) != 2 {
		t.Fatalf("expected job_id and job_type fields")
	}
	if Elapsed(ctx) < 0 {
		t.Fatal("elapsed should not be negative")
	}
	if Fields(context.Background()) != nil {
		t.Fatalf("no fields outside a job")
	}
	if Elapsed(context.Background()) != 0 {
		t.Fatalf("elapsed outside a job should be zero")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("recovers from transient errors", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 2, time.Millisecond, func(context.Context) error {
			calls++
			if calls < 2 {
				return errors.New("database is locked")
			}
			return nil
		})
		if err != nil || calls != 2 {
			t.Fatalf("err=%v calls=%d", err, calls)
		}
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 2, time.Millisecond, func(context.Context) error {
			calls++
			return errors.New("UNIQUE constraint failed")
		})
		if err == nil || calls != 1 {
			t.Fatalf("err=%v calls=%d", err, calls)
		}
	})

	t.Run("gives up after the budget", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 2, time.Millisecond, func(context.Context) error {
			calls++
			return errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")
		})
		if err == nil || !strings.Contains(err.Error(), "max retries") || calls != 3 {
			t.Fatalf("err=%v calls=%d", err, calls)
		}
	})

	t.Run("recovers panics", func(t *testing.T) {
		err := Retry(ctx, 2, time.Millisecond, func(context.Context) error { panic("boom") })
		if err == nil || !strings.Contains(err.Error(), "panic recovered") {
			t.Fatalf("err=%v", err)
		}
	})
}

func TestIsTransientDBError(t *testing.T) {
	cases := map[string]bool{
		"dial tcp: connection refused":       true,
		"ERROR: deadlock detected (40P01)":   true,
		"database is locked (SQLITE_BUSY)":   true,
		"groq returned status 503":           false,
		"status 429 too many requests":       false,
		"record not found":                   false,
		"UNIQUE constraint failed: meetings": false,
	}
	for msg, want := range cases {
		if got := IsTransientDBError(errors.New(msg)); got != want {
			t.Errorf("%q: got %v want %v", msg, got, want)
		}
	}
	if IsTransientDBError(nil) {
		t.Error("nil is not transient")
	}
}
