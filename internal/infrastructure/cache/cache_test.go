package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

func TestMemoryStore_SetGetDelete(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, "q", "answer", time.Minute); err != nil {
		t.Fatal(err)
	}
	v, ok, err := s.Get(ctx, "q")
	if err != nil || !ok || v != "answer" {
		t.Fatalf("got %q %v %v", v, ok, err)
	}

	_ = s.Delete(ctx, "q")
	if _, ok, _ := s.Get(ctx, "q"); ok {
		t.Fatal("expected key removed")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	_ = s.Set(ctx, "short", "v", time.Millisecond)
	_ = s.Set(ctx, "forever", "v", 0)
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := s.Get(ctx, "short"); ok {
		t.Fatal("expected expired entry")
	}
	if _, ok, _ := s.Get(ctx, "forever"); !ok {
		t.Fatal("zero ttl should not expire")
	}
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Close()
	_ = s.Close()
}

func TestNewStore_DisabledUsesMemory(t *testing.T) {
	cfg := &config.Config{}
	store := NewStore(context.Background(), cfg, zap.NewNop())
	defer store.Close()

	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}
}

func TestNewStore_UnreachableRedisFallsBack(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: "1"}}
	store := NewStore(context.Background(), cfg, zap.NewNop())
	defer store.Close()

	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected fallback to memory store, got %T", store)
	}
}
