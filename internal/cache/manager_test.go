package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testManager() *Manager {
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Minute})
	return NewManager(backend, nil, time.Minute)
}

func TestManagerSnapshot(t *testing.T) {
	m := testManager()
	defer m.Close()

	ctx := context.Background()

	if _, err := m.GetSnapshot(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("GetSnapshot empty = %v, want ErrCacheMiss", err)
	}

	payload := []byte(`{"projects":[]}`)
	if err := m.SetSnapshot(ctx, payload); err != nil {
		t.Fatalf("SetSnapshot: %v", err)
	}

	got, err := m.GetSnapshot(ctx)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("GetSnapshot = %q, want %q", got, payload)
	}

	m.InvalidateSnapshot(ctx)
	if _, err := m.GetSnapshot(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("GetSnapshot after invalidate = %v, want ErrCacheMiss", err)
	}
}

func TestManagerInvalidateContent(t *testing.T) {
	m := testManager()
	defer m.Close()

	ctx := context.Background()
	if err := m.SetSnapshot(ctx, []byte("data")); err != nil {
		t.Fatalf("SetSnapshot: %v", err)
	}

	m.InvalidateContent(ctx)
	if _, err := m.GetSnapshot(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Error("snapshot should be dropped by InvalidateContent")
	}
}

func TestNewCacheFallsBackToMemory(t *testing.T) {
	// An unreachable Redis URL must not prevent startup.
	c := NewCache(Config{
		RedisURL:   "redis://127.0.0.1:1/0",
		DefaultTTL: time.Minute,
	})
	defer c.Close()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("expected memory fallback, got %T", c)
	}
}
