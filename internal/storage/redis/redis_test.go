package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/mmynk/tutortrack/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := New(Options{Addr: mr.Addr(), Prefix: "tutortrack:"})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func TestRedisStore(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Read(ctx, storage.DefaultKey)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("write uses prefix", func(t *testing.T) {
		if err := s.Write(ctx, storage.DefaultKey, []byte(`{"notes":[]}`)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		got, err := mr.Get("tutortrack:" + storage.DefaultKey)
		if err != nil {
			t.Fatalf("miniredis Get failed: %v", err)
		}
		if got != `{"notes":[]}` {
			t.Errorf("stored value = %s", got)
		}
		if ttl := mr.TTL("tutortrack:" + storage.DefaultKey); ttl != 0 {
			t.Errorf("expected no expiry, got %v", ttl)
		}
	})

	t.Run("read returns written blob", func(t *testing.T) {
		blob, err := s.Read(ctx, storage.DefaultKey)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if string(blob) != `{"notes":[]}` {
			t.Errorf("Read = %s", blob)
		}
	})

	t.Run("server down surfaces error", func(t *testing.T) {
		mr.Close()
		if err := s.Write(ctx, storage.DefaultKey, []byte("x")); err == nil {
			t.Error("expected error when redis is unavailable")
		}
	})
}

func TestNew_Unreachable(t *testing.T) {
	_, err := New(Options{Addr: "127.0.0.1:1"})
	if err == nil {
		t.Fatal("expected connection error")
	}
}
