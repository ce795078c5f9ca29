package bolt_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmynk/tutortrack/internal/storage"
	"github.com/mmynk/tutortrack/internal/storage/bolt"
)

func newTestStore(t *testing.T) (*bolt.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := bolt.New(path)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestReadMissing(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Read(context.Background(), storage.DefaultKey)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteRead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, "k", []byte("one")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Write(ctx, "k", []byte("two")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Read(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("expected latest write, got %q", got)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	s, path := newTestStore(t)
	ctx := context.Background()

	if err := s.Write(ctx, "k", []byte("kept")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Close()

	reopened, err := bolt.New(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Read(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "kept" {
		t.Fatalf("expected kept, got %q", got)
	}
}
