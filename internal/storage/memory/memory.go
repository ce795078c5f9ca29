// Package memory provides an in-process implementation of the storage.Store
// interface. Nothing survives a restart; it backs tests and throwaway sessions.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/tutortrack/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps blobs in a map.
type Store struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	writes   int
	writeErr error
}

// New creates an empty Store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Read returns a copy of the blob stored under key.
func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

// Write stores a copy of blob under key, or fails with the error set by FailWrites.
func (s *Store) Write(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}
	s.blobs[key] = append([]byte(nil), blob...)
	s.writes++
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// FailWrites makes every following Write return err. Pass nil to recover.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Writes returns the number of successful writes.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
