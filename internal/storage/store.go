// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Read when nothing was ever written under the key.
var ErrNotFound = errors.New("snapshot not found")

// DefaultKey is the key the snapshot blob is stored under.
const DefaultKey = "tutorTrackerData"

// Store defines the interface for raw snapshot storage.
// The whole domain state is one serialized blob under one key, so a backend
// only needs key/value semantics. This abstraction allows swapping storage
// backends (SQLite, BoltDB, Redis, memory) without changing the tracker.
type Store interface {
	// Read returns the blob stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write replaces the blob stored under key.
	Write(ctx context.Context, key string, blob []byte) error

	// Close releases any resources held by the store.
	Close() error
}
