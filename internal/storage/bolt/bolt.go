// Package bolt provides a BoltDB-backed implementation of the storage.Store interface.
//
// BoltDB is an embedded key/value store. All data is stored in a single file,
// so no external database process is required.
package bolt

import (
	"context"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/mmynk/tutortrack/internal/storage"
)

const bucketName = "snapshots"

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store wraps a BoltDB database holding one bucket of snapshot blobs.
type Store struct {
	db *bolt.DB
}

// New opens (or creates) a BoltDB database at the given path and ensures the
// snapshots bucket exists.
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

// Read returns a copy of the blob stored under key.
func (s *Store) Read(_ context.Context, key string) ([]byte, error) {
	var blob []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return storage.ErrNotFound
		}
		// Values are only valid for the life of the transaction
		blob = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return blob, nil
}

// Write replaces the blob stored under key.
func (s *Store) Write(_ context.Context, key string, blob []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), blob)
	})
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}
