// Package redis provides a Redis-backed implementation of the storage.Store
// interface, for keeping the snapshot on another machine.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/tutortrack/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key.
	Prefix string
}

// Store keeps snapshot blobs as plain Redis strings.
type Store struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to Redis and runs a Ping health check.
func New(opts Options) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Store{rdb: rdb, prefix: opts.Prefix}, nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Read returns the blob stored under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return blob, nil
}

// Write replaces the blob stored under key. Snapshots never expire.
func (s *Store) Write(ctx context.Context, key string, blob []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}
	return nil
}
