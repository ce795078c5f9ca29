package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/tutortrack/internal/models"
)

// Gateway loads and saves the whole domain snapshot through a Store.
type Gateway struct {
	store Store
	key   string
}

// NewGateway creates a Gateway writing under key (DefaultKey when empty).
func NewGateway(store Store, key string) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	return &Gateway{store: store, key: key}
}

// Load reads and normalizes the snapshot. A store that has never been written
// yields an empty snapshot and no error.
func (g *Gateway) Load(ctx context.Context) (*models.Snapshot, error) {
	blob, err := g.store.Read(ctx, g.key)
	if errors.Is(err, ErrNotFound) {
		return models.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	snap, err := Decode(blob)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Save serializes and writes the snapshot.
func (g *Gateway) Save(ctx context.Context, snap *models.Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := g.store.Write(ctx, g.key, blob); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying store.
func (g *Gateway) Close() error {
	return g.store.Close()
}
