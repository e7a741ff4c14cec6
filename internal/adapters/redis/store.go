// Package redis provides the Redis-backed snapshot store, used when share
// links must survive restarts or be served by multiple instances.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/quez2777/hodos-360-website/internal/adapters"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Store implements adapters.SnapshotStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the snapshot expiration. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithPrefix sets the key prefix for snapshots.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client. Tests pass a
// client pointed at miniredis.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "hodos:snapshot:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(token string) string {
	return s.prefix + token
}

// Save persists the snapshot with the configured TTL.
func (s *Store) Save(ctx context.Context, snap *adapters.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key(snap.Token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("saving snapshot to redis: %w", err)
	}
	return nil
}

// Load retrieves a snapshot. A missing or expired key maps onto
// domain.ErrSnapshotNotFound.
func (s *Store) Load(ctx context.Context, token string) (*adapters.Snapshot, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("loading snapshot from redis: %w", err)
	}
	var snap adapters.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes a snapshot.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
