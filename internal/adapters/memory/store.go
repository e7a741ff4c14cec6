// Package memory provides the in-process snapshot store used when no Redis
// backend is configured. Suitable for a single-instance demo; snapshots do
// not survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quez2777/hodos-360-website/internal/adapters"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Store implements adapters.SnapshotStore in memory.
type Store struct {
	mu    sync.RWMutex
	snaps map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

type entry struct {
	snap      *adapters.Snapshot
	expiresAt time.Time
}

type Option func(*Store)

// WithTTL sets the snapshot expiration. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithClock overrides the time source. Tests use this to force expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		snaps: make(map[string]entry),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stores the snapshot under its token.
func (s *Store) Save(_ context.Context, snap *adapters.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := entry{snap: snap}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.snaps[snap.Token] = e
	return nil
}

// Load retrieves a snapshot, treating an expired entry as absent. Expired
// entries are pruned lazily on access.
func (s *Store) Load(_ context.Context, token string) (*adapters.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.snaps[token]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.snaps, token)
		return nil, domain.ErrSnapshotNotFound
	}
	return e.snap, nil
}

// Delete removes a snapshot.
func (s *Store) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, token)
	return nil
}

// Close releases the store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = make(map[string]entry)
	return nil
}
