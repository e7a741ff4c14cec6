// Package adapters declares the ports implemented by the storage backends
// under this directory.
package adapters

import (
	"context"
	"time"

	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Snapshot is one shareable capture of a completed invocation: the action,
// the parameters it ran with, and the outputs it produced. Snapshots are
// immutable once saved and expire after the configured TTL.
type Snapshot struct {
	Token     string         `json:"token"`
	Action    string         `json:"action"`
	Params    map[string]any `json:"params,omitempty"`
	Result    domain.Result  `json:"result"`
	CreatedAt time.Time      `json:"created_at"`
}

// SnapshotStore persists share-link snapshots.
type SnapshotStore interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context, token string) (*Snapshot, error)
	Delete(ctx context.Context, token string) error
	Close() error
}
