package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/internal/adapters"
	"github.com/quez2777/hodos-360-website/internal/adapters/memory"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	store := memory.New()
	defer store.Close()
	ctx := context.Background()

	snap := &adapters.Snapshot{
		Token:     "tok-1",
		Action:    "seo.keywords",
		Params:    map[string]any{"practice_area": "Family Law"},
		Result:    domain.Result{domain.Text("hello")},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, snap.Action, got.Action)
	assert.Equal(t, "hello", got.Result[0].Text)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Load(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestStoreMissingToken(t *testing.T) {
	store := memory.New()
	defer store.Close()

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestStoreExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	store := memory.New(memory.WithTTL(time.Hour), memory.WithClock(clock))
	defer store.Close()
	ctx := context.Background()

	snap := &adapters.Snapshot{Token: "tok-2", Action: "bi.dashboard", Result: domain.Result{}}
	require.NoError(t, store.Save(ctx, snap))

	_, err := store.Load(ctx, "tok-2")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = store.Load(ctx, "tok-2")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
