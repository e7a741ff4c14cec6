package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/internal/adapters"
	"github.com/quez2777/hodos-360-website/internal/adapters/redis"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	snap := &adapters.Snapshot{
		Token:     "tok-1",
		Action:    "legal.contract",
		Params:    map[string]any{"jurisdiction": "Nevada"},
		Result:    domain.Result{domain.Text("agreement")},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, snap.Action, got.Action)
	assert.Equal(t, "agreement", got.Result[0].Text)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Load(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestStoreMissingToken(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestStoreTTL(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	snap := &adapters.Snapshot{Token: "tok-2", Action: "bi.dashboard", Result: domain.Result{}}
	require.NoError(t, store.Save(ctx, snap))

	_, err := store.Load(ctx, "tok-2")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, "tok-2")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
