package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestCreateGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	sess := Session{
		SessionID: "sid-1",
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.Authenticated())
}

func TestGet_Missing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.Get(ctx, "never-created")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate_RejectsExpired(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Create(ctx, Session{
		SessionID: "sid-2",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
}

func TestUpdate_ClearsIdentity(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	sess := Session{
		SessionID: "sid-3",
		Username:  "alice",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	sess.Username = ""
	require.NoError(t, store.Update(ctx, sess))

	got, err := store.Get(ctx, "sid-3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Authenticated())
}

func TestDelete_RemovesSessionAndFlashes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	sess := Session{SessionID: "sid-4", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, store.Create(ctx, sess))
	require.NoError(t, store.PushFlash(ctx, "sid-4", Flash{Category: "success", Text: "hi"}))

	require.NoError(t, store.Delete(ctx, "sid-4"))

	got, err := store.Get(ctx, "sid-4")
	require.NoError(t, err)
	assert.Nil(t, got)

	flashes, err := store.DrainFlashes(ctx, "sid-4")
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestFlashes_DrainExactlyOnceInOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.PushFlash(ctx, "sid-5", Flash{Category: "danger", Text: "first"}))
	require.NoError(t, store.PushFlash(ctx, "sid-5", Flash{Category: "success", Text: "second"}))

	flashes, err := store.DrainFlashes(ctx, "sid-5")
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, Flash{Category: "danger", Text: "first"}, flashes[0])
	assert.Equal(t, Flash{Category: "success", Text: "second"}, flashes[1])

	// Second drain must come back empty; messages never replay.
	flashes, err = store.DrainFlashes(ctx, "sid-5")
	require.NoError(t, err)
	assert.Empty(t, flashes)
}
