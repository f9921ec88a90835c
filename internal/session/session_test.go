package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()
	created, err := s.Create(ctx, 7, true)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, uint64(7), created.UserID)
	assert.True(t, created.IsAdmin)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, got.UserID)
	assert.True(t, got.IsAdmin)

	require.NoError(t, s.Destroy(ctx, created.ID))
	_, err = s.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// destroying twice is harmless
	require.NoError(t, s.Destroy(ctx, created.ID))

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Hour)
	m.now = func() time.Time { return now }

	s, err := m.Create(context.Background(), 1, true)
	require.NoError(t, err)
	other, err := m.Create(context.Background(), 2, true)
	require.NoError(t, err)

	now = now.Add(59 * time.Minute)
	_, err = m.Get(context.Background(), s.ID)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = m.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, m.Prune())
	_, err = m.Get(context.Background(), other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewRedisStore(rdb, "test-sess", 30*time.Minute)
	exerciseStore(t, store)

	s, err := store.Create(context.Background(), 3, true)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test-sess:"+s.ID))
	assert.Equal(t, 30*time.Minute, mr.TTL("test-sess:"+s.ID))

	mr.FastForward(31 * time.Minute)
	_, err = store.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
