package data

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheRepo(t *testing.T) (*RedisCacheRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheRepo(client), mr
}

func TestRedisCacheRepo_SetGet(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "featured-jobs", []byte(`[{"company":"Acme"}]`), time.Minute))

	got, err := repo.Get(ctx, "featured-jobs")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"company":"Acme"}]`), got)
}

func TestRedisCacheRepo_GetMissingKey(t *testing.T) {
	repo, _ := newCacheRepo(t)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_Expiry(t *testing.T) {
	repo, mr := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "featured-jobs", []byte("x"), time.Second))
	mr.FastForward(2 * time.Second)

	got, err := repo.Get(ctx, "featured-jobs")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCacheRepo_Delete(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), 0))

	deleted, err := repo.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRedisCacheRepo_EmptyKey(t *testing.T) {
	repo, _ := newCacheRepo(t)
	ctx := context.Background()

	require.Error(t, repo.Set(ctx, "", []byte("v"), 0))
	_, err := repo.Get(ctx, "")
	require.Error(t, err)
	_, err = repo.Delete(ctx, "")
	require.Error(t, err)
}
