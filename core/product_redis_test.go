package core

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisRepo(t *testing.T) *RedisProductRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisProductRepository(client)
}

func TestRedisProductRepository_AddAssignsSequentialIDs(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	p1, err := repo.Add(ctx, "Keyboard", 49.90, "electronics")
	require.NoError(t, err)
	p2, err := repo.Add(ctx, "Mug", 7.50, "kitchen")
	require.NoError(t, err)

	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)
	assert.Equal(t, "Keyboard", p1.Name)
	assert.Equal(t, 49.90, p1.Price)
	assert.Equal(t, "electronics", p1.Category)
	assert.False(t, p1.CreatedAt.IsZero())
}

func TestRedisProductRepository_ListOrderedByID(t *testing.T) {
	repo := newTestRedisRepo(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Add(ctx, name, 1, "misc")
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].Name, items[1].Name, items[2].Name})
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Less(t, items[1].ID, items[2].ID)
}

func TestRedisProductRepository_ListEmpty(t *testing.T) {
	repo := newTestRedisRepo(t)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items, "absence is an empty collection, not an error")
	assert.Empty(t, items)
}
