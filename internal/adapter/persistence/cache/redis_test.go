package cache

import (
	"context"
	"testing"

	"loja_virtual/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *RedisCartCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCartCache(client)
}

func TestRedisCartCache_MissOnEmpty(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "cart-u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCartCache_SetGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	cart := entities.Cart{
		Namespace: "cart-u1",
		Items: []entities.LineItem{
			{ProductID: "p1", Name: "Mug", UnitPrice: 2500, Quantity: 2},
		},
	}
	require.NoError(t, c.Set(ctx, cart))

	got, err := c.Get(ctx, "cart-u1")
	require.NoError(t, err)
	assert.Equal(t, cart.Namespace, got.Namespace)
	require.Len(t, got.Items, 1)
	assert.Equal(t, cart.Items[0], got.Items[0])
}

func TestRedisCartCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entities.Cart{Namespace: "cart-u1"}))
	require.NoError(t, c.Delete(ctx, "cart-u1"))

	_, err := c.Get(ctx, "cart-u1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

// stubCartRepo counts calls so cache hit/miss behavior is observable.
type stubCartRepo struct {
	gets  int
	carts map[string]entities.Cart
}

func (s *stubCartRepo) Get(_ context.Context, namespace string) (entities.Cart, error) {
	s.gets++
	return s.carts[namespace], nil
}

func (s *stubCartRepo) Save(_ context.Context, cart entities.Cart) error {
	s.carts[cart.Namespace] = cart
	return nil
}

func (s *stubCartRepo) Delete(_ context.Context, namespace string) error {
	delete(s.carts, namespace)
	return nil
}

func TestCachedCartRepository_WriteThrough(t *testing.T) {
	ctx := context.Background()
	base := &stubCartRepo{carts: map[string]entities.Cart{}}
	repo := NewCachedCartRepository(base, newTestCache(t))

	cart := entities.Cart{
		Namespace: "cart-u1",
		Items:     []entities.LineItem{{ProductID: "p1", UnitPrice: 100, Quantity: 1}},
	}
	require.NoError(t, repo.Save(ctx, cart))

	// First read is served from the cache, not the repository.
	got, err := repo.Get(ctx, "cart-u1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, got.Items)
	assert.Equal(t, 0, base.gets)
}

func TestCachedCartRepository_MissFallsBackAndBackfills(t *testing.T) {
	ctx := context.Background()
	base := &stubCartRepo{carts: map[string]entities.Cart{
		"cart-u2": {Namespace: "cart-u2", Items: []entities.LineItem{{ProductID: "p9", Quantity: 3}}},
	}}
	repo := NewCachedCartRepository(base, newTestCache(t))

	got, err := repo.Get(ctx, "cart-u2")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, base.gets)

	// Second read hits the backfilled cache entry.
	_, err = repo.Get(ctx, "cart-u2")
	require.NoError(t, err)
	assert.Equal(t, 1, base.gets)
}

func TestCachedCartRepository_DeleteEvicts(t *testing.T) {
	ctx := context.Background()
	base := &stubCartRepo{carts: map[string]entities.Cart{}}
	repo := NewCachedCartRepository(base, newTestCache(t))

	require.NoError(t, repo.Save(ctx, entities.Cart{Namespace: "cart-u1"}))
	require.NoError(t, repo.Delete(ctx, "cart-u1"))

	got, err := repo.Get(ctx, "cart-u1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
