package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"loja_virtual/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

type RedisCartCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ CartCache = (*RedisCartCache)(nil)

func NewRedisCartCache(client *redis.Client) *RedisCartCache {
	return &RedisCartCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

func (c *RedisCartCache) Get(ctx context.Context, namespace string) (entities.Cart, error) {
	data, err := c.client.Get(ctx, namespace).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Cart{}, ErrCacheMiss
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("redis get failed: %w", err)
	}

	var cart entities.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return entities.Cart{}, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return cart, nil
}

func (c *RedisCartCache) Set(ctx context.Context, cart entities.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// Jitter spreads expirations of carts written in the same burst.
	ttl := c.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := c.client.Set(ctx, cart.Namespace, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *RedisCartCache) Delete(ctx context.Context, namespace string) error {
	if err := c.client.Del(ctx, namespace).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
