package cache

import (
	"context"
	"errors"

	"loja_virtual/internal/domain/entities"
)

// CartCache is the read-through cache in front of the cart repository,
// keyed by the cart namespace.
type CartCache interface {
	Get(ctx context.Context, namespace string) (entities.Cart, error)
	Set(ctx context.Context, cart entities.Cart) error
	Delete(ctx context.Context, namespace string) error
}

var ErrCacheMiss = errors.New("cache miss")
