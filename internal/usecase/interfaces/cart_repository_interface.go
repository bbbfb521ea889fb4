package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// ICartRepository abstracts the namespaced key-value cart storage.
//
// The namespace is the full storage key (cart-<identity> or cart-guest).
// Get returns an empty cart, not an error, for a namespace that was never
// written; Delete removes the persisted entry entirely.
type ICartRepository interface {
	Get(ctx context.Context, namespace string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) error
	Delete(ctx context.Context, namespace string) error
}
