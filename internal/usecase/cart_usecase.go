package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

var (
	ErrInvalidLineItem  = errors.New("invalid line item")
	ErrLineItemNotFound = errors.New("line item not found")
)

// ICartUseCase maintains the authoritative cart for an identity.
//
// Every mutation persists the full cart under the identity's namespace
// before returning, so the persisted view never drifts from the returned
// one. Switching identity is just reading a different namespace; guest and
// authenticated carts are never merged.

type ICartUseCase interface {
	Get(ctx context.Context, identity string) (entities.Cart, error)
	AddItem(ctx context.Context, identity string, item entities.LineItem) (entities.Cart, error)
	RemoveItem(ctx context.Context, identity, productID string) (entities.Cart, error)
	ClearItem(ctx context.Context, identity, productID string) (entities.Cart, error)
	Clear(ctx context.Context, identity string) error
}

type CartUseCase struct {
	repo interfaces.ICartRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

func (u *CartUseCase) Get(ctx context.Context, identity string) (entities.Cart, error) {
	ns := entities.CartNamespace(identity)
	cart, err := u.repo.Get(ctx, ns)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.Namespace = ns
	return cart, nil
}

// AddItem merges by product id: an existing line has its quantity increased
// by the incoming quantity, a new product is appended.
func (u *CartUseCase) AddItem(ctx context.Context, identity string, item entities.LineItem) (entities.Cart, error) {
	item.ProductID = strings.TrimSpace(item.ProductID)
	if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice < 0 {
		return entities.Cart{}, ErrInvalidLineItem
	}

	cart, err := u.Get(ctx, identity)
	if err != nil {
		return entities.Cart{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return u.save(ctx, cart)
}

// RemoveItem decrements the line's quantity by exactly 1, removing the line
// when it was at 1. The asymmetry with AddItem (which accepts any quantity)
// matches the single-step decrement the storefront exposes.
func (u *CartUseCase) RemoveItem(ctx context.Context, identity, productID string) (entities.Cart, error) {
	return u.mutateLine(ctx, identity, productID, func(cart *entities.Cart, i int) {
		if cart.Items[i].Quantity > 1 {
			cart.Items[i].Quantity--
			return
		}
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	})
}

// ClearItem removes the line unconditionally, whatever its quantity.
func (u *CartUseCase) ClearItem(ctx context.Context, identity, productID string) (entities.Cart, error) {
	return u.mutateLine(ctx, identity, productID, func(cart *entities.Cart, i int) {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	})
}

// Clear empties the cart and deletes the persisted entry for the namespace.
// Used after a successful payment.
func (u *CartUseCase) Clear(ctx context.Context, identity string) error {
	ns := entities.CartNamespace(identity)
	log.Printf("[cart][usecase] clear namespace=%s", ns)
	return u.repo.Delete(ctx, ns)
}

func (u *CartUseCase) mutateLine(ctx context.Context, identity, productID string, mutate func(cart *entities.Cart, i int)) (entities.Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Cart{}, ErrInvalidLineItem
	}

	cart, err := u.Get(ctx, identity)
	if err != nil {
		return entities.Cart{}, err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			mutate(&cart, i)
			return u.save(ctx, cart)
		}
	}
	return entities.Cart{}, ErrLineItemNotFound
}

func (u *CartUseCase) save(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	cart.UpdatedAt = time.Now().UTC()
	if err := u.repo.Save(ctx, cart); err != nil {
		log.Printf("[cart][usecase] save failed namespace=%s err=%v", cart.Namespace, err)
		return entities.Cart{}, err
	}
	return cart, nil
}
