package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_virtual/internal/domain/entities"
	mock_interfaces "loja_virtual/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memCartRepo is an in-memory ICartRepository used to exercise full
// mutation sequences, checking the persisted view stays equal to the
// returned one.
type memCartRepo struct {
	store map[string]entities.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{store: map[string]entities.Cart{}}
}

func (r *memCartRepo) Get(_ context.Context, namespace string) (entities.Cart, error) {
	return r.store[namespace], nil
}

func (r *memCartRepo) Save(_ context.Context, cart entities.Cart) error {
	r.store[cart.Namespace] = cart
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, namespace string) error {
	delete(r.store, namespace)
	return nil
}

func TestCartUseCase_AddItem(t *testing.T) {
	t.Run("invalid item", func(t *testing.T) {
		uc := NewCartUseCase(newMemCartRepo())
		if _, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "", Quantity: 1}); !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
		if _, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Quantity: 0}); !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("append then merge by product id", func(t *testing.T) {
		repo := newMemCartRepo()
		uc := NewCartUseCase(repo)

		cart, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Name: "Mug", UnitPrice: 2500, Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
			t.Fatalf("unexpected cart: %+v", cart)
		}

		cart, err = uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Name: "Mug", UnitPrice: 2500, Quantity: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected merge, got duplicate lines: %+v", cart.Items)
		}
		if cart.Items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", cart.Items[0].Quantity)
		}
	})

	t.Run("repo save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "cart-u1").Return(entities.Cart{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("dynamo"))

		if _, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Quantity: 1}); err == nil || err.Error() != "dynamo" {
			t.Fatalf("expected dynamo error, got %v", err)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	t.Run("decrements by exactly 1", func(t *testing.T) {
		repo := newMemCartRepo()
		uc := NewCartUseCase(repo)
		if _, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Quantity: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cart, err := uc.RemoveItem(context.Background(), "u1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Items[0].Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
		}
	})

	t.Run("removes line at quantity 1", func(t *testing.T) {
		repo := newMemCartRepo()
		uc := NewCartUseCase(repo)
		if _, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Quantity: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cart, err := uc.RemoveItem(context.Background(), "u1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cart.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", cart.Items)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := NewCartUseCase(newMemCartRepo())
		if _, err := uc.RemoveItem(context.Background(), "u1", "nope"); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})
}

func TestCartUseCase_ClearItem(t *testing.T) {
	repo := newMemCartRepo()
	uc := NewCartUseCase(repo)
	if _, err := uc.AddItem(context.Background(), "u1", entities.LineItem{ProductID: "p1", Quantity: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cart, err := uc.ClearItem(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart after clear, got %+v", cart.Items)
	}
}

func TestCartUseCase_PersistedEqualsReturned(t *testing.T) {
	repo := newMemCartRepo()
	uc := NewCartUseCase(repo)
	ctx := context.Background()

	steps := []func() (entities.Cart, error){
		func() (entities.Cart, error) {
			return uc.AddItem(ctx, "u1", entities.LineItem{ProductID: "p1", UnitPrice: 100, Quantity: 2})
		},
		func() (entities.Cart, error) {
			return uc.AddItem(ctx, "u1", entities.LineItem{ProductID: "p2", UnitPrice: 300, Quantity: 1})
		},
		func() (entities.Cart, error) { return uc.RemoveItem(ctx, "u1", "p1") },
		func() (entities.Cart, error) { return uc.ClearItem(ctx, "u1", "p2") },
	}

	for i, step := range steps {
		returned, err := step()
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		persisted, err := uc.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		if len(persisted.Items) != len(returned.Items) {
			t.Fatalf("step %d: persisted drifted: %+v vs %+v", i, persisted.Items, returned.Items)
		}
		for j := range persisted.Items {
			if persisted.Items[j] != returned.Items[j] {
				t.Fatalf("step %d: item %d drifted: %+v vs %+v", i, j, persisted.Items[j], returned.Items[j])
			}
		}
	}
}

func TestCartUseCase_NamespacesNeverMerge(t *testing.T) {
	repo := newMemCartRepo()
	uc := NewCartUseCase(repo)
	ctx := context.Background()

	if _, err := uc.AddItem(ctx, "", entities.LineItem{ProductID: "p1", Quantity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.AddItem(ctx, "u1", entities.LineItem{ProductID: "p9", Quantity: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Switching identity reads exactly what the new namespace holds:
	// the guest cart stays guest, the user cart stays the user's.
	guest, err := uc.Get(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(guest.Items) != 1 || guest.Items[0].ProductID != "p1" {
		t.Fatalf("guest cart changed: %+v", guest.Items)
	}

	user, err := uc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(user.Items) != 1 || user.Items[0].ProductID != "p9" {
		t.Fatalf("user cart changed: %+v", user.Items)
	}

	fresh, err := uc.Get(ctx, "someone-else")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fresh.IsEmpty() {
		t.Fatalf("expected empty cart for fresh namespace, got %+v", fresh.Items)
	}
}

func TestCartUseCase_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICartRepository(ctrl)
	uc := NewCartUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), "cart-u1").Return(nil)

	if err := uc.Clear(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
