package usecase

import (
	"context"
	"errors"
	"testing"

	"loja_virtual/internal/domain/entities"
	mock_interfaces "loja_virtual/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("requires identity", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		if _, err := uc.GetByID(context.Background(), "", "o1"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o404").Return(entities.Order{}, nil)

		if _, err := uc.GetByID(context.Background(), "u1", "o404"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("somebody else's order reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", ProfileID: "other"}, nil)

		if _, err := uc.GetByID(context.Background(), "u1", "o1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("owner reads the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", ProfileID: "u1", Total: 21490}, nil)

		o, err := uc.GetByID(context.Background(), "u1", "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Total != 21490 {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_ListByProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo)

	repo.EXPECT().ListByProfileID(gomock.Any(), "u1").Return([]entities.Order{{ID: "o1"}, {ID: "o2"}}, nil)

	orders, err := uc.ListByProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}
