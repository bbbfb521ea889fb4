package usecase

import (
	"context"
	"errors"
	"strings"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
)

// IOrderUseCase reads the caller's order history. Orders belong to exactly
// one profile; reading someone else's order reports not-found rather than
// leaking its existence.

type IOrderUseCase interface {
	GetByID(ctx context.Context, profileID, orderID string) (entities.Order, error)
	ListByProfile(ctx context.Context, profileID string) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) GetByID(ctx context.Context, profileID, orderID string) (entities.Order, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return entities.Order{}, ErrUnauthorized
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" || o.ProfileID != profileID {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByProfile(ctx context.Context, profileID string) ([]entities.Order, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return nil, ErrUnauthorized
	}
	return u.repo.ListByProfileID(ctx, profileID)
}
