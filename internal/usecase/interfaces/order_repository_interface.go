package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// IOrderRepository abstracts Postgres persistence for orders.
//
// Create inserts the order header and one row per item atomically.
// UpdateStatus is used by the reconciler; it returns a zero order when the
// id does not exist.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByProfileID(ctx context.Context, profileID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentMethod string) (entities.Order, error)
}
