package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// IOrderEventPublisher emits order lifecycle events to the message broker.
//
// The reconciler publishes best effort: a publish failure is logged and
// never fails the reconciliation itself.
type IOrderEventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, o entities.Order) error
}
