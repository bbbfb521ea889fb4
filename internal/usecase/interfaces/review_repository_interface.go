package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.Review, error)
}
