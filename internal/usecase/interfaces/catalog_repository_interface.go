package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// ICatalogRepository abstracts the read side of the product catalog mirror.
type ICatalogRepository interface {
	List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
}
