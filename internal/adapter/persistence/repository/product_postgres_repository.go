package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

// ProductPostgresRepository reads the local catalog mirror. The mirror is
// seeded out of band; the API never writes it.

type ProductPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICatalogRepository = (*ProductPostgresRepository)(nil)

func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{db: db}
}

func (r *ProductPostgresRepository) List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, price, image, stock, created_at
		 FROM products
		 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		 ORDER BY name
		 LIMIT $2 OFFSET $3`,
		filter.Name, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []entities.Product
	for rows.Next() {
		var p entities.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return products, nil
}

func (r *ProductPostgresRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var p entities.Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, price, image, stock, created_at FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Product{}, nil
		}
		return entities.Product{}, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}
