package repository

import (
	"context"
	"database/sql"
	"fmt"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

type ReviewPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IReviewRepository = (*ReviewPostgresRepository)(nil)

func NewReviewPostgresRepository(db *sql.DB) *ReviewPostgresRepository {
	return &ReviewPostgresRepository{db: db}
}

func (r *ReviewPostgresRepository) Create(ctx context.Context, rev entities.Review) (entities.Review, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, product_id, profile_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rev.ID, rev.ProductID, rev.ProfileID, rev.Rating, rev.Comment, rev.CreatedAt,
	)
	if err != nil {
		return entities.Review{}, fmt.Errorf("insert review: %w", err)
	}
	return rev, nil
}

func (r *ReviewPostgresRepository) ListByProductID(ctx context.Context, productID string) ([]entities.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_id, profile_id, rating, comment, created_at
		 FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	var reviews []entities.Review
	for rows.Next() {
		var rev entities.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.ProfileID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return reviews, nil
}
