package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type IReviewUseCase interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	ListByProductID(ctx context.Context, productID string) ([]entities.Review, error)
	Summary(ctx context.Context, productID string) (entities.ReviewSummary, error)
}

type ReviewUseCase struct {
	repo    interfaces.IReviewRepository
	catalog interfaces.ICatalogRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository, catalog interfaces.ICatalogRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, catalog: catalog}
}

func (u *ReviewUseCase) Create(ctx context.Context, r entities.Review) (entities.Review, error) {
	r.ProductID = strings.TrimSpace(r.ProductID)
	if r.ProductID == "" {
		return entities.Review{}, ErrInvalidProductID
	}
	if pid := strings.TrimSpace(r.ProfileID); pid == "" || pid == entities.GuestIdentity {
		return entities.Review{}, ErrUnauthenticated
	}
	if r.Rating < 1 || r.Rating > 5 {
		return entities.Review{}, ErrInvalidRating
	}

	product, err := u.catalog.GetByID(ctx, r.ProductID)
	if err != nil {
		return entities.Review{}, err
	}
	if product.ID == "" {
		return entities.Review{}, ErrProductNotFound
	}

	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, r)
}

func (u *ReviewUseCase) ListByProductID(ctx context.Context, productID string) ([]entities.Review, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, ErrInvalidProductID
	}
	return u.repo.ListByProductID(ctx, productID)
}

// Summary aggregates count and average rating over the product's reviews.
func (u *ReviewUseCase) Summary(ctx context.Context, productID string) (entities.ReviewSummary, error) {
	reviews, err := u.ListByProductID(ctx, productID)
	if err != nil {
		return entities.ReviewSummary{}, err
	}

	summary := entities.ReviewSummary{ProductID: productID, Count: len(reviews)}
	if len(reviews) == 0 {
		return summary, nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	summary.AverageRating = float64(sum) / float64(len(reviews))
	return summary, nil
}
