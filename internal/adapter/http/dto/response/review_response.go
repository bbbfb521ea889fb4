package response

import (
	"time"

	"loja_virtual/internal/domain/entities"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ProfileID string    `json:"profile_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewSummaryResponse struct {
	ProductID     string  `json:"product_id"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		ProfileID: r.ProfileID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func FromReviews(reviews []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, FromReview(r))
	}
	return out
}

func FromReviewSummary(s entities.ReviewSummary) ReviewSummaryResponse {
	return ReviewSummaryResponse{
		ProductID:     s.ProductID,
		Count:         s.Count,
		AverageRating: s.AverageRating,
	}
}
