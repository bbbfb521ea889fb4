package entities

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ProfileID string    `json:"profile_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewSummary aggregates the reviews of one product.
type ReviewSummary struct {
	ProductID     string  `json:"product_id"`
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
