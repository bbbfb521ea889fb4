package entities

import "time"

// Product is a row of the local catalog mirror. Price is in minor units.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Image       string    `json:"image,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductFilter narrows catalog listings. Name matches case-insensitively
// as a substring.
type ProductFilter struct {
	Name   string
	Limit  int
	Offset int
}
