package response

import (
	"time"

	"loja_virtual/internal/domain/entities"
)

type ProfileResponse struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Address   *entities.Address `json:"address,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Role:      string(p.Role),
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
	}
}
