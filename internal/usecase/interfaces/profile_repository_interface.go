package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// IProfileRepository abstracts Postgres persistence for profiles and their
// linked addresses.
//
// UpsertAddress writes the profile's address (insert on first use, update
// after) and links it to the profile row.
type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	UpsertAddress(ctx context.Context, profileID string, addr entities.Address) (entities.Address, error)
}
