package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// IPostalLookup abstracts the public postal-code service (ViaCEP-shaped).
//
// Lookup takes an already-normalized 8-digit code. A zero-value result with
// a nil error means the service resolved nothing for the code.
type IPostalLookup interface {
	Lookup(ctx context.Context, postalCode string) (entities.PostalAddress, error)
}
