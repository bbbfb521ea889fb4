package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"
)

var (
	ErrInvalidPostalCode  = errors.New("invalid postal code")
	ErrPostalCodeNotFound = errors.New("postal code not found")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrUnknownCarrier     = errors.New("unknown freight carrier")
	ErrStaleFreightQuote  = errors.New("freight quote is stale")
)

// IFreightUseCase converts a postal code + address into freight options.
//
// Pricing is a deterministic simulation over the region resolved by the
// postal lookup; there is no real carrier integration. Quotes carry the
// fingerprint of the address they were priced for: any later address edit
// makes the fingerprint stale and forces a fresh computation.

type IFreightUseCase interface {
	ValidateAddress(addr entities.Address) map[string]string
	ComputeFreight(ctx context.Context, addr entities.Address) (entities.FreightQuote, error)
	SelectOption(addr entities.Address, fingerprint, carrier string) (entities.FreightOption, error)
}

type FreightUseCase struct {
	lookup interfaces.IPostalLookup
}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase(lookup interfaces.IPostalLookup) *FreightUseCase {
	return &FreightUseCase{lookup: lookup}
}

func (u *FreightUseCase) ValidateAddress(addr entities.Address) map[string]string {
	return addr.Validate()
}

// ComputeFreight normalizes the postal code, resolves the region through
// the external lookup and prices the three tiers for it. Lookup fields
// backfill only the address fields the caller left empty; caller input
// always wins over the lookup's suggestion.
func (u *FreightUseCase) ComputeFreight(ctx context.Context, addr entities.Address) (entities.FreightQuote, error) {
	code := normalizePostalCode(addr.PostalCode)
	if len(code) != 8 {
		return entities.FreightQuote{}, ErrInvalidPostalCode
	}
	addr.PostalCode = code

	resolved, err := u.lookup.Lookup(ctx, code)
	if err != nil {
		log.Printf("[freight][usecase] postal lookup failed postal_code=%s err=%v", code, err)
		return entities.FreightQuote{}, err
	}
	if resolved.Region == "" {
		return entities.FreightQuote{}, ErrPostalCodeNotFound
	}

	if strings.TrimSpace(addr.Street) == "" {
		addr.Street = resolved.Street
	}
	if strings.TrimSpace(addr.Neighborhood) == "" {
		addr.Neighborhood = resolved.Neighborhood
	}
	if strings.TrimSpace(addr.City) == "" {
		addr.City = resolved.City
	}
	if strings.TrimSpace(addr.Region) == "" {
		addr.Region = resolved.Region
	}

	quote := entities.FreightQuote{
		Address:     addr,
		Options:     entities.FreightOptionsFor(addr.Region),
		Fingerprint: addr.Fingerprint(),
	}
	log.Printf("[freight][usecase] quote computed postal_code=%s region=%s options=%d", code, addr.Region, len(quote.Options))
	return quote, nil
}

// SelectOption re-validates the address and checks the quote is still for
// the current address before confirming a tier. An invalid address clears
// any selection.
func (u *FreightUseCase) SelectOption(addr entities.Address, fingerprint, carrier string) (entities.FreightOption, error) {
	if errs := addr.Validate(); len(errs) > 0 {
		return entities.FreightOption{}, ErrInvalidAddress
	}

	addr.PostalCode = normalizePostalCode(addr.PostalCode)
	if addr.Fingerprint() != fingerprint {
		return entities.FreightOption{}, ErrStaleFreightQuote
	}

	for _, opt := range entities.FreightOptionsFor(addr.Region) {
		if opt.Carrier == carrier {
			return opt, nil
		}
	}
	return entities.FreightOption{}, ErrUnknownCarrier
}

func normalizePostalCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
