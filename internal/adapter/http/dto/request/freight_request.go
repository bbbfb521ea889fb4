package request

import "loja_virtual/internal/domain/entities"

// AddressRequest is the delivery address as typed by the client. Street,
// neighborhood, city and region may be blank on a quote request; the
// postal lookup backfills them.
type AddressRequest struct {
	PostalCode   string `json:"postal_code" binding:"required"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Complement   string `json:"complement"`
}

func (r AddressRequest) ToAddress() entities.Address {
	return entities.Address{
		PostalCode:   r.PostalCode,
		Street:       r.Street,
		Number:       r.Number,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		Region:       r.Region,
		Complement:   r.Complement,
	}
}

// FreightQuoteRequest computes shipping tiers for an address.
type FreightQuoteRequest struct {
	Address AddressRequest `json:"address" binding:"required"`
}

// FreightSelectionRequest pins one carrier tier against a previously
// computed quote. The fingerprint is the one returned by the quote; a
// mismatch means the address changed since.
type FreightSelectionRequest struct {
	Address     AddressRequest `json:"address" binding:"required"`
	Fingerprint string         `json:"fingerprint" binding:"required"`
	Carrier     string         `json:"carrier" binding:"required"`
}
