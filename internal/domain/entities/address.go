package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Address is a delivery address. All fields except Complement are required
// before freight can be computed or checkout finalized.
type Address struct {
	ID           string    `json:"id,omitempty"`
	PostalCode   string    `json:"postal_code"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	Region       string    `json:"region"`
	Complement   string    `json:"complement,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// Validate returns a per-field error map. The address is valid when the map
// is empty.
func (a Address) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(a.Street) == "" {
		errs["street"] = "street is required"
	}
	if strings.TrimSpace(a.Number) == "" {
		errs["number"] = "number is required"
	}
	if strings.TrimSpace(a.Neighborhood) == "" {
		errs["neighborhood"] = "neighborhood is required"
	}
	if strings.TrimSpace(a.City) == "" {
		errs["city"] = "city is required"
	}
	if strings.TrimSpace(a.Region) == "" {
		errs["region"] = "region is required"
	}
	return errs
}

// Fingerprint hashes every user-editable field. A freight quote carries the
// fingerprint of the address it was computed for; any later edit changes the
// fingerprint and invalidates the quote.
func (a Address) Fingerprint() string {
	fields := []string{
		a.PostalCode,
		a.Street,
		a.Number,
		a.Neighborhood,
		a.City,
		a.Region,
		a.Complement,
	}
	for i, f := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(f))
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

// PostalAddress is the subset of address fields resolved by the external
// postal-code lookup. A zero Region means the code was not found.
type PostalAddress struct {
	Street       string
	Neighborhood string
	City         string
	Region       string
}
