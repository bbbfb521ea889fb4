package request

// CheckoutRequest submits the order: the (possibly just edited) delivery
// address, the carrier chosen from the quote, and that quote's fingerprint.
type CheckoutRequest struct {
	Address          AddressRequest `json:"address" binding:"required"`
	Carrier          string         `json:"carrier" binding:"required"`
	QuoteFingerprint string         `json:"quote_fingerprint" binding:"required"`
}
