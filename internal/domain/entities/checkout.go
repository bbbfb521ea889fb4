package entities

// CheckoutSessionLine mirrors one cart line (or the synthetic freight line)
// into the external payment provider's session.
type CheckoutSessionLine struct {
	Description string `json:"description"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// CheckoutSession is the request handed to the external payment provider.
// OrderID travels in the session's metadata/external reference so the
// reconciler can find the local order after redirect-back.
type CheckoutSession struct {
	OrderID string                `json:"order_id"`
	Lines   []CheckoutSessionLine `json:"lines"`
}

// CheckoutSessionResult carries the provider session id and the hosted
// payment page the caller's browser is redirected to.
type CheckoutSessionResult struct {
	SessionID  string `json:"session_id"`
	PaymentURL string `json:"payment_url"`
}

// SessionOutcome is the provider's view of a session after redirect-back.
// Status is the provider's raw payment status, mapped to an OrderStatus by
// the reconciler. OrderID is empty when the session carries no metadata.
type SessionOutcome struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
}
