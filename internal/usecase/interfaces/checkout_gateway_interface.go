package interfaces

import (
	"context"
	"loja_virtual/internal/domain/entities"
)

// ICheckoutGateway abstracts the external payment provider's hosted
// checkout (e.g. Mercado Pago preferences).
//
// CreateSession submits the cart lines plus the synthetic freight line and
// returns the hosted payment page URL. GetSessionOutcome retrieves the
// session after redirect-back: the provider's raw payment status, the
// payment method used, and the order id carried in the session metadata.
type ICheckoutGateway interface {
	CreateSession(ctx context.Context, session entities.CheckoutSession) (entities.CheckoutSessionResult, error)
	GetSessionOutcome(ctx context.Context, sessionID string) (entities.SessionOutcome, error)
}
