package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoCheckoutGateway implements the hosted-checkout flow on top of
// Mercado Pago preferences: a preference is the checkout session, its init
// point is the hosted payment page, and its external reference carries the
// local order id for reconciliation.

type MercadoPagoCheckoutGateway struct {
	preferences preference.Client
	payments    payment.Client
	resultURL   string
	mockMode    bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoCheckoutGateway)(nil)

func NewMercadoPagoCheckoutGateway(accessToken string) (*MercadoPagoCheckoutGateway, error) {
	resultURL := getenvDefault("CHECKOUT_RESULT_URL", "http://localhost:8080/v1/checkout/result")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoCheckoutGateway{mockMode: true, resultURL: resultURL}, nil
	}

	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoCheckoutGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		resultURL:   resultURL,
	}, nil
}

func (g *MercadoPagoCheckoutGateway) CreateSession(ctx context.Context, session entities.CheckoutSession) (entities.CheckoutSessionResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[checkout][gateway] mock session created session_id=%s order_id=%s lines=%d", id, session.OrderID, len(session.Lines))
		return entities.CheckoutSessionResult{
			SessionID:  id,
			PaymentURL: fmt.Sprintf("https://sandbox.example/checkout/%s", id),
		}, nil
	}

	if g == nil || g.preferences == nil {
		return entities.CheckoutSessionResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	items := make([]map[string]any, 0, len(session.Lines))
	for _, line := range session.Lines {
		items = append(items, map[string]any{
			"title":       line.Description,
			"quantity":    line.Quantity,
			"unit_price":  centsToUnits(line.UnitPrice),
			"currency_id": "BRL",
		})
	}

	// Built as a raw payload and decoded into the SDK request so the
	// wire schema stays in one place, independent of SDK struct churn.
	payload := map[string]any{
		"items":              items,
		"external_reference": session.OrderID,
		"metadata":           map[string]any{"order_id": session.OrderID},
		"back_urls": map[string]any{
			"success": g.resultURL,
			"pending": g.resultURL,
			"failure": g.resultURL,
		},
		"auto_return": "approved",
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return entities.CheckoutSessionResult{}, err
	}
	var req preference.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[checkout][gateway] payload decode failed err=%v", err)
		return entities.CheckoutSessionResult{}, err
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[checkout][gateway] preference create failed order_id=%s err=%v", session.OrderID, err)
		return entities.CheckoutSessionResult{}, err
	}

	log.Printf("[checkout][gateway] session created session_id=%s order_id=%s", resp.ID, session.OrderID)
	return entities.CheckoutSessionResult{SessionID: resp.ID, PaymentURL: resp.InitPoint}, nil
}

func (g *MercadoPagoCheckoutGateway) GetSessionOutcome(ctx context.Context, sessionID string) (entities.SessionOutcome, error) {
	if g != nil && g.mockMode {
		log.Printf("[checkout][gateway] mock outcome session_id=%s", sessionID)
		return entities.SessionOutcome{Status: "approved", PaymentMethod: "mock"}, nil
	}

	if g == nil || g.preferences == nil {
		return entities.SessionOutcome{}, ErrMercadoPagoGatewayNotConfigured
	}

	pref, err := g.preferences.Get(ctx, sessionID)
	if err != nil {
		log.Printf("[checkout][gateway] preference get failed session_id=%s err=%v", sessionID, err)
		return entities.SessionOutcome{}, err
	}

	outcome := entities.SessionOutcome{OrderID: pref.ExternalReference}

	search, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"preference_id": sessionID},
	})
	if err != nil {
		log.Printf("[checkout][gateway] payment search failed session_id=%s err=%v", sessionID, err)
		return entities.SessionOutcome{}, err
	}
	if search == nil || len(search.Results) == 0 {
		// No payment attempt yet: still pending from the session's view.
		outcome.Status = "pending"
		return outcome, nil
	}

	latest := search.Results[0]
	outcome.Status = latest.Status
	outcome.PaymentMethod = latest.PaymentMethodID
	log.Printf("[checkout][gateway] outcome resolved session_id=%s status=%s order_id=%s", sessionID, outcome.Status, outcome.OrderID)
	return outcome, nil
}

func centsToUnits(cents int64) float64 {
	return float64(cents) / 100
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
