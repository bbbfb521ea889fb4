package response

import "loja_virtual/internal/usecase"

type CheckoutResponse struct {
	OrderID    string `json:"order_id"`
	SessionID  string `json:"session_id"`
	PaymentURL string `json:"payment_url"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:    r.Order.ID,
		SessionID:  r.SessionID,
		PaymentURL: r.PaymentURL,
	}
}

// CheckoutResultResponse is what the post-payment result page renders. The
// order is omitted when the session carried no known local order.
type CheckoutResultResponse struct {
	Status string         `json:"status"`
	Order  *OrderResponse `json:"order,omitempty"`
}

func FromReconcileResult(r usecase.ReconcileResult) CheckoutResultResponse {
	resp := CheckoutResultResponse{Status: string(r.Status)}
	if r.Order.ID != "" {
		order := FromOrder(r.Order)
		resp.Order = &order
	}
	return resp
}
