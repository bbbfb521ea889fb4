package entities

import "time"

// OrderStatus is the local mirror of the payment outcome.
//
// An order is created as "processing" at checkout submission and moved to
// "paid" or "canceled" by the reconciler once the external payment session
// resolves. Orders are never deleted.

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// OrderItem is a snapshot of one cart line at order-creation time,
// immutable thereafter. Price is the unit price in minor units, decoupled
// from any later catalog change.
type OrderItem struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is the persisted record of a purchase. Address fields are
// denormalized onto the row at submission time.
type Order struct {
	ID               string      `json:"id"`
	ProfileID        string      `json:"profile_id"`
	Total            int64       `json:"total"`
	ShippingPrice    int64       `json:"shipping_price"`
	ShippingProvider string      `json:"shipping_provider"`
	Status           OrderStatus `json:"status"`
	PaymentMethod    string      `json:"payment_method,omitempty"`

	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Complement   string `json:"complement,omitempty"`

	Items []OrderItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
