package entities

import "time"

// LineItem is one product entry in a cart. Identity is the product id;
// UnitPrice is in integer minor-currency units (centavos).
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

func (li LineItem) Subtotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// Cart is the ordered line-item collection for one namespace.
//
// The cart is client-authoritative until checkout: it is never validated
// against the catalog on read. Quantities are always > 0; an item that would
// reach quantity 0 is removed instead.
type Cart struct {
	Namespace string     `json:"namespace"`
	Items     []LineItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total returns the sum of line-item subtotals, without freight.
func (c Cart) Total() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

const GuestIdentity = "guest"

// CartNamespace builds the storage key for an identity. Guest carts and
// authenticated carts are distinct namespaces and are never merged.
func CartNamespace(identity string) string {
	if identity == "" {
		identity = GuestIdentity
	}
	return "cart-" + identity
}
