package request

import "loja_virtual/internal/domain/entities"

// CartItemRequest is the payload for adding a product to the cart. The
// client sends the catalog snapshot it rendered; the cart stores it as-is.
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price" binding:"required"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

func (r CartItemRequest) ToLineItem() entities.LineItem {
	qty := r.Quantity
	if qty == 0 {
		qty = 1
	}
	return entities.LineItem{
		ProductID: r.ProductID,
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		Image:     r.Image,
		Quantity:  qty,
	}
}
