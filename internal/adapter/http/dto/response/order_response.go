package response

import (
	"time"

	"loja_virtual/internal/domain/entities"
)

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type OrderAddressResponse struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Complement   string `json:"complement,omitempty"`
}

type OrderResponse struct {
	OrderID          string               `json:"order_id"`
	Status           string               `json:"status"`
	Total            int64                `json:"total"`
	ShippingPrice    int64                `json:"shipping_price"`
	ShippingProvider string               `json:"shipping_provider"`
	PaymentMethod    string               `json:"payment_method,omitempty"`
	Address          OrderAddressResponse `json:"address"`
	Items            []OrderItemResponse  `json:"items"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return OrderResponse{
		OrderID:          o.ID,
		Status:           string(o.Status),
		Total:            o.Total,
		ShippingPrice:    o.ShippingPrice,
		ShippingProvider: o.ShippingProvider,
		PaymentMethod:    o.PaymentMethod,
		Address: OrderAddressResponse{
			PostalCode:   o.PostalCode,
			Street:       o.Street,
			Number:       o.Number,
			Neighborhood: o.Neighborhood,
			City:         o.City,
			Region:       o.Region,
			Complement:   o.Complement,
		},
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
