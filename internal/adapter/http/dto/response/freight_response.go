package response

import "loja_virtual/internal/domain/entities"

type FreightOptionResponse struct {
	Carrier      string `json:"carrier"`
	Price        int64  `json:"price"`
	DeliveryDays int    `json:"delivery_days"`
}

type FreightQuoteResponse struct {
	Address     entities.Address        `json:"address"`
	Options     []FreightOptionResponse `json:"options"`
	Fingerprint string                  `json:"fingerprint"`
}

func FromFreightQuote(q entities.FreightQuote) FreightQuoteResponse {
	options := make([]FreightOptionResponse, 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, FreightOptionResponse(o))
	}
	return FreightQuoteResponse{
		Address:     q.Address,
		Options:     options,
		Fingerprint: q.Fingerprint,
	}
}

func FromFreightOption(o entities.FreightOption) FreightOptionResponse {
	return FreightOptionResponse(o)
}
