package handlers

import (
	"errors"
	"net/http"

	request "loja_virtual/internal/adapter/http/dto/request"
	response "loja_virtual/internal/adapter/http/dto/response"
	"loja_virtual/internal/usecase"
	"loja_virtual/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFreightPayload = pkg.NewDomainErrorSimple("INVALID_FREIGHT_INPUT", "Invalid freight payload", http.StatusBadRequest)
)

// FreightHandler handles freight quoting and tier selection.

type FreightHandler struct {
	usecase usecase.IFreightUseCase
}

func NewFreightHandler(uc usecase.IFreightUseCase) *FreightHandler {
	return &FreightHandler{usecase: uc}
}

func (h *FreightHandler) QuoteFreight(c *gin.Context) {
	var payload request.FreightQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.ComputeFreight(c.Request.Context(), payload.Address.ToAddress())
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreightQuote(quote))
}

// SelectFreight re-derives the chosen tier server-side, refusing when the
// address no longer matches the quoted fingerprint.
func (h *FreightHandler) SelectFreight(c *gin.Context) {
	var payload request.FreightSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFreightPayload.HTTPStatus, errInvalidFreightPayload.ToHTTPError())
		return
	}

	addr := payload.Address.ToAddress()
	if fields := h.usecase.ValidateAddress(addr); len(fields) > 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_ADDRESS", "Address has missing fields", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPFieldError(fields))
		return
	}

	option, err := h.usecase.SelectOption(addr, payload.Fingerprint, payload.Carrier)
	if err != nil {
		appErr := mapFreightError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFreightOption(option))
}

func mapFreightError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPostalCode):
		return pkg.NewDomainErrorSimple("INVALID_POSTAL_CODE", "Postal code must have 8 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPostalCodeNotFound):
		return pkg.NewDomainErrorSimple("POSTAL_CODE_NOT_FOUND", "Postal code not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidAddress):
		return pkg.NewDomainErrorSimple("INVALID_ADDRESS", "Address has missing fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownCarrier):
		return pkg.NewDomainErrorSimple("UNKNOWN_CARRIER", "Unknown freight carrier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStaleFreightQuote):
		return pkg.NewDomainErrorSimple("STALE_FREIGHT_QUOTE", "Address changed since the quote, recompute freight", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
