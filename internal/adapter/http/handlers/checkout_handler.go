package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "loja_virtual/internal/adapter/http/dto/request"
	response "loja_virtual/internal/adapter/http/dto/response"
	"loja_virtual/internal/adapter/http/middleware"
	"loja_virtual/internal/usecase"
	"loja_virtual/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errCheckoutRequiresAuth   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Checkout requires an authenticated caller", http.StatusUnauthorized)
)

// CheckoutHandler submits orders and serves the post-payment result page.

type CheckoutHandler struct {
	checkout  usecase.ICheckoutUseCase
	reconcile usecase.IReconcileUseCase
}

func NewCheckoutHandler(checkout usecase.ICheckoutUseCase, reconcile usecase.IReconcileUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, reconcile: reconcile}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.JSON(errCheckoutRequiresAuth.HTTPStatus, errCheckoutRequiresAuth.ToHTTPError())
		return
	}

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), usecase.CheckoutInput{
		ProfileID:        middleware.IdentityFrom(c),
		Address:          payload.Address.ToAddress(),
		Carrier:          payload.Carrier,
		QuoteFingerprint: payload.QuoteFingerprint,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

// CheckoutResult reconciles the local order with the provider session the
// caller is returning from.
func (h *CheckoutHandler) CheckoutResult(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))

	result, err := h.reconcile.Reconcile(c.Request.Context(), middleware.IdentityFrom(c), sessionID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Checkout requires an authenticated caller", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Session does not belong to the caller", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoFreightSelected):
		return pkg.NewDomainErrorSimple("NO_FREIGHT_SELECTED", "No freight option selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAddress),
		errors.Is(err, usecase.ErrInvalidPostalCode),
		errors.Is(err, usecase.ErrUnknownCarrier),
		errors.Is(err, usecase.ErrPostalCodeNotFound),
		errors.Is(err, usecase.ErrStaleFreightQuote):
		return mapFreightError(err)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
