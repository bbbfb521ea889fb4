package handlers

import (
	"errors"
	"net/http"

	response "loja_virtual/internal/adapter/http/dto/response"
	"loja_virtual/internal/adapter/http/middleware"
	"loja_virtual/internal/usecase"
	"loja_virtual/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errOrdersRequireAuth = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Order history requires an authenticated caller", http.StatusUnauthorized)
)

// OrderHandler serves the caller's order history. Ownership is enforced by
// the use case: an order belonging to another profile reads as not found.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.JSON(errOrdersRequireAuth.HTTPStatus, errOrdersRequireAuth.ToHTTPError())
		return
	}

	orders, err := h.usecase.ListByProfile(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.JSON(errOrdersRequireAuth.HTTPStatus, errOrdersRequireAuth.ToHTTPError())
		return
	}

	order, err := h.usecase.GetByID(c.Request.Context(), middleware.IdentityFrom(c), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_ID", "Invalid order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
