package handlers

import (
	"errors"
	"net/http"

	request "loja_virtual/internal/adapter/http/dto/request"
	response "loja_virtual/internal/adapter/http/dto/response"
	"loja_virtual/internal/adapter/http/middleware"
	"loja_virtual/internal/usecase"
	"loja_virtual/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)
)

// CartHandler handles HTTP requests for the caller's cart. The cart is
// addressed purely by the identity middleware: there is no cart id in the
// routes.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.Get(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), middleware.IdentityFrom(c), payload.ToLineItem())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// DecrementItem lowers the quantity of one line by one, removing the line
// when it reaches zero.
func (h *CartHandler) DecrementItem(c *gin.Context) {
	productID := c.Param("product_id")

	cart, err := h.usecase.RemoveItem(c.Request.Context(), middleware.IdentityFrom(c), productID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// RemoveItem drops a line regardless of its quantity.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")

	cart, err := h.usecase.ClearItem(c.Request.Context(), middleware.IdentityFrom(c), productID)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.Clear(c.Request.Context(), middleware.IdentityFrom(c)); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLineItem):
		return pkg.NewDomainErrorSimple("INVALID_CART_ITEM", "Invalid cart item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item not in cart", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
