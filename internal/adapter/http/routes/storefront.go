package routes

import (
	"loja_virtual/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart     = "/cart"
	PathFreight  = "/freight"
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathProducts = "/products"
	PathProfile  = "/profile"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	cartHandler *handlers.CartHandler,
	freightHandler *handlers.FreightHandler,
	checkoutHandler *handlers.CheckoutHandler,
	orderHandler *handlers.OrderHandler,
	catalogHandler *handlers.CatalogHandler,
	reviewHandler *handlers.ReviewHandler,
	profileHandler *handlers.ProfileHandler,
) {
	cart := rg.Group(PathCart)
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PATCH("/items/:product_id/decrement", cartHandler.DecrementItem)
		cart.DELETE("/items/:product_id", cartHandler.RemoveItem)
	}

	freight := rg.Group(PathFreight)
	{
		freight.POST("/quote", freightHandler.QuoteFreight)
		freight.POST("/selection", freightHandler.SelectFreight)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.Checkout)
		checkout.GET("/result", checkoutHandler.CheckoutResult)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:product_id", catalogHandler.GetProduct)
		products.GET("/:product_id/reviews", reviewHandler.ListReviews)
		products.GET("/:product_id/reviews/summary", reviewHandler.ReviewSummary)
		products.POST("/:product_id/reviews", reviewHandler.CreateReview)
	}

	rg.GET(PathProfile, profileHandler.GetProfile)
}
