package handlers

import (
	"errors"
	"net/http"

	request "loja_virtual/internal/adapter/http/dto/request"
	response "loja_virtual/internal/adapter/http/dto/response"
	"loja_virtual/internal/adapter/http/middleware"
	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase"
	"loja_virtual/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReviewPayload = pkg.NewDomainErrorSimple("INVALID_REVIEW_INPUT", "Invalid review payload", http.StatusBadRequest)
	errReviewRequiresAuth   = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Reviewing requires an authenticated caller", http.StatusUnauthorized)
)

// ReviewHandler handles product reviews. Reading is public, writing needs
// an authenticated caller.

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.JSON(errReviewRequiresAuth.HTTPStatus, errReviewRequiresAuth.ToHTTPError())
		return
	}

	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReviewPayload.HTTPStatus, errInvalidReviewPayload.ToHTTPError())
		return
	}

	review, err := h.usecase.Create(c.Request.Context(), entities.Review{
		ProductID: c.Param("product_id"),
		ProfileID: middleware.IdentityFrom(c),
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	})
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromReview(review))
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.usecase.ListByProductID(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(reviews))
}

func (h *ReviewHandler) ReviewSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapReviewError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReviewSummary(summary))
}

func mapReviewError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainErrorSimple("INVALID_RATING", "Rating must be between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Reviewing requires an authenticated caller", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
