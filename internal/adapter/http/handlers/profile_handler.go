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
	errProfileRequiresAuth = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Profile requires an authenticated caller", http.StatusUnauthorized)
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		c.JSON(errProfileRequiresAuth.HTTPStatus, errProfileRequiresAuth.ToHTTPError())
		return
	}

	profile, err := h.usecase.GetByID(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
