package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja_virtual/internal/adapter/http/handlers/mocks"
	"loja_virtual/internal/adapter/http/middleware"
	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity())
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:order_id", h.GetOrder)
	return r
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("guest is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().ListByProfile(gomock.Any(), "user-1").Return([]entities.Order{
			{ID: "ord-1", ProfileID: "user-1", Status: entities.OrderStatusPaid},
			{ID: "ord-2", ProfileID: "user-1", Status: entities.OrderStatusProcessing},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(body))
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "ord-x").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-x", nil)
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "user-1", "ord-1").Return(entities.Order{
			ID:        "ord-1",
			ProfileID: "user-1",
			Status:    entities.OrderStatusPaid,
			Items:     []entities.OrderItem{{OrderID: "ord-1", ProductID: "p1", Name: "Mouse", Price: 9900, Quantity: 1}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_id"] != "ord-1" || body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
