package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func newCheckoutRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity())
	r.POST("/v1/checkout", h.Checkout)
	r.GET("/v1/checkout/result", h.CheckoutResult)
	return r
}

const checkoutBody = `{"address":{"postal_code":"01001000","street":"Praça da Sé","number":"100","neighborhood":"Sé","city":"São Paulo","region":"SP"},"carrier":"Express","quote_fingerprint":"fp-1"}`

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("guest is refused before binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty cart conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		checkoutUC.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrEmptyCart)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("stale quote conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		checkoutUC.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrStaleFreightQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns order id and payment url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		checkoutUC.EXPECT().
			Checkout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, input usecase.CheckoutInput) (usecase.CheckoutResult, error) {
				if input.ProfileID != "user-1" {
					t.Errorf("expected identity from token, got %q", input.ProfileID)
				}
				if input.Carrier != "Express" || input.QuoteFingerprint != "fp-1" {
					t.Errorf("unexpected input: %+v", input)
				}
				return usecase.CheckoutResult{
					Order:      entities.Order{ID: "ord-1", Status: entities.OrderStatusProcessing},
					SessionID:  "sess-1",
					PaymentURL: "https://pay.example/sess-1",
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout", bytes.NewBufferString(checkoutBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_id"] != "ord-1" || body["payment_url"] != "https://pay.example/sess-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_CheckoutResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		reconcileUC.EXPECT().Reconcile(gomock.Any(), gomock.Any(), "").Return(usecase.ReconcileResult{}, usecase.ErrInvalidSessionID)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/result", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("paid session renders order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		reconcileUC.EXPECT().Reconcile(gomock.Any(), "user-1", "sess-1").Return(usecase.ReconcileResult{
			Status: entities.OrderStatusPaid,
			Order:  entities.Order{ID: "ord-1", Status: entities.OrderStatusPaid},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/result?session_id=sess-1", nil)
		req.Header.Set("Authorization", "Bearer user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["order"] == nil {
			t.Fatalf("expected order in body: %s", w.Body.String())
		}
	})

	t.Run("session without local order omits it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkoutUC := mocks.NewMockICheckoutUseCase(ctrl)
		reconcileUC := mocks.NewMockIReconcileUseCase(ctrl)
		r := newCheckoutRouter(NewCheckoutHandler(checkoutUC, reconcileUC))

		reconcileUC.EXPECT().Reconcile(gomock.Any(), gomock.Any(), "sess-2").Return(usecase.ReconcileResult{
			Status: entities.OrderStatusProcessing,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/result?session_id=sess-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, present := body["order"]; present {
			t.Fatalf("expected no order in body: %s", w.Body.String())
		}
	})
}

func TestMapCheckoutError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{usecase.ErrUnauthorized, http.StatusForbidden},
		{usecase.ErrEmptyCart, http.StatusConflict},
		{usecase.ErrNoFreightSelected, http.StatusBadRequest},
		{usecase.ErrInvalidSessionID, http.StatusBadRequest},
		{usecase.ErrStaleFreightQuote, http.StatusConflict},
		{usecase.ErrInvalidAddress, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCheckoutError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
