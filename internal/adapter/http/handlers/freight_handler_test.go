package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"loja_virtual/internal/adapter/http/handlers/mocks"
	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFreightRouter(h *FreightHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/freight/quote", h.QuoteFreight)
	r.POST("/v1/freight/selection", h.SelectFreight)
	return r
}

func TestFreightHandler_QuoteFreight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("postal code too short", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		uc.EXPECT().ComputeFreight(gomock.Any(), gomock.Any()).Return(entities.FreightQuote{}, usecase.ErrInvalidPostalCode)

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/quote", bytes.NewBufferString(`{"address":{"postal_code":"0100100"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown postal code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		uc.EXPECT().ComputeFreight(gomock.Any(), gomock.Any()).Return(entities.FreightQuote{}, usecase.ErrPostalCodeNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/quote", bytes.NewBufferString(`{"address":{"postal_code":"99999999"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns options and fingerprint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		quote := entities.FreightQuote{
			Address:     entities.Address{PostalCode: "01001000", City: "São Paulo", Region: "SP"},
			Options:     entities.FreightOptionsFor("SP"),
			Fingerprint: "fp-1",
		}
		uc.EXPECT().ComputeFreight(gomock.Any(), gomock.Any()).Return(quote, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/quote", bytes.NewBufferString(`{"address":{"postal_code":"01001000"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["fingerprint"] != "fp-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if opts, ok := body["options"].([]any); !ok || len(opts) != 3 {
			t.Fatalf("expected 3 options, got %v", body["options"])
		}
	})
}

func TestFreightHandler_SelectFreight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	selectionBody := `{"address":{"postal_code":"01001000","street":"Praça da Sé","number":"100","neighborhood":"Sé","city":"São Paulo","region":"SP"},"fingerprint":"fp-1","carrier":"Express"}`

	t.Run("missing address fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		uc.EXPECT().ValidateAddress(gomock.Any()).Return(map[string]string{"number": "number is required"})

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/selection", bytes.NewBufferString(selectionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stale fingerprint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		uc.EXPECT().ValidateAddress(gomock.Any()).Return(map[string]string{})
		uc.EXPECT().SelectOption(gomock.Any(), "fp-1", "Express").Return(entities.FreightOption{}, usecase.ErrStaleFreightQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/selection", bytes.NewBufferString(selectionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success pins the tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFreightUseCase(ctrl)
		r := newFreightRouter(NewFreightHandler(uc))

		uc.EXPECT().ValidateAddress(gomock.Any()).Return(map[string]string{})
		uc.EXPECT().SelectOption(gomock.Any(), "fp-1", "Express").
			Return(entities.FreightOption{Carrier: entities.CarrierExpress, Price: 2290, DeliveryDays: 2}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/freight/selection", bytes.NewBufferString(selectionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["carrier"] != "Express" || body["price"] != float64(2290) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapFreightError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPostalCode, http.StatusBadRequest},
		{usecase.ErrPostalCodeNotFound, http.StatusNotFound},
		{usecase.ErrInvalidAddress, http.StatusBadRequest},
		{usecase.ErrUnknownCarrier, http.StatusBadRequest},
		{usecase.ErrStaleFreightQuote, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapFreightError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
