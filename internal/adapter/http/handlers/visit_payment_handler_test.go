package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"detailing_crm/internal/adapter/http/handlers/mocks"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestVisitPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

		r := gin.New()
		r.POST("/v1/visits/:id/payments", h.CreatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/visits/visit-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, nil, true)

		r := gin.New()
		r.POST("/v1/visits/:id/payments", h.CreatePayment)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "visit-1", json.RawMessage("{}")).
			Return(entities.VisitPayment{ID: "pay-1", VisitID: "visit-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/visits/visit-1/payments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

		r := gin.New()
		r.POST("/v1/visits/:id/payments", h.CreatePayment)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "visit-1", gomock.Any()).Return(entities.VisitPayment{}, usecase.ErrVisitNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/visits/visit-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

		r := gin.New()
		r.POST("/v1/visits/:id/payments", h.CreatePayment)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "visit-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.VisitPayment{ID: "pay-1", VisitID: "visit-1", Date: now, Status: entities.PaymentStatusApproved, Amount: decimal.RequireFromString("98.40")}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/visits/visit-1/payments", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != "98.4" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestVisitPaymentHandler_GetLatestPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

		r := gin.New()
		r.GET("/v1/visits/:id/payments/latest", h.GetLatestPayment)

		uc.EXPECT().ListByVisitID(gomock.Any(), "visit-1").Return(nil, usecase.ErrInvalidPaymentVisitID)

		req := httptest.NewRequest(http.MethodGet, "/v1/visits/visit-1/payments/latest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

		r := gin.New()
		r.GET("/v1/visits/:id/payments/latest", h.GetLatestPayment)

		uc.EXPECT().ListByVisitID(gomock.Any(), "visit-1").Return([]entities.VisitPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/visits/visit-1/payments/latest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
		h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

		r := gin.New()
		r.GET("/v1/visits/:id/payments/latest", h.GetLatestPayment)

		old := entities.VisitPayment{ID: "old", VisitID: "visit-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusDenied}
		latest := entities.VisitPayment{ID: "latest", VisitID: "visit-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByVisitID(gomock.Any(), "visit-1").Return([]entities.VisitPayment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/visits/visit-1/payments/latest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestVisitPaymentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVisitPaymentUseCase(ctrl)
	h := NewVisitPaymentHandler(uc, zap.NewNop(), false)

	r := gin.New()
	r.GET("/v1/visits/:id/payments", h.ListPayments)
	r.GET("/v1/payments/:payment_id", h.GetPayment)

	uc.EXPECT().ListByVisitID(gomock.Any(), "visit-1").Return([]entities.VisitPayment{{ID: "a"}, {ID: "b"}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.VisitPayment{}, usecase.ErrVisitPaymentNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/visits/visit-1/payments", nil))
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 2 {
		t.Fatalf("unexpected list body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapVisitPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentVisitID, http.StatusBadRequest},
		{usecase.ErrInvalidProviderPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrVisitNotFound, http.StatusNotFound},
		{usecase.ErrVisitNotApproved, http.StatusConflict},
		{usecase.ErrNothingToCharge, http.StatusConflict},
		{usecase.ErrVisitPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapVisitPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
