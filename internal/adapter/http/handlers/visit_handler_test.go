package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"detailing_crm/internal/adapter/http/handlers/mocks"
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/domain/pricing"
	"detailing_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testVisit() entities.Visit {
	now := time.Now().UTC()
	return entities.Visit{
		ID:       "visit-1",
		ClientID: "client-1",
		Status:   entities.VisitStatusPending,
		Services: []pricing.LineItem{
			pricing.NewLineItem("wash", "Hand wash", 1, pricing.RecomputeOnBasePriceChange(decimal.RequireFromString("100")),
				pricing.DiscountSpec{Type: pricing.DiscountPercentage, Value: decimal.RequireFromString("20")}, ""),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newVisitRouter(t *testing.T) (*gin.Engine, *mocks.MockIVisitUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVisitUseCase(ctrl)
	h := NewVisitHandler(uc)

	r := gin.New()
	r.POST("/v1/visits", h.CreateVisit)
	r.GET("/v1/visits/:id", h.GetVisit)
	r.PATCH("/v1/visits/:id/approve", h.ApproveVisit)
	r.PATCH("/v1/visits/:id/reject", h.RejectVisit)
	r.PATCH("/v1/visits/:id/cancel", h.CancelVisit)
	r.POST("/v1/visits/:id/services", h.AddService)
	r.DELETE("/v1/visits/:id/services/:service_id", h.RemoveService)
	r.PATCH("/v1/visits/:id/services/:service_id/base-price", h.UpdateBasePrice)
	r.PATCH("/v1/visits/:id/services/:service_id/discount-type", h.UpdateDiscountType)
	r.PATCH("/v1/visits/:id/services/:service_id/discount-value", h.UpdateDiscountValue)
	r.PATCH("/v1/visits/:id/services/:service_id/note", h.UpdateNote)
	r.GET("/v1/visits/:id/totals", h.GetTotals)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVisitHandler_CreateVisit(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newVisitRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/visits", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client id", func(t *testing.T) {
		r, _ := newVisitRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/visits", `{"services":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown discount type", func(t *testing.T) {
		r, _ := newVisitRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/visits", `{"client_id":"c1","services":[{"name":"Wash","base_price":"10","discount":{"type":"BOGO","value":"1"}}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_DISCOUNT_TYPE" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().CreateVisit(gomock.Any(), "c1", "", gomock.Any()).Return(entities.Visit{}, pricing.ErrDuplicateLineItem)

		w := doJSON(r, http.MethodPost, "/v1/visits", `{"client_id":"c1","services":[{"id":"a","name":"A"},{"id":"a","name":"B"}]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().CreateVisit(gomock.Any(), "c1", "car-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ string, services []pricing.LineItem) (entities.Visit, error) {
				if len(services) != 1 || services[0].Name != "Wash" || !services[0].BasePrice.NetAmount.Equal(decimal.RequireFromString("100")) {
					t.Errorf("unexpected services: %+v", services)
				}
				return testVisit(), nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/visits", `{"client_id":"c1","vehicle_id":"car-1","services":[{"name":"Wash","base_price":100,"discount":{"type":"percentage","value":20}}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		totals := body["totals"].(map[string]any)
		if body["id"] != "visit-1" || totals["total_final_gross"] != "98.4" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestVisitHandler_StatusRoutes(t *testing.T) {
	cases := []struct {
		path   string
		expect func(uc *mocks.MockIVisitUseCase) *gomock.Call
		err    error
		code   int
	}{
		{"/v1/visits/visit-1/approve", func(uc *mocks.MockIVisitUseCase) *gomock.Call { return uc.EXPECT().ApproveByID(gomock.Any(), "visit-1") }, nil, http.StatusOK},
		{"/v1/visits/visit-1/reject", func(uc *mocks.MockIVisitUseCase) *gomock.Call { return uc.EXPECT().RejectByID(gomock.Any(), "visit-1") }, usecase.ErrInvalidVisitTransition, http.StatusConflict},
		{"/v1/visits/visit-1/cancel", func(uc *mocks.MockIVisitUseCase) *gomock.Call { return uc.EXPECT().CancelByID(gomock.Any(), "visit-1") }, usecase.ErrVisitNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			r, uc := newVisitRouter(t)
			v := testVisit()
			if tc.err != nil {
				v = entities.Visit{}
			}
			tc.expect(uc).Return(v, tc.err)

			w := doJSON(r, http.MethodPatch, tc.path, "")
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}
}

func TestVisitHandler_Services(t *testing.T) {
	t.Run("add service", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().AddService(gomock.Any(), "visit-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, s pricing.LineItem) (entities.Visit, error) {
				if s.ID != "" || s.Name != "Clay bar" || s.Quantity != 1 {
					t.Errorf("unexpected service: %+v", s)
				}
				return testVisit(), nil
			},
		)
		w := doJSON(r, http.MethodPost, "/v1/visits/visit-1/services", `{"name":"Clay bar","base_price":"40"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add service not editable", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().AddService(gomock.Any(), "visit-1", gomock.Any()).Return(entities.Visit{}, usecase.ErrVisitNotEditable)
		w := doJSON(r, http.MethodPost, "/v1/visits/visit-1/services", `{"name":"Clay bar"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("remove missing service", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().RemoveService(gomock.Any(), "visit-1", "nope").Return(entities.Visit{}, pricing.ErrLineItemNotFound)
		w := doJSON(r, http.MethodDelete, "/v1/visits/visit-1/services/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("base price requires net_amount", func(t *testing.T) {
		r, _ := newVisitRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/visits/visit-1/services/wash/base-price", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("base price", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().UpdateBasePrice(gomock.Any(), "visit-1", "wash", decimal.RequireFromString("150.5")).Return(testVisit(), nil)
		w := doJSON(r, http.MethodPatch, "/v1/visits/visit-1/services/wash/base-price", `{"net_amount":"150.5"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("discount type unknown", func(t *testing.T) {
		r, _ := newVisitRouter(t)
		w := doJSON(r, http.MethodPatch, "/v1/visits/visit-1/services/wash/discount-type", `{"type":"BOGO"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("discount type", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().UpdateDiscountType(gomock.Any(), "visit-1", "wash", pricing.DiscountFixedPrice).Return(testVisit(), nil)
		w := doJSON(r, http.MethodPatch, "/v1/visits/visit-1/services/wash/discount-type", `{"type":"fixed_price"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("discount value", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().UpdateDiscountValue(gomock.Any(), "visit-1", "wash", decimal.RequireFromString("15")).Return(testVisit(), nil)
		w := doJSON(r, http.MethodPatch, "/v1/visits/visit-1/services/wash/discount-value", `{"value":15}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("note", func(t *testing.T) {
		r, uc := newVisitRouter(t)
		uc.EXPECT().UpdateNote(gomock.Any(), "visit-1", "wash", "rear seats only").Return(testVisit(), nil)
		w := doJSON(r, http.MethodPatch, "/v1/visits/visit-1/services/wash/note", `{"note":"rear seats only"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestVisitHandler_GetVisitAndTotals(t *testing.T) {
	r, uc := newVisitRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), "visit-1").Return(testVisit(), nil)
	uc.EXPECT().Totals(gomock.Any(), "visit-1").Return(testVisit().Totals(), nil)
	uc.EXPECT().Totals(gomock.Any(), "boom").Return(pricing.Totals{}, errors.New("db"))

	if w := doJSON(r, http.MethodGet, "/v1/visits/visit-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/v1/visits/visit-1/totals", "")
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total_base"] != "100" || body["total_discount"] != "20" || body["total_final"] != "80" {
		t.Fatalf("unexpected totals: %s", w.Body.String())
	}

	if w := doJSON(r, http.MethodGet, "/v1/visits/boom/totals", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestMapVisitError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidVisitID, http.StatusBadRequest},
		{usecase.ErrInvalidClientID, http.StatusBadRequest},
		{usecase.ErrInvalidServiceID, http.StatusBadRequest},
		{usecase.ErrInvalidServiceName, http.StatusBadRequest},
		{usecase.ErrInvalidBasePrice, http.StatusBadRequest},
		{usecase.ErrVisitNotFound, http.StatusNotFound},
		{pricing.ErrLineItemNotFound, http.StatusNotFound},
		{pricing.ErrDuplicateLineItem, http.StatusConflict},
		{usecase.ErrVisitNotEditable, http.StatusConflict},
		{usecase.ErrInvalidVisitTransition, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := mapVisitError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
