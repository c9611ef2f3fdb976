package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPricingHandler()
	r := gin.New()
	r.POST("/v1/pricing/quote", h.Quote)
	return r
}

func TestPricingHandler_Quote(t *testing.T) {
	t.Run("prices the list", func(t *testing.T) {
		r := newPricingRouter()
		w := doJSON(r, http.MethodPost, "/v1/pricing/quote", `{"services":[
			{"id":"wash","name":"Hand wash","base_price":"100","discount":{"type":"PERCENTAGE","value":"20"}},
			{"name":"Wax","base_price":"50","discount":{"type":"fixed_price","value":"30"}}
		]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Services []struct {
				ID         string `json:"id"`
				FinalPrice struct {
					NetAmount decimal.Decimal `json:"net_amount"`
				} `json:"final_price"`
			} `json:"services"`
			Totals struct {
				TotalFinal      decimal.Decimal `json:"total_final"`
				TotalFinalGross decimal.Decimal `json:"total_final_gross"`
			} `json:"totals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Services) != 2 || body.Services[1].ID != "line-2" {
			t.Fatalf("unexpected services %+v", body.Services)
		}
		if !body.Services[0].FinalPrice.NetAmount.Equal(decimal.RequireFromString("80")) {
			t.Fatalf("unexpected final net %s", body.Services[0].FinalPrice.NetAmount)
		}
		if !body.Totals.TotalFinal.Equal(decimal.RequireFromString("110")) {
			t.Fatalf("unexpected total final %s", body.Totals.TotalFinal)
		}
		if !body.Totals.TotalFinalGross.Equal(decimal.RequireFromString("135.3")) {
			t.Fatalf("unexpected total gross %s", body.Totals.TotalFinalGross)
		}
	})

	t.Run("missing services", func(t *testing.T) {
		r := newPricingRouter()
		w := doJSON(r, http.MethodPost, "/v1/pricing/quote", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown discount type", func(t *testing.T) {
		r := newPricingRouter()
		w := doJSON(r, http.MethodPost, "/v1/pricing/quote", `{"services":[{"name":"a","discount":{"type":"BOGUS","value":"1"}}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate ids", func(t *testing.T) {
		r := newPricingRouter()
		w := doJSON(r, http.MethodPost, "/v1/pricing/quote", `{"services":[{"id":"a","name":"a"},{"id":"a","name":"b"}]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
