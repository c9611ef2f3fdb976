package response

import (
	"detailing_crm/internal/domain/entities"
	"detailing_crm/internal/domain/pricing"
	"time"

	"github.com/shopspring/decimal"
)

type PriceResponse struct {
	NetAmount   decimal.Decimal `json:"net_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
}

type DiscountResponse struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

type ServiceResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Quantity   int              `json:"quantity"`
	BasePrice  PriceResponse    `json:"base_price"`
	Discount   DiscountResponse `json:"discount"`
	FinalPrice PriceResponse    `json:"final_price"`
	Note       string           `json:"note,omitempty"`
}

type TotalsResponse struct {
	TotalBase       decimal.Decimal `json:"total_base"`
	TotalDiscount   decimal.Decimal `json:"total_discount"`
	TotalFinal      decimal.Decimal `json:"total_final"`
	TotalFinalGross decimal.Decimal `json:"total_final_gross"`
}

type VisitResponse struct {
	ID        string            `json:"id"`
	ClientID  string            `json:"client_id"`
	VehicleID string            `json:"vehicle_id,omitempty"`
	Status    string            `json:"status"`
	Services  []ServiceResponse `json:"services"`
	Totals    TotalsResponse    `json:"totals"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// QuoteResponse is the priced list of services of a quote.
type QuoteResponse struct {
	Services []ServiceResponse `json:"services"`
	Totals   TotalsResponse    `json:"totals"`
}

func FromVisit(v entities.Visit) VisitResponse {
	return VisitResponse{
		ID:        v.ID,
		ClientID:  v.ClientID,
		VehicleID: v.VehicleID,
		Status:    string(v.Status),
		Services:  FromLineItems(v.Services),
		Totals:    FromTotals(v.Totals()),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromQuote(items []pricing.LineItem) QuoteResponse {
	return QuoteResponse{
		Services: FromLineItems(items),
		Totals:   FromTotals(pricing.AggregateTotals(items)),
	}
}

func FromLineItems(items []pricing.LineItem) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ServiceResponse{
			ID:         it.ID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			BasePrice:  fromPrice(it.BasePrice),
			Discount:   DiscountResponse{Type: string(it.Discount.Type), Value: it.Discount.Value},
			FinalPrice: fromPrice(it.FinalPrice),
			Note:       it.Note,
		})
	}
	return out
}

func FromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		TotalBase:       t.TotalBase,
		TotalDiscount:   t.TotalDiscount,
		TotalFinal:      t.TotalFinal,
		TotalFinalGross: t.TotalFinalGross,
	}
}

func fromPrice(p pricing.Price) PriceResponse {
	return PriceResponse{NetAmount: p.NetAmount, GrossAmount: p.GrossAmount, TaxAmount: p.TaxAmount}
}
