package request

import (
	"detailing_crm/internal/domain/pricing"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownDiscountType = errors.New("unknown discount type")
	ErrNegativeAmount      = errors.New("amount must not be negative")
)

type DiscountRequest struct {
	Type  string          `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// ServiceRequest is one service line. BasePrice is the net amount; gross and
// tax are derived from it.
type ServiceRequest struct {
	ID        string           `json:"id"`
	Name      string           `json:"name" binding:"required"`
	Quantity  int              `json:"quantity"`
	BasePrice decimal.Decimal  `json:"base_price"`
	Discount  *DiscountRequest `json:"discount"`
	Note      string           `json:"note"`
}

type VisitCreateRequest struct {
	ClientID  string           `json:"client_id" binding:"required"`
	VehicleID string           `json:"vehicle_id"`
	Services  []ServiceRequest `json:"services"`
}

type BasePriceRequest struct {
	NetAmount *decimal.Decimal `json:"net_amount" binding:"required"`
}

type DiscountTypeRequest struct {
	Type string `json:"type" binding:"required"`
}

type DiscountValueRequest struct {
	Value *decimal.Decimal `json:"value" binding:"required"`
}

type NoteRequest struct {
	Note string `json:"note"`
}

// ResolveDiscount returns the discount spec, defaulting to no discount.
func (r ServiceRequest) ResolveDiscount() (pricing.DiscountSpec, error) {
	if r.Discount == nil || strings.TrimSpace(r.Discount.Type) == "" {
		return pricing.NoDiscount(), nil
	}
	t, err := ResolveDiscountType(r.Discount.Type)
	if err != nil {
		return pricing.DiscountSpec{}, err
	}
	return pricing.DiscountSpec{Type: t, Value: r.Discount.Value}, nil
}

// ToLineItem builds the line item. The final price is computed here and
// recomputed again by the visit use case.
func (r ServiceRequest) ToLineItem() (pricing.LineItem, error) {
	if r.BasePrice.IsNegative() {
		return pricing.LineItem{}, ErrNegativeAmount
	}
	discount, err := r.ResolveDiscount()
	if err != nil {
		return pricing.LineItem{}, err
	}
	quantity := r.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return pricing.NewLineItem(
		strings.TrimSpace(r.ID),
		strings.TrimSpace(r.Name),
		quantity,
		pricing.RecomputeOnBasePriceChange(r.BasePrice),
		discount,
		r.Note,
	), nil
}

func (r VisitCreateRequest) ToLineItems() ([]pricing.LineItem, error) {
	items := make([]pricing.LineItem, 0, len(r.Services))
	for _, s := range r.Services {
		it, err := s.ToLineItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// ResolveDiscountType rejects names the pricing engine does not know. The
// engine would silently treat them as no discount.
func ResolveDiscountType(s string) (pricing.DiscountType, error) {
	t := pricing.ParseDiscountType(s)
	if !t.Known() {
		return "", ErrUnknownDiscountType
	}
	return t, nil
}
