package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateLineItem = errors.New("line item already exists")
	ErrLineItemNotFound  = errors.New("line item not found")
)

// LineItem is one service on a visit. FinalPrice is derived from BasePrice
// and Discount and is recomputed whenever either changes.
type LineItem struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	BasePrice  Price        `json:"base_price"`
	Discount   DiscountSpec `json:"discount"`
	FinalPrice Price        `json:"final_price"`
	Note       string       `json:"note,omitempty"`
}

// NewLineItem builds a line item and computes its final price. Quantity is
// taken as given.
func NewLineItem(id, name string, quantity int, base Price, discount DiscountSpec, note string) LineItem {
	it := LineItem{
		ID:        id,
		Name:      name,
		Quantity:  quantity,
		BasePrice: base,
		Discount:  discount,
		Note:      note,
	}
	it.FinalPrice = ComputeFinalPrice(it.BasePrice, it.Discount.Discount())
	return it
}

// AddLineItem appends item, keeping insertion order. Ids must be unique.
func AddLineItem(items []LineItem, item LineItem) ([]LineItem, error) {
	for _, it := range items {
		if it.ID == item.ID {
			return items, ErrDuplicateLineItem
		}
	}
	out := make([]LineItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item), nil
}

// RemoveLineItem drops every item with the given id.
func RemoveLineItem(items []LineItem, id string) ([]LineItem, error) {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items, ErrLineItemNotFound
	}
	return out, nil
}

// UpdateBasePrice replaces the base price of item id with one rebuilt from
// netAmount and recomputes its final price.
func UpdateBasePrice(items []LineItem, id string, netAmount decimal.Decimal) ([]LineItem, error) {
	return updateFirst(items, id, func(it *LineItem) {
		it.BasePrice = RecomputeOnBasePriceChange(netAmount)
		it.FinalPrice = ComputeFinalPrice(it.BasePrice, it.Discount.Discount())
	})
}

// UpdateDiscountType switches the discount variant, keeping its value.
func UpdateDiscountType(items []LineItem, id string, t DiscountType) ([]LineItem, error) {
	return updateFirst(items, id, func(it *LineItem) {
		it.Discount.Type = t
		it.FinalPrice = ComputeFinalPrice(it.BasePrice, it.Discount.Discount())
	})
}

// UpdateDiscountValue changes the discount value, keeping its variant.
func UpdateDiscountValue(items []LineItem, id string, v decimal.Decimal) ([]LineItem, error) {
	return updateFirst(items, id, func(it *LineItem) {
		it.Discount.Value = v
		it.FinalPrice = ComputeFinalPrice(it.BasePrice, it.Discount.Discount())
	})
}

// UpdateNote sets the free-text note of item id.
func UpdateNote(items []LineItem, id string, note string) ([]LineItem, error) {
	return updateFirst(items, id, func(it *LineItem) {
		it.Note = note
	})
}

// updateFirst copies items and applies fn to the first item matching id.
func updateFirst(items []LineItem, id string, fn func(*LineItem)) ([]LineItem, error) {
	for i := range items {
		if items[i].ID != id {
			continue
		}
		out := make([]LineItem, len(items))
		copy(out, items)
		fn(&out[i])
		return out, nil
	}
	return items, ErrLineItemNotFound
}
