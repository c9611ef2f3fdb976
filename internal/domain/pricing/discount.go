package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountType is the wire name of a discount variant.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountAmount     DiscountType = "AMOUNT"
	DiscountFixedPrice DiscountType = "FIXED_PRICE"
)

// ParseDiscountType normalizes a client supplied discount type. Unknown names
// are kept as-is and resolve to a no-op discount.
func ParseDiscountType(s string) DiscountType {
	return DiscountType(strings.ToUpper(strings.TrimSpace(s)))
}

// Known reports whether t names one of the supported discount variants.
func (t DiscountType) Known() bool {
	switch t {
	case DiscountPercentage, DiscountAmount, DiscountFixedPrice:
		return true
	}
	return false
}

// Discount is a closed set of discount variants. Only this package can add
// implementations.
type Discount interface {
	Type() DiscountType
	Value() decimal.Decimal
	finalNet(baseNet decimal.Decimal) decimal.Decimal
}

// PercentageDiscount takes Percent percent off the base net amount.
type PercentageDiscount struct {
	Percent decimal.Decimal
}

func (d PercentageDiscount) Type() DiscountType     { return DiscountPercentage }
func (d PercentageDiscount) Value() decimal.Decimal { return d.Percent }

func (d PercentageDiscount) finalNet(baseNet decimal.Decimal) decimal.Decimal {
	return baseNet.Mul(decimal.NewFromInt(1).Sub(d.Percent.Div(hundred)))
}

// AmountDiscount subtracts a flat amount from the base net amount.
type AmountDiscount struct {
	Amount decimal.Decimal
}

func (d AmountDiscount) Type() DiscountType     { return DiscountAmount }
func (d AmountDiscount) Value() decimal.Decimal { return d.Amount }

func (d AmountDiscount) finalNet(baseNet decimal.Decimal) decimal.Decimal {
	return baseNet.Sub(d.Amount)
}

// FixedPriceDiscount overrides the net amount regardless of the base.
type FixedPriceDiscount struct {
	Price decimal.Decimal
}

func (d FixedPriceDiscount) Type() DiscountType     { return DiscountFixedPrice }
func (d FixedPriceDiscount) Value() decimal.Decimal { return d.Price }

func (d FixedPriceDiscount) finalNet(decimal.Decimal) decimal.Decimal {
	return d.Price
}

// unknownDiscount keeps an unrecognized type and value around so they round
// trip through storage, but never changes the price.
type unknownDiscount struct {
	kind  DiscountType
	value decimal.Decimal
}

func (d unknownDiscount) Type() DiscountType     { return d.kind }
func (d unknownDiscount) Value() decimal.Decimal { return d.value }

func (d unknownDiscount) finalNet(baseNet decimal.Decimal) decimal.Decimal {
	return baseNet
}

// DiscountSpec is the storage and wire form of a Discount.
type DiscountSpec struct {
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// NoDiscount is a zero percent discount, the default for new line items.
func NoDiscount() DiscountSpec {
	return DiscountSpec{Type: DiscountPercentage, Value: decimal.Zero}
}

// Discount resolves the spec into its variant.
func (s DiscountSpec) Discount() Discount {
	switch s.Type {
	case DiscountPercentage:
		return PercentageDiscount{Percent: s.Value}
	case DiscountAmount:
		return AmountDiscount{Amount: s.Value}
	case DiscountFixedPrice:
		return FixedPriceDiscount{Price: s.Value}
	default:
		return unknownDiscount{kind: s.Type, value: s.Value}
	}
}
