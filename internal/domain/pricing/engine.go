// Package pricing computes service line-item prices for a visit: discount
// application, VAT split and aggregate totals. Every function is pure.
package pricing

import "github.com/shopspring/decimal"

// ComputeFinalPrice applies d to the net amount of base and returns the
// discounted price. A nil discount leaves the base net unchanged. Negative
// results are clamped to zero.
func ComputeFinalPrice(base Price, d Discount) Price {
	finalNet := base.NetAmount
	if d != nil {
		finalNet = d.finalNet(base.NetAmount)
	}
	if finalNet.IsNegative() {
		finalNet = decimal.Zero
	}
	return roundedPrice(finalNet)
}

// RecomputeOnBasePriceChange rebuilds a base price from a new net amount.
//
// Unlike ComputeFinalPrice nothing is rounded here, so gross and tax can carry
// more than two decimal places. Existing invoices were produced this way; keep
// both paths until the product owners decide which one wins.
func RecomputeOnBasePriceChange(newNet decimal.Decimal) Price {
	return Price{
		NetAmount:   newNet,
		GrossAmount: newNet.Mul(grossFactor),
		TaxAmount:   newNet.Mul(TaxRate),
	}
}

// Totals aggregates a visit's line items.
type Totals struct {
	TotalBase     decimal.Decimal `json:"total_base"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalFinal    decimal.Decimal `json:"total_final"`
	// TotalFinalGross is the amount the customer pays.
	TotalFinalGross decimal.Decimal `json:"total_final_gross"`
}

// AggregateTotals sums net amounts over items. Rounding happens once, on the
// sums, never per item.
func AggregateTotals(items []LineItem) Totals {
	base, final, discount, gross := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, it := range items {
		base = base.Add(it.BasePrice.NetAmount)
		final = final.Add(it.FinalPrice.NetAmount)
		discount = discount.Add(it.BasePrice.NetAmount.Sub(it.FinalPrice.NetAmount))
		gross = gross.Add(it.FinalPrice.GrossAmount)
	}
	return Totals{
		TotalBase:       base.Round(moneyPlaces),
		TotalDiscount:   discount.Round(moneyPlaces),
		TotalFinal:      final.Round(moneyPlaces),
		TotalFinalGross: gross.Round(moneyPlaces),
	}
}
