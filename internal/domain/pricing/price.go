package pricing

import "github.com/shopspring/decimal"

// moneyPlaces is the number of decimal places prices are rounded to.
const moneyPlaces = 2

var (
	// TaxRate is the VAT rate applied to every service (23%).
	TaxRate = decimal.New(23, -2)

	grossFactor = decimal.NewFromInt(1).Add(TaxRate)
	hundred     = decimal.NewFromInt(100)
)

// Price is a money value at one tax stage.
//
// Prices returned by ComputeFinalPrice satisfy:
//   - GrossAmount == round(NetAmount * 1.23, 2)
//   - TaxAmount == round(GrossAmount - NetAmount, 2)
type Price struct {
	NetAmount   decimal.Decimal `json:"net_amount"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
}

// Equal reports whether both prices carry the same amounts.
func (p Price) Equal(o Price) bool {
	return p.NetAmount.Equal(o.NetAmount) &&
		p.GrossAmount.Equal(o.GrossAmount) &&
		p.TaxAmount.Equal(o.TaxAmount)
}

// roundedPrice builds a price from a net amount: the net is rounded first and
// gross and tax are derived from the rounded net, each rounded on its own.
func roundedPrice(net decimal.Decimal) Price {
	net = net.Round(moneyPlaces)
	gross := net.Mul(grossFactor).Round(moneyPlaces)
	tax := gross.Sub(net).Round(moneyPlaces)
	return Price{NetAmount: net, GrossAmount: gross, TaxAmount: tax}
}
