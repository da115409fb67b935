package quotation

import "github.com/shopspring/decimal"

// TaxRates are percentages applied to the net amount. Both are zero unless
// configured otherwise.
type TaxRates struct {
	CGST float64
	SGST float64
}

type Financials struct {
	Subtotal        float64
	NetAmount       float64
	CGST            float64
	SGST            float64
	GrandTotal      float64
	RemainingAmount float64
}

var hundred = decimal.NewFromInt(100)

// ComputeFinancials derives every monetary field from the line items,
// discount and advance. Results are not clamped; a discount larger than the
// subtotal yields a negative net amount.
func ComputeFinancials(items []Item, discount, advance Amount, rates TaxRates) Financials {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Amount.Float64()))
	}
	net := subtotal.Sub(decimal.NewFromFloat(discount.Float64()))
	cgst := net.Mul(decimal.NewFromFloat(rates.CGST)).Div(hundred).Round(2)
	sgst := net.Mul(decimal.NewFromFloat(rates.SGST)).Div(hundred).Round(2)
	grand := net.Add(cgst).Add(sgst)
	remaining := grand.Sub(decimal.NewFromFloat(advance.Float64()))

	return Financials{
		Subtotal:        subtotal.InexactFloat64(),
		NetAmount:       net.InexactFloat64(),
		CGST:            cgst.InexactFloat64(),
		SGST:            sgst.InexactFloat64(),
		GrandTotal:      grand.InexactFloat64(),
		RemainingAmount: remaining.InexactFloat64(),
	}
}
