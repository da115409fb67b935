package quotation

import (
	"encoding/json"
	"testing"
)

func TestComputeFinancialsSeedScenario(t *testing.T) {
	items := []Item{
		{Description: "Storage Puffy", Amount: 54400},
		{Description: "Transportation", Amount: 10000},
		{Description: "Sofa", Amount: 11000},
		{Description: "Center table", Amount: 800},
	}
	f := ComputeFinancials(items, 16200, 30000, TaxRates{})

	want := Financials{Subtotal: 76200, NetAmount: 60000, GrandTotal: 60000, RemainingAmount: 30000}
	if f != want {
		t.Fatalf("got %+v, want %+v", f, want)
	}
}

func TestComputeFinancials(t *testing.T) {
	cases := []struct {
		name     string
		items    []Item
		discount Amount
		advance  Amount
		rates    TaxRates
		want     Financials
	}{
		{
			name: "no discount or advance",
			items: []Item{{Amount: 100}, {Amount: 250.5}},
			want:  Financials{Subtotal: 350.5, NetAmount: 350.5, GrandTotal: 350.5, RemainingAmount: 350.5},
		},
		{
			name:     "negative results pass through",
			items:    []Item{{Amount: 100}},
			discount: 150,
			advance:  20,
			want:     Financials{Subtotal: 100, NetAmount: -50, GrandTotal: -50, RemainingAmount: -70},
		},
		{
			name:  "decimal sums do not drift",
			items: []Item{{Amount: 0.1}, {Amount: 0.2}},
			want:  Financials{Subtotal: 0.3, NetAmount: 0.3, GrandTotal: 0.3, RemainingAmount: 0.3},
		},
		{
			name:    "configured tax rates",
			items:   []Item{{Amount: 1000}},
			advance: 180,
			rates:   TaxRates{CGST: 9, SGST: 9},
			want:    Financials{Subtotal: 1000, NetAmount: 1000, CGST: 90, SGST: 90, GrandTotal: 1180, RemainingAmount: 1000},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeFinancials(tc.items, tc.discount, tc.advance, tc.rates)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestComputeFinancialsNonNumericAmounts(t *testing.T) {
	var items []Item
	body := `[
		{"description": "a", "amount": 100},
		{"description": "b", "amount": "250"},
		{"description": "c", "amount": "abc"},
		{"description": "d", "amount": null},
		{"description": "e"},
		{"description": "f", "amount": true},
		{"description": "g", "amount": "1,200"}
	]`
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	f := ComputeFinancials(items, 0, 0, TaxRates{})
	if f.Subtotal != 1550 {
		t.Fatalf("subtotal = %v, want 1550", f.Subtotal)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]Amount{
		"":            0,
		"  ":          0,
		"54400":       54400,
		"54,400":      54400,
		"Rs. 1,200.5": 1200.5,
		"₹800":        800,
		"-10":         -10,
		"NaN":         0,
		"Inf":         0,
		"twelve":      0,
	}
	for in, want := range cases {
		if got := ParseAmount(in); got != want {
			t.Errorf("ParseAmount(%q) = %v, want %v", in, got, want)
		}
	}
}
