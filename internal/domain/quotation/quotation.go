package quotation

import "time"

type Quotation struct {
	ID            string    `json:"id"`
	QuotationNo   string    `json:"quotationNo"`
	ClientName    string    `json:"clientName"`
	ClientAddress string    `json:"clientAddress"`
	ClientContact string    `json:"clientContact"`
	Date          time.Time `json:"date"`
	Items         []Item    `json:"items"`

	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	NetAmount       float64 `json:"netAmount"`
	CGST            float64 `json:"cgst"`
	SGST            float64 `json:"sgst"`
	GrandTotal      float64 `json:"grandTotal"`
	Advance         float64 `json:"advance"`
	RemainingAmount float64 `json:"remainingAmount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Item struct {
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
}

// Summary is the list-endpoint projection of a Quotation.
type Summary struct {
	ID              string  `json:"id"`
	QuotationNo     string  `json:"quotationNo"`
	ClientName      string  `json:"clientName"`
	ClientContact   string  `json:"clientContact"`
	Date            string  `json:"date"`
	GrandTotal      float64 `json:"grandTotal"`
	Advance         float64 `json:"advance"`
	RemainingAmount float64 `json:"remainingAmount"`
}

const summaryDateLayout = "02/01/2006"

func (q Quotation) Summary() Summary {
	s := Summary{
		ID:              q.ID,
		QuotationNo:     q.QuotationNo,
		ClientName:      q.ClientName,
		ClientContact:   q.ClientContact,
		GrandTotal:      q.GrandTotal,
		Advance:         q.Advance,
		RemainingAmount: q.RemainingAmount,
	}
	if !q.Date.IsZero() {
		s.Date = q.Date.Format(summaryDateLayout)
	}
	return s
}

// Input is the client-supplied part of a quotation, shared by create and update.
type Input struct {
	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress"`
	ClientContact string `json:"clientContact"`
	Items         []Item `json:"items"`
	Discount      Amount `json:"discount"`
	Advance       Amount `json:"advance"`
}

// Apply copies the input fields and the derived financials onto q.
func (in Input) Apply(q *Quotation, f Financials) {
	q.ClientName = in.ClientName
	q.ClientAddress = in.ClientAddress
	q.ClientContact = in.ClientContact
	q.Items = append([]Item(nil), in.Items...)
	q.Discount = in.Discount.Float64()
	q.Advance = in.Advance.Float64()
	q.Subtotal = f.Subtotal
	q.NetAmount = f.NetAmount
	q.CGST = f.CGST
	q.SGST = f.SGST
	q.GrandTotal = f.GrandTotal
	q.RemainingAmount = f.RemainingAmount
}
