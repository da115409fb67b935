package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"furnisure/backend/internal/domain/quotation"
	"furnisure/backend/internal/domain/quotation/pdf"
)

const (
	fontFamily = "Helvetica"
	pageMargin = 15.0
	dateLayout = "02/01/2006"

	compositionNotice = "Composition taxable person, not eligible to collect tax on supplies."
)

type Generator struct {
	opts     pdf.Options
	compress bool
}

func New(opts pdf.Options) *Generator {
	if opts.SummaryStyle == "" {
		opts.SummaryStyle = pdf.SummaryTable
	}
	if len(opts.Letterhead) == 0 {
		opts.Letterhead = pdf.DefaultLetterhead
	}
	return &Generator{opts: opts, compress: true}
}

// WithoutCompression leaves page content streams readable, which lets tests
// look for rendered text in the output.
func (g *Generator) WithoutCompression() *Generator {
	g.compress = false
	return g
}

func (g *Generator) Generate(q quotation.Quotation) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(g.compress)
	doc.SetTitle("Quotation "+q.QuotationNo, true)
	doc.SetCreator("FURNiSURE", true)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	w, _ := doc.GetPageSize()
	contentW := w - 2*pageMargin

	g.letterhead(doc, tr, w)

	doc.SetFont(fontFamily, "B", 18)
	doc.CellFormat(contentW, 10, "INVOICE", "", 1, "C", false, 0, "")
	doc.Ln(4)

	half := contentW / 2
	doc.SetFont(fontFamily, "", 11)
	doc.CellFormat(half, 6, tr("Name: "+q.ClientName), "", 0, "L", false, 0, "")
	doc.CellFormat(half, 6, "Date: "+formatDate(q), "", 1, "R", false, 0, "")
	doc.CellFormat(half, 6, tr("Address: "+q.ClientAddress), "", 0, "L", false, 0, "")
	doc.CellFormat(half, 6, tr("Contact: "+q.ClientContact), "", 1, "R", false, 0, "")
	doc.CellFormat(contentW, 6, "Quotation No: "+q.QuotationNo, "", 1, "L", false, 0, "")
	doc.Ln(4)

	g.itemTable(doc, tr, q, contentW)
	doc.Ln(4)

	if g.opts.SummaryStyle == pdf.SummaryInline {
		g.inlineSummary(doc, q, contentW)
	} else {
		g.tableSummary(doc, q, contentW)
	}

	doc.Ln(14)
	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(contentW, 6, "For, FURNiSURE", "", 1, "R", false, 0, "")
	doc.Ln(12)
	doc.SetFont(fontFamily, "", 11)
	doc.CellFormat(contentW, 6, "Partners", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		log.Printf("quotation pdf: output %s failed: %v", q.QuotationNo, err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) letterhead(doc *gofpdf.Fpdf, tr func(string) string, pageW float64) {
	if g.opts.IncludeLogo && g.opts.LogoPath != "" {
		if _, err := os.Stat(g.opts.LogoPath); err == nil {
			const logoW = 30.0
			doc.ImageOptions(g.opts.LogoPath, (pageW-logoW)/2, doc.GetY(), logoW, 0, true,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			if err := doc.Error(); err != nil {
				log.Printf("quotation pdf: logo %s skipped: %v", g.opts.LogoPath, err)
				doc.ClearError()
			}
			doc.Ln(2)
		} else {
			log.Printf("quotation pdf: logo %s not found", g.opts.LogoPath)
		}
	}

	contentW := pageW - 2*pageMargin
	for i, line := range g.opts.Letterhead {
		if i == 0 {
			doc.SetFont(fontFamily, "B", 20)
			doc.CellFormat(contentW, 10, tr(line), "", 1, "C", false, 0, "")
			continue
		}
		doc.SetFont(fontFamily, "", 10)
		doc.CellFormat(contentW, 5, tr(line), "", 1, "C", false, 0, "")
	}
	doc.Ln(4)
}

func (g *Generator) itemTable(doc *gofpdf.Fpdf, tr func(string) string, q quotation.Quotation, contentW float64) {
	const slW, amountW = 15.0, 40.0
	descW := contentW - slW - amountW

	doc.SetFont(fontFamily, "B", 11)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(slW, 8, "SL", "1", 0, "C", true, 0, "")
	doc.CellFormat(descW, 8, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(amountW, 8, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont(fontFamily, "", 10)
	for i, it := range q.Items {
		doc.CellFormat(slW, 7, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
		doc.CellFormat(descW, 7, tr(trim(it.Description, 80)), "1", 0, "L", false, 0, "")
		doc.CellFormat(amountW, 7, pdf.FormatINR(it.Amount.Float64()), "1", 1, "R", false, 0, "")
	}
}

type summaryRow struct {
	label string
	value float64
	grand bool
}

func (g *Generator) summaryRows(q quotation.Quotation) []summaryRow {
	rows := []summaryRow{
		{label: "Subtotal", value: q.Subtotal},
		{label: "Discount", value: q.Discount},
		{label: "Net Amount", value: q.NetAmount},
	}
	if g.opts.IncludeTax {
		rows = append(rows,
			summaryRow{label: fmt.Sprintf("CGST (%s%%)", formatRate(g.opts.TaxRates.CGST)), value: q.CGST},
			summaryRow{label: fmt.Sprintf("SGST (%s%%)", formatRate(g.opts.TaxRates.SGST)), value: q.SGST},
		)
	}
	return append(rows,
		summaryRow{label: "Grand Total", value: q.GrandTotal, grand: true},
		summaryRow{label: "Advance", value: q.Advance},
		summaryRow{label: "Remaining", value: q.RemainingAmount},
	)
}

func (g *Generator) inlineSummary(doc *gofpdf.Fpdf, q quotation.Quotation, contentW float64) {
	rows := g.summaryRows(q)
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("%s: Rs. %s", r.label, pdf.FormatINR(r.value)))
	}
	doc.SetFont(fontFamily, "", 10)
	doc.MultiCell(contentW, 6, strings.Join(parts, "  "), "", "L", false)
}

func (g *Generator) tableSummary(doc *gofpdf.Fpdf, q quotation.Quotation, contentW float64) {
	const labelW, valueW = 50.0, 40.0
	left := pageMargin + contentW - labelW - valueW

	for _, r := range g.summaryRows(q) {
		doc.SetX(left)
		if r.grand {
			doc.SetFont(fontFamily, "B", 11)
			doc.SetFillColor(255, 236, 179)
			doc.SetTextColor(150, 40, 0)
		} else {
			doc.SetFont(fontFamily, "", 10)
		}
		doc.CellFormat(labelW, 7, r.label, "1", 0, "L", r.grand, 0, "")
		doc.CellFormat(valueW, 7, "Rs. "+pdf.FormatINR(r.value), "1", 1, "R", r.grand, 0, "")
		doc.SetTextColor(0, 0, 0)
	}

	doc.Ln(6)
	doc.SetFont(fontFamily, "I", 9)
	doc.MultiCell(contentW, 5, compositionNotice, "", "L", false)
}

func formatDate(q quotation.Quotation) string {
	if q.Date.IsZero() {
		return q.CreatedAt.Format(dateLayout)
	}
	return q.Date.Format(dateLayout)
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
