package gofpdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"furnisure/backend/internal/domain/quotation"
	"furnisure/backend/internal/domain/quotation/pdf"
)

func hardik() quotation.Quotation {
	return quotation.Quotation{
		QuotationNo:   "Q-1001",
		ClientName:    "Mr. Hardik",
		ClientAddress: "Vadodara",
		ClientContact: "8460656416",
		Date:          time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		Items: []quotation.Item{
			{Description: "Storage Puffy 2 nos x 5500", Amount: 54400},
			{Description: "Transportation", Amount: 10000},
			{Description: "Sofa 17 rft", Amount: 11000},
			{Description: "Center table With Drawer", Amount: 800},
		},
		Subtotal:        76200,
		Discount:        16200,
		NetAmount:       60000,
		GrandTotal:      60000,
		Advance:         30000,
		RemainingAmount: 30000,
	}
}

func render(t *testing.T, opts pdf.Options) []byte {
	t.Helper()
	out, err := New(opts).WithoutCompression().Generate(hardik())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf: %q", out[:min(len(out), 16)])
	}
	return out
}

func mustContain(t *testing.T, doc []byte, texts ...string) {
	t.Helper()
	for _, s := range texts {
		if !bytes.Contains(doc, []byte("("+s+")")) {
			t.Errorf("pdf does not contain %q", s)
		}
	}
}

func mustNotContain(t *testing.T, doc []byte, texts ...string) {
	t.Helper()
	for _, s := range texts {
		if bytes.Contains(doc, []byte(s)) {
			t.Errorf("pdf unexpectedly contains %q", s)
		}
	}
}

func TestGenerateBorderedTable(t *testing.T) {
	doc := render(t, pdf.Options{SummaryStyle: pdf.SummaryTable})

	mustContain(t, doc,
		"FURNiSURE", "INVOICE", "Name: Mr. Hardik", "Date: 13/10/2025",
		"Address: Vadodara", "Contact: 8460656416",
		"SL", "Description", "Amount", "1", "4", "54,400", "10,000", "800",
		"Grand Total", "Rs. 60,000", "Rs. 76,200", "Rs. 16,200", "Rs. 30,000",
		compositionNotice, "For, FURNiSURE", "Partners",
	)
	mustNotContain(t, doc, "CGST", "SGST")
}

func TestGenerateInlineSummary(t *testing.T) {
	doc := render(t, pdf.Options{SummaryStyle: pdf.SummaryInline})

	mustContain(t, doc, "INVOICE", "For, FURNiSURE")
	mustNotContain(t, doc, compositionNotice)
	if !bytes.Contains(doc, []byte("Subtotal: Rs. 76,200  Discount: Rs. 16,200")) {
		t.Errorf("inline summary line missing")
	}
}

func TestGenerateWithTaxRows(t *testing.T) {
	doc := render(t, pdf.Options{
		IncludeTax: true,
		TaxRates:   quotation.TaxRates{CGST: 9, SGST: 9},
	})
	mustContain(t, doc, "CGST \\(9%\\)", "SGST \\(9%\\)")
}

func TestGenerateMissingLogoStillRenders(t *testing.T) {
	render(t, pdf.Options{IncludeLogo: true, LogoPath: filepath.Join(t.TempDir(), "nope.png")})
}

func TestGenerateWithLogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	doc := render(t, pdf.Options{IncludeLogo: true, LogoPath: path})
	if !bytes.Contains(doc, []byte("/Subtype /Image")) {
		t.Errorf("logo image object missing")
	}
}

func TestGenerateOverflowsToMorePages(t *testing.T) {
	q := hardik()
	for i := 0; i < 80; i++ {
		q.Items = append(q.Items, quotation.Item{Description: "Chair", Amount: 1500})
	}
	out, err := New(pdf.Options{}).WithoutCompression().Generate(q)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	mustContain(t, out, "1,500")
	if n := bytes.Count(out, []byte("/Type /Page\n")); n < 2 {
		t.Errorf("pages = %d, want at least 2", n)
	}
}
