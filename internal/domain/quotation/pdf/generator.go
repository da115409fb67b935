package pdf

import "furnisure/backend/internal/domain/quotation"

type Generator interface {
	Generate(q quotation.Quotation) ([]byte, error)
}

type SummaryStyle string

const (
	SummaryInline SummaryStyle = "inline-text"
	SummaryTable  SummaryStyle = "bordered-table"
)

// ParseSummaryStyle falls back to the bordered table for unknown values.
func ParseSummaryStyle(s string) SummaryStyle {
	if SummaryStyle(s) == SummaryInline {
		return SummaryInline
	}
	return SummaryTable
}

// Options selects between the document layouts the business uses.
type Options struct {
	IncludeTax   bool
	IncludeLogo  bool
	LogoPath     string
	SummaryStyle SummaryStyle
	TaxRates     quotation.TaxRates
	Letterhead   []string
}

var DefaultLetterhead = []string{
	"FURNiSURE",
	"Custom Furniture & Interior Solutions",
	"Vadodara, Gujarat",
}

func DefaultOptions() Options {
	return Options{
		IncludeLogo:  true,
		LogoPath:     "public/logo.png",
		SummaryStyle: SummaryTable,
		Letterhead:   DefaultLetterhead,
	}
}
