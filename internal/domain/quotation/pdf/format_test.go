package pdf

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{800, "800"},
		{1000, "1,000"},
		{1500, "1,500"},
		{5500, "5,500"},
		{9999.5, "9,999.50"},
		{100000, "1,00,000"},
		{10000, "10,000"},
		{54400, "54,400"},
		{76200, "76,200"},
		{123456.5, "1,23,456.50"},
		{12345678, "1,23,45,678"},
		{-16200, "-16,200"},
		{0.004, "0"},
		{99.999, "100"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseSummaryStyle(t *testing.T) {
	if got := ParseSummaryStyle("inline-text"); got != SummaryInline {
		t.Fatalf("got %q", got)
	}
	for _, s := range []string{"", "bordered-table", "fancy"} {
		if got := ParseSummaryStyle(s); got != SummaryTable {
			t.Fatalf("ParseSummaryStyle(%q) = %q", s, got)
		}
	}
}
