package quotation

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const (
	numberPrefix = "Q-"
	firstNumber  = 1001
)

// NextQuotationNumber allocates the number following latest, the most
// recently created quotation. With no previous quotation, or one whose
// number has no numeric suffix, numbering starts at Q-1001.
func NextQuotationNumber(latest *Quotation) string {
	if latest == nil {
		return formatNumber(firstNumber)
	}
	n, ok := parseNumber(latest.QuotationNo)
	if !ok {
		return formatNumber(firstNumber)
	}
	return formatNumber(n + 1)
}

func parseNumber(no string) (int64, bool) {
	no = strings.TrimSpace(no)
	i := strings.LastIndex(no, "-")
	if i < 0 || i == len(no)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(no[i+1:], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func formatNumber(n int64) string {
	return fmt.Sprintf("%s%d", numberPrefix, n)
}

// CompareNumbers orders quotation numbers by numeric suffix, so Q-999 sorts
// before Q-1000. Numbers without a suffix compare as strings and sort before
// numbered ones.
func CompareNumbers(a, b string) int {
	na, okA := parseNumber(a)
	nb, okB := parseNumber(b)
	switch {
	case okA && okB:
		return cmp.Compare(na, nb)
	case okA:
		return 1
	case okB:
		return -1
	}
	return strings.Compare(a, b)
}
