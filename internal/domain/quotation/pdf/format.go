package pdf

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR groups digits the Indian way: the last three digits, then pairs
// (1,23,45,678). Paise are printed only when non-zero.
func FormatINR(v float64) string {
	neg := v < 0
	v = math.Abs(v)
	cents := int64(math.Round(v * 100))
	whole, frac := cents/100, cents%100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	if neg && cents != 0 {
		b.WriteByte('-')
	}
	if len(digits) <= 3 {
		b.WriteString(digits)
	} else {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		if first := len(head) % 2; first > 0 {
			b.WriteString(head[:first])
			b.WriteByte(',')
			head = head[first:]
		}
		for i := 0; i < len(head); i += 2 {
			b.WriteString(head[i : i+2])
			b.WriteByte(',')
		}
		b.WriteString(tail)
	}
	if frac != 0 {
		b.WriteByte('.')
		if frac < 10 {
			b.WriteByte('0')
		}
		b.WriteString(strconv.FormatInt(frac, 10))
	}
	return b.String()
}
