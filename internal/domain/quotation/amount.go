package quotation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value that decodes leniently: numbers, numeric
// strings and null are accepted, anything unparsable becomes 0.
type Amount float64

func (a Amount) Float64() float64 { return float64(a) }

func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*a = 0
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// ParseAmount reads a user-typed amount such as "54400", "54,400" or
// " 1,23,456.50 ". Commas are digit grouping, a currency prefix is ignored.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Amount(f)
}
