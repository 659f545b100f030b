package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v as the shortest plain decimal that parses back to
// the same value. Infinities render as "inf"/"-inf" and NaN as "NaN".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseNumber is the inverse of FormatNumber.
func ParseNumber(s string) (float64, error) {
	switch strings.TrimSpace(s) {
	case "inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &FormatError{Text: s, Err: err}
	}
	return v, nil
}
