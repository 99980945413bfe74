package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders v for the display. Values with more than precision
// fractional digits are rounded to precision and trailing zeros are trimmed.
// Magnitudes of 1e21 and above use exponent notation.
func FormatResult(v float64, precision int) string {
	if v == 0 || math.IsNaN(v) {
		return "0"
	}
	if math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= precision {
		return s
	}
	s = strconv.FormatFloat(v, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
