package calc

import (
	"math"
	"testing"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		want      string
	}{
		{0, 8, "0"},
		{math.Copysign(0, -1), 8, "0"},
		{15, 8, "15"},
		{-3, 8, "-3"},
		{0.5, 8, "0.5"},
		{0.1 + 0.2, 8, "0.3"},
		{2.0 / 3.0, 8, "0.66666667"},
		{2.0 / 3.0, 2, "0.67"},
		{1.005, 8, "1.005"},
		{1e-10, 8, "0"},
		{-1e-10, 8, "0"},
		{123456789.126, 2, "123456789.13"},
		{1e20, 8, "100000000000000000000"},
		{1e21, 8, "1e+21"},
		{math.Inf(1), 8, "+Inf"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.in, tt.precision); got != tt.want {
			t.Errorf("FormatResult(%v, %d) = %q, want %q", tt.in, tt.precision, got, tt.want)
		}
	}
}
