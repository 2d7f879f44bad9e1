package deskcalc_test

import (
	"math"
	"testing"

	"deskcalc"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "0"},
		{"neg-zero", math.Copysign(0, -1), "0"},
		{"int", 14, "14"},
		{"neg-int", -2, "-2"},
		{"frac", 7.5, "7.5"},
		{"neg-frac", -7.5, "-7.5"},
		{"grouping", 1234567.89, "1,234,567.89"},
		{"grouping-neg", -1234567, "-1,234,567"},
		{"noise-trim", 0.1 + 0.2, "0.3"},
		{"frac-cap", 2.0 / 3, "0.6666666667"},
		{"upper-threshold", 1e12, "1.000000e+12"},
		{"below-upper", 999999999999, "999,999,999,999"},
		{"neg-upper", -1e12, "-1.000000e+12"},
		{"lower-threshold", 1e-6, "0.000001"},
		{"below-lower", 1e-7, "1.000000e-07"},
		{"neg-below-lower", -1e-7, "-1.000000e-07"},
		{"exp-mantissa", 1.23456789e13, "1.234568e+13"},
		{"nan", math.NaN(), "Error"},
		{"inf", math.Inf(1), "Error"},
		{"neg-inf", math.Inf(-1), "Error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := deskcalc.FormatNumber(c.v); got != c.want {
				t.Errorf("FormatNumber(%v): want %q, got %q", c.v, c.want, got)
			}
		})
	}
}

func TestFormatNumberNeverNegativeZero(t *testing.T) {
	// Computations can produce -0 in several ways; none may display a sign.
	negOne := -1.0
	values := []float64{
		math.Copysign(0, -1),
		negOne * 0,
		0 / negOne,
	}
	for _, v := range values {
		if got := deskcalc.FormatNumber(v); got != "0" {
			t.Errorf("FormatNumber(%g): want %q, got %q", v, "0", got)
		}
	}
}
