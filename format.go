package deskcalc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fixed notation spanning more than these magnitudes is unreadable or
// misleadingly precise, so the formatter switches to exponential notation
// outside them. The thresholds are part of the display contract.
const (
	expUpper = 1e12
	expLower = 1e-6
)

// maxFrac is the most fractional digits fixed notation carries; anything
// longer is float64 representation noise.
const maxFrac = 10

var printer = message.NewPrinter(language.English)

// FormatNumber maps a computed value to its canonical display string.
// Non-finite values render as "Error", negative zero renders as zero,
// values outside the fixed-notation range render in exponential notation
// with six mantissa fraction digits, and everything else renders in fixed
// notation with digit grouping and at most ten fractional digits.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Error"
	}
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	abs := math.Abs(v)
	if abs >= expUpper || abs != 0 && abs < expLower {
		return strconv.FormatFloat(v, 'e', 6, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > maxFrac {
		s = strconv.FormatFloat(v, 'f', maxFrac, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return group(s)
}

// group inserts digit grouping into the integer part of a plain decimal
// string.
func group(s string) string {
	t := strings.TrimPrefix(s, "-")
	ip, frac := t, ""
	if dot := strings.IndexByte(t, '.'); dot >= 0 {
		ip, frac = t[:dot], t[dot:]
	}
	n, err := strconv.ParseInt(ip, 10, 64)
	if err != nil {
		// The integer part is under the exponential threshold, so it
		// always fits in an int64.
		return s
	}
	var b strings.Builder
	if len(t) != len(s) {
		b.WriteByte('-')
	}
	b.WriteString(printer.Sprintf("%d", n))
	b.WriteString(frac)
	return b.String()
}
