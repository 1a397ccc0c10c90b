package vector

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// defaultMagnitudePrecision is used by %b when the format carries no precision.
const defaultMagnitudePrecision = 4

// String renders v as "{x}i + {y}j".
func (v Vec2) String() string {
	return formatFloat(v.X) + "i + " + formatFloat(v.Y) + "j"
}

// String renders v as "{x}i + {y}j + {z}k".
func (v Vec3) String() string {
	return formatFloat(v.X) + "i + " + formatFloat(v.Y) + "j + " + formatFloat(v.Z) + "k"
}

// MagnitudeString renders only the magnitude of v with the given number of
// decimal places.
func (v Vec2) MagnitudeString(decimals int) string {
	return formatFixed(v.Magnitude(), decimals)
}

func (v Vec3) MagnitudeString(decimals int) string {
	return formatFixed(v.Magnitude(), decimals)
}

// Format implements fmt.Formatter. %v and %s print String; %b prints the
// magnitude, e.g. fmt.Sprintf("%.2b", v).
func (v Vec2) Format(f fmt.State, verb rune) {
	formatVector(f, verb, v.String(), v.Magnitude())
}

func (v Vec3) Format(f fmt.State, verb rune) {
	formatVector(f, verb, v.String(), v.Magnitude())
}

func formatVector(f fmt.State, verb rune, text string, magnitude float64) {
	switch verb {
	case 'v', 's':
		pad(f, "", text, false)
	case 'q':
		pad(f, "", strconv.Quote(text), false)
	case 'b':
		prec, ok := f.Precision()
		if !ok {
			prec = defaultMagnitudePrecision
		}
		sign := ""
		if f.Flag('+') {
			sign = "+"
		}
		pad(f, sign, formatFixed(magnitude, prec), f.Flag('0') && !f.Flag('-'))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%s)", verb, text)
	}
}

// pad writes sign+s to the state's width. Zero padding goes between the sign
// and the digits.
func pad(f fmt.State, sign, s string, zeros bool) {
	width, ok := f.Width()
	n := len(sign) + len(s)
	if !ok || n >= width {
		_, _ = io.WriteString(f, sign+s)
		return
	}
	switch {
	case f.Flag('-'):
		_, _ = io.WriteString(f, sign+s+strings.Repeat(" ", width-n))
	case zeros:
		_, _ = io.WriteString(f, sign+strings.Repeat("0", width-n)+s)
	default:
		_, _ = io.WriteString(f, strings.Repeat(" ", width-n)+sign+s)
	}
}

// formatFloat uses the shortest decimal form that round-trips, so 1.0 renders
// as "1" and large magnitudes are never switched to exponent notation.
func formatFloat(x float64) string {
	return formatFixed(x, -1)
}

// formatFixed renders x with prec decimals (-1 for shortest). Infinities are
// written "inf" and "-inf", NaN as "NaN".
func formatFixed(x float64, prec int) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}
