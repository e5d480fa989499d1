package zigfp

import (
	"fmt"
	"io"
	"strconv"
)

// Text renders the value in the given mode:
//
//	'f', 'v'           decimal point, no exponent
//	'e', 'E'           scientific notation
//	'x', 'X'           hexadecimal float
//	'g', 'G'           %e for large exponents, %f otherwise
//
// prec is the number of digits after the decimal (after the radix point for
// 'x'). A negative prec selects the format's default decimal width for 'f'
// and the shortest exact rendering for the other modes. All modes render
// the 32-bit float projection of the value; rendering is a decimal
// approximation, not an exact expansion of the raw integer.
func (v Value) Text(verb byte, prec int) string {
	f := float64(v.Float32())
	switch verb {
	case 'e', 'E', 'g', 'G', 'x', 'X':
		return strconv.FormatFloat(f, verb, prec, 32)
	default:
		if prec < 0 {
			prec = v.typ.Decimals()
		}
		return strconv.FormatFloat(f, 'f', prec, 32)
	}
}

// String renders the value in decimal with the format's default precision.
func (v Value) String() string {
	return v.Text('f', -1)
}

// Format implements fmt.Formatter. Supported verbs are %v, %s, %f, %e, %E,
// %g, %G, %x and %X, with an optional precision, e.g. "%.2f".
func (v Value) Format(fs fmt.State, c rune) {
	prec, ok := fs.Precision()
	if !ok {
		prec = -1
	}
	switch c {
	case 'v', 's', 'f', 'F':
		io.WriteString(fs, v.Text('f', prec))
	case 'e', 'E', 'g', 'G', 'x', 'X':
		io.WriteString(fs, v.Text(byte(c), prec))
	default:
		fmt.Fprintf(fs, "%%!%c(zigfp.Value=%s)", c, v.Text('f', -1))
	}
}
