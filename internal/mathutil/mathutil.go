// Package mathutil contains the integer helpers the fixed-point types are
// built on: two's-complement narrowing to arbitrary widths and 128-bit
// widen-multiply-scale-down arithmetic.
package mathutil

import "math/bits"

// SignExtend interprets the low 'width' bits of v as a two's-complement
// number and sign-extends it to 64 bits. It is the narrowing step of every
// arithmetic operation: results computed in a wider accumulator wrap to the
// storage width exactly like a native integer of that width would.
func SignExtend(v int64, width uint) int64 {
	s := 64 - width
	return v << s >> s
}

// AbsUint64 returns |v| as a uint64. Unlike an int64 negation, this is
// total: the magnitude of math.MinInt64 is representable in the result.
func AbsUint64(v int64) uint64 {
	mask := v >> 63
	return uint64((v + mask) ^ mask)
}

// SameSign reports whether a and b have the same sign bit.
func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

// IsPow2 reports whether v is a positive power of two.
func IsPow2(v int64) bool {
	return v > 0 && v&(v-1) == 0
}

// Log2 returns floor(log2(v)) for v > 0.
func Log2(v int64) uint {
	return uint(bits.Len64(uint64(v)) - 1)
}

// Div128Lo divides the 128-bit number hi:lo by d and returns the low 64
// bits of the truncated quotient. d must be non-zero. Splitting the
// division in two keeps bits.Div64 within its quotient-fits-in-64-bits
// contract even when the full quotient does not.
func Div128Lo(hi, lo, d uint64) uint64 {
	qHi := hi / d
	rHi := hi - qHi*d
	q, _ := bits.Div64(rHi, lo, d)
	// full quotient = qHi<<64 + q; the high part vanishes mod 2^64.
	return q
}

// MulQuo128 computes (a*b)/d with a 128-bit intermediate product, truncating
// the quotient toward zero, and returns its low 64 bits with the algebraic
// sign applied. d must be non-zero. This is the widened accumulator of the
// fixed-point multiply and divide: the product of two 64-bit raws cannot
// overflow it, and the scale-down brings the result back to storage width.
func MulQuo128(a, b, d int64) int64 {
	hi, lo := bits.Mul64(AbsUint64(a), AbsUint64(b))
	q := Div128Lo(hi, lo, AbsUint64(d))
	if SameSign(a, b) == (d < 0) {
		return -int64(q)
	}
	return int64(q)
}
