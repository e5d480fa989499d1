package zigfp

import (
	xfixed "golang.org/x/image/math/fixed"
)

// Conversions to and from the golang.org/x/image fixed-point types, which a
// lot of the Go graphics and font stack speaks natively. Rescaling between
// binary scales truncates toward zero when precision is dropped, and the
// result wraps to the destination width when range is dropped.

const (
	shift26_6  = 6
	shift52_12 = 12
)

func rescale(raw int64, from, to uint) int64 {
	if to >= from {
		return raw << (to - from)
	}
	return raw / (1 << (from - to))
}

// FromInt26_6 converts an x/image 26.6 fixed-point number into the format.
func (t Type) FromInt26_6(x xfixed.Int26_6) Value {
	return t.wrap(rescale(int64(x), shift26_6, uint(t.shift)))
}

// Int26_6 converts the value to an x/image 26.6 fixed-point number.
func (v Value) Int26_6() xfixed.Int26_6 {
	return xfixed.Int26_6(rescale(v.raw, uint(v.typ.shift), shift26_6))
}

// FromInt52_12 converts an x/image 52.12 fixed-point number into the format.
func (t Type) FromInt52_12(x xfixed.Int52_12) Value {
	return t.wrap(rescale(int64(x), shift52_12, uint(t.shift)))
}

// Int52_12 converts the value to an x/image 52.12 fixed-point number.
func (v Value) Int52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(rescale(v.raw, uint(v.typ.shift), shift52_12))
}
