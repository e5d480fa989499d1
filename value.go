package zigfp

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/ziglibs/zigfp/internal/mathutil"
)

// Value is a fixed-point number: a raw integer of its format's width,
// representing raw/scaling. Values are immutable; every operation returns a
// new Value. Binary operations require both operands to share a format and
// panic otherwise.
//
// Add, Sub, Mul and Div trust the caller's value range: results that leave
// the representable range wrap in two's complement, exactly like the native
// integer arithmetic underneath. The checked boundaries are FromInt/Int
// (ErrRange) and division by zero (panic).
type Value struct {
	raw int64
	typ Type
}

// Type returns the value's format.
func (v Value) Type() Type {
	return v.typ
}

// Raw returns the underlying integer, equal to the represented number times
// the scaling factor.
func (v Value) Raw() int64 {
	return v.raw
}

// FromRaw builds a value directly from raw integer units, wrapped to the
// format's width.
func (t Type) FromRaw(raw int64) Value {
	return t.wrap(raw)
}

// FromFloat64 converts a float, truncating toward zero to the format's
// granularity. Inputs beyond the representable range clamp to Max or Min;
// NaN maps to zero.
func (t Type) FromFloat64(f float64) Value {
	scaled := f * float64(t.Scaling())
	switch {
	case math.IsNaN(scaled):
		return t.Zero()
	case scaled >= float64(t.maxRaw()):
		return t.Max()
	case scaled <= float64(t.minRaw()):
		return t.Min()
	}
	return Value{raw: int64(scaled), typ: t}
}

// FromFloat is the generic form of Type.FromFloat64.
func FromFloat[T constraints.Float](t Type, f T) Value {
	return t.FromFloat64(float64(f))
}

// Float projects a value onto a floating type. The division by a
// power-of-two scaling is exact; any loss is T's own precision loss.
func Float[T constraints.Float](v Value) T {
	return T(float64(v.raw) / float64(v.typ.Scaling()))
}

// Float64 returns the value as a float64.
func (v Value) Float64() float64 {
	return Float[float64](v)
}

// Float32 returns the value as a float32.
func (v Value) Float32() float32 {
	return Float[float32](v)
}

// FromInt converts an integer exactly. Returns ErrRange if i is outside
// [MinInt, MaxInt], the range guaranteed to survive the scaling multiply.
func (t Type) FromInt(i int64) (Value, error) {
	if i < t.MinInt() || i > t.MaxInt() {
		return t.Zero(), fmt.Errorf("%w: %d outside [%d, %d]", ErrRange, i, t.MinInt(), t.MaxInt())
	}
	return Value{raw: i << t.shift, typ: t}, nil
}

// MustFromInt is like FromInt but panics on a range error.
func (t Type) MustFromInt(i int64) Value {
	v, err := t.FromInt(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns the integer part, truncated toward zero. Returns ErrRange if
// the quotient does not fit [MinInt, MaxInt]; that cannot happen for values
// produced by FromInt but can for arithmetic results.
func (v Value) Int() (int64, error) {
	q := v.raw / v.typ.Scaling()
	if q < v.typ.MinInt() || q > v.typ.MaxInt() {
		return 0, fmt.Errorf("%w: integer part %d outside [%d, %d]", ErrRange, q, v.typ.MinInt(), v.typ.MaxInt())
	}
	return q, nil
}

func (v Value) match(other Value) {
	if v.typ != other.typ {
		panic(fmt.Sprintf("zigfp: mismatched formats %v and %v", v.typ, other.typ))
	}
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	v.match(other)
	return v.typ.wrap(v.raw + other.raw)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	v.match(other)
	return v.typ.wrap(v.raw - other.raw)
}

// Mul returns v * other. The product is computed in a double-width
// accumulator and scaled back down, truncating toward zero, so the
// intermediate multiply cannot overflow.
func (v Value) Mul(other Value) Value {
	v.match(other)
	t := v.typ
	if t.bits <= 32 {
		return t.wrap(v.raw * other.raw / t.Scaling())
	}
	return t.wrap(mathutil.MulQuo128(v.raw, other.raw, t.Scaling()))
}

// Div returns v / other, truncated toward zero. The dividend is scaled up
// into the double-width accumulator before dividing, preserving fractional
// precision. Panics if other is zero.
func (v Value) Div(other Value) Value {
	v.match(other)
	if other.raw == 0 {
		panic("division by zero")
	}
	t := v.typ
	if t.bits <= 32 {
		return t.wrap((v.raw << t.shift) / other.raw)
	}
	return t.wrap(mathutil.MulQuo128(v.raw, t.Scaling(), other.raw))
}

// Mod returns the remainder of v / other. Both operands share a scale, so
// the raw remainder needs no rescaling. The result takes the sign of the
// dividend (truncated-division convention, as with Go's % operator).
// Panics if other is zero.
func (v Value) Mod(other Value) Value {
	v.match(other)
	if other.raw == 0 {
		panic("division by zero")
	}
	return Value{raw: v.raw % other.raw, typ: v.typ}
}

// Neg returns -v.
func (v Value) Neg() Value {
	return v.typ.wrap(-v.raw)
}

// Abs returns the absolute value. Like the arithmetic operators it wraps:
// the absolute value of Min is Min again.
func (v Value) Abs() Value {
	return v.typ.wrap(int64(mathutil.AbsUint64(v.raw)))
}

// Sign returns -1, 0 or 1.
func (v Value) Sign() int {
	switch {
	case v.raw > 0:
		return 1
	case v.raw < 0:
		return -1
	}
	return 0
}

// IsZero reports whether the value is zero.
func (v Value) IsZero() bool {
	return v.raw == 0
}

// Floor rounds toward negative infinity to a whole number.
func (v Value) Floor() Value {
	return Value{raw: v.raw &^ (v.typ.Scaling() - 1), typ: v.typ}
}

// Ceil rounds toward positive infinity to a whole number.
func (v Value) Ceil() Value {
	return v.typ.wrap((v.raw + v.typ.Scaling() - 1) &^ (v.typ.Scaling() - 1))
}

// Round rounds to the nearest whole number, ties toward positive infinity.
func (v Value) Round() Value {
	return v.typ.wrap((v.raw + v.typ.Scaling()>>1) &^ (v.typ.Scaling() - 1))
}

// Cmp compares two values: -1 if v < other, 0 if equal, 1 if v > other.
func (v Value) Cmp(other Value) int {
	v.match(other)
	switch {
	case v.raw > other.raw:
		return 1
	case v.raw < other.raw:
		return -1
	}
	return 0
}

// Equal reports v == other. Raw comparison is exact: all values of one
// format share a scale.
func (v Value) Equal(other Value) bool {
	v.match(other)
	return v.raw == other.raw
}

// LessThan reports v < other.
func (v Value) LessThan(other Value) bool {
	v.match(other)
	return v.raw < other.raw
}

// LessThanOrEqual reports v <= other.
func (v Value) LessThanOrEqual(other Value) bool {
	v.match(other)
	return v.raw <= other.raw
}

// GreaterThan reports v > other.
func (v Value) GreaterThan(other Value) bool {
	v.match(other)
	return v.raw > other.raw
}

// GreaterThanOrEqual reports v >= other.
func (v Value) GreaterThanOrEqual(other Value) bool {
	v.match(other)
	return v.raw >= other.raw
}
