// Package zigfp implements parameterized binary fixed-point numbers: signed
// integers of a chosen bit width interpreted as raw/scaling, where scaling is
// a power of two fixed per format.
//
// A format is described by a Type, built with New or MustNew from the pair
// (bits, scaling). All dependent constants, such as the safe integer range
// and the default decimal rendering width, derive from that pair. Values of
// the same Type combine with shift-based arithmetic that
// widens into a double-width accumulator before scaling back down, so no
// representable operand pair can overflow an intermediate result.
package zigfp

import (
	"errors"
	"fmt"

	"github.com/ziglibs/zigfp/internal/mathutil"
)

var (
	// ErrBits is returned by New for bit widths outside 4..64.
	ErrBits = errors.New("zigfp: unsupported bit width")
	// ErrScaling is returned by New for a scaling factor that is not a
	// power of two in [1, max(Int)].
	ErrScaling = errors.New("zigfp: invalid scaling factor")
	// ErrRange is returned when an integer does not fit the format's safe
	// integer range, see Type.MinInt and Type.MaxInt.
	ErrRange = errors.New("zigfp: value out of range")
)

const (
	minBits = 4
	maxBits = 64
)

// Prebuilt formats covering the common range/precision trade-offs.
var (
	// Q21_10 spans about ±2,097,152 in steps of ~0.001
	// (32-bit storage, 1024x scaling).
	Q21_10 = MustNew(32, 1<<10)
	// Q15_16 spans about ±32,768 in steps of ~0.000015
	// (32-bit storage, 65536x scaling).
	Q15_16 = MustNew(32, 1<<16)
	// Q31_32 spans about ±2.1e9 with sub-nanosecond granularity
	// (64-bit storage, 2^32 scaling).
	Q31_32 = MustNew(64, 1<<32)
)

// Type describes one fixed-point format. It is immutable and comparable;
// two Types built from the same (bits, scaling) pair are equal. The zero
// Type is not a valid format.
type Type struct {
	bits  uint8
	shift uint8
}

// New builds the format with the given storage width and scaling factor.
// bits must be in 4..64; scaling must be a power of two no larger than the
// largest positive number of a bits-wide signed integer. Invalid
// combinations are rejected here, before any value can exist.
func New(bits int, scaling int64) (Type, error) {
	if bits < minBits || bits > maxBits {
		return Type{}, fmt.Errorf("%w: %d", ErrBits, bits)
	}
	t := Type{bits: uint8(bits)}
	switch {
	case scaling < 1:
		return Type{}, fmt.Errorf("%w: %d is not positive", ErrScaling, scaling)
	case scaling > t.maxRaw():
		return Type{}, fmt.Errorf("%w: %d exceeds the %d-bit range", ErrScaling, scaling, bits)
	case !mathutil.IsPow2(scaling):
		return Type{}, fmt.Errorf("%w: %d is not a power of two", ErrScaling, scaling)
	}
	t.shift = uint8(mathutil.Log2(scaling))
	return t, nil
}

// MustNew is like New but panics on invalid combinations. It is meant for
// package-level format variables, where a bad (bits, scaling) pair aborts
// the program at init.
func MustNew(bits int, scaling int64) Type {
	t, err := New(bits, scaling)
	if err != nil {
		panic(err)
	}
	return t
}

// Bits returns the storage width of the format.
func (t Type) Bits() int {
	return int(t.bits)
}

// Scaling returns the number of raw units per whole number.
func (t Type) Scaling() int64 {
	return 1 << t.shift
}

// Precision is the guaranteed maximum absolute error of a float round-trip
// through the format: 2/scaling.
func (t Type) Precision() float64 {
	return 2.0 / float64(t.Scaling())
}

// Decimals is the number of digits after the decimal point used when no
// precision is requested explicitly: the decimal width of the format's
// granularity, round(shift*log10(2)), never less than one digit.
func (t Type) Decimals() int {
	d := (int(t.shift)*30103 + 50000) / 100000
	if d < 1 {
		d = 1
	}
	return d
}

// intPartBits is the width of the safe integer range: a number of that
// width survives scaling*i without overflowing the storage width.
func (t Type) intPartBits() uint {
	return uint(t.bits) - uint(t.shift) - 1
}

// MaxInt returns the largest integer that FromInt accepts.
func (t Type) MaxInt() int64 {
	return int64(1)<<(t.intPartBits()-1) - 1
}

// MinInt returns the smallest integer that FromInt accepts.
func (t Type) MinInt() int64 {
	return -(int64(1) << (t.intPartBits() - 1))
}

func (t Type) maxRaw() int64 {
	return int64(1)<<(t.bits-1) - 1
}

func (t Type) minRaw() int64 {
	return -(int64(1) << (t.bits - 1))
}

// Max returns the largest representable value of the format.
func (t Type) Max() Value {
	return Value{raw: t.maxRaw(), typ: t}
}

// Min returns the smallest representable value of the format.
func (t Type) Min() Value {
	return Value{raw: t.minRaw(), typ: t}
}

// Zero returns the zero value of the format. Unlike a plain Value{}, the
// result carries the format and can be unmarshaled into.
func (t Type) Zero() Value {
	return Value{typ: t}
}

func (t Type) String() string {
	return fmt.Sprintf("fixed(%d,%d)", t.Bits(), t.Scaling())
}

// wrap narrows an accumulator result to the storage width.
func (t Type) wrap(raw int64) Value {
	return Value{raw: mathutil.SignExtend(raw, uint(t.bits)), typ: t}
}
