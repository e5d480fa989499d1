package zigfp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errNoFormat = errors.New("zigfp: cannot unmarshal into a value with no format")

// FromString parses a decimal, exponent or hexadecimal-float string into a
// value of the format, truncating to its granularity. Inputs beyond the
// representable range clamp to Max or Min, like FromFloat64.
func (t Type) FromString(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return t.Zero(), fmt.Errorf("zigfp: parsing %q: %w", s, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return t.Zero(), fmt.Errorf("%w: %q", ErrRange, s)
	}
	return t.FromFloat64(f), nil
}

// MustFromString is like FromString but panics on a parse error.
func (t Type) MustFromString(s string) Value {
	v, err := t.FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText renders the value in decimal with the format's default
// precision.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.Text('f', -1)), nil
}

// UnmarshalText parses into v using v's format, so the destination must
// carry one already, e.g. v := zigfp.Q21_10.Zero().
func (v *Value) UnmarshalText(data []byte) error {
	if v.typ == (Type{}) {
		return errNoFormat
	}
	parsed, err := v.typ.FromString(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON marshals the value as a quoted decimal string, like "0.100".
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.Text('f', -1) + `"`), nil
}

// UnmarshalJSON accepts a quoted string or a bare JSON number. As with
// UnmarshalText, the destination value must carry a format.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return v.UnmarshalText([]byte(s))
}
