package zigfp

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"-2.25", -2.25},
		{" 10 ", 10},
		{"1e3", 1000},
		{"2.5e-1", 0.25},
		{"0x1.8p+00", 1.5},
		{"0.100", 0.099609375}, // truncated to Q21_10 granularity
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := Q21_10.FromString(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, v.Float64())
		})
	}
}

func TestFromStringErrors(t *testing.T) {
	a := assert.New(t)
	for _, in := range []string{"", "abc", "12.5.6", "1,5"} {
		_, err := Q21_10.FromString(in)
		a.Error(err, in)
	}
	_, err := Q21_10.FromString("Inf")
	a.ErrorIs(err, ErrRange)
	_, err = Q21_10.FromString("NaN")
	a.ErrorIs(err, ErrRange)

	// Finite but out of range clamps rather than failing.
	v, err := Q21_10.FromString("1e30")
	a.NoError(err)
	a.True(v.Equal(Q21_10.Max()))

	a.Panics(func() {
		Q21_10.MustFromString("abc")
	})
	a.NotPanics(func() {
		Q21_10.MustFromString("1.5")
	})
}

func TestJSON(t *testing.T) {
	a := assert.New(t)

	v := Q21_10.FromFloat64(10.5)
	data, err := json.Marshal(v)
	a.NoError(err)
	a.Equal(`"10.500"`, string(data))

	got := Q21_10.Zero()
	a.NoError(json.Unmarshal(data, &got))
	a.True(got.Equal(v))

	// Bare numbers unmarshal too.
	got = Q21_10.Zero()
	a.NoError(json.Unmarshal([]byte(`10.5`), &got))
	a.True(got.Equal(v))

	var noFormat Value
	a.ErrorContains(json.Unmarshal([]byte(`"1"`), &noFormat), "no format")
}

func TestJSONStruct(t *testing.T) {
	a := assert.New(t)
	type account struct {
		Balance Value `json:"balance"`
	}

	src := account{Balance: Q21_10.FromFloat64(99.5)}
	data, err := json.Marshal(src)
	a.NoError(err)
	a.Equal(`{"balance":"99.500"}`, string(data))

	dst := account{Balance: Q21_10.Zero()}
	a.NoError(json.Unmarshal(data, &dst))
	a.True(dst.Balance.Equal(src.Balance))
}

func TestTextRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, typ := range formats {
		v := typ.FromFloat64(-3.5)
		data, err := v.MarshalText()
		a.NoError(err)

		got := typ.Zero()
		a.NoError(got.UnmarshalText(data))
		a.True(got.Equal(v), typ.String())
	}

	var noFormat Value
	a.ErrorContains(noFormat.UnmarshalText([]byte("1.5")), "no format")
}
