package zigfp

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Millimeter-precision meters: 10m + 1cm + 9cm - 10m renders as 0.100 with
// the format's natural three decimals.
func TestDefaultFormatting(t *testing.T) {
	a := assert.New(t)
	meters := Q21_10
	v := meters.FromFloat64(10)
	v = v.Add(meters.FromFloat64(0.01))
	v = v.Add(meters.FromFloat64(0.09))
	d := v.Sub(meters.FromFloat64(10))

	a.Equal("0.100", d.String())
	a.Equal("0.100", d.Text('f', -1))
	a.Equal("0.10", d.Text('f', 2))
	a.Equal("0.1", d.Text('f', 1))
	a.Equal("0.09961", d.Text('f', 5))

	a.Equal("0.100", fmt.Sprintf("%v", d))
	a.Equal("0.100", fmt.Sprintf("%f", d))
	a.Equal("0.10", fmt.Sprintf("%.2f", d))
	a.Equal("0.1", fmt.Sprintf("%.1f", d))
}

func TestFormatModes(t *testing.T) {
	a := assert.New(t)

	d := Q21_10.FromRaw(102) // 0.099609375
	a.Equal("0x1.98p-04", d.Text('x', -1))
	a.Equal("9.96e-02", d.Text('e', 2))
	a.Equal("9.96E-02", d.Text('E', 2))
	a.Equal("0x1.98p-04", fmt.Sprintf("%x", d))
	a.Equal("9.96e-02", fmt.Sprintf("%.2e", d))

	v := Q15_16.FromFloat64(1.5)
	a.Equal("1.50000", v.String())
	a.Equal("1.500e+00", v.Text('e', 3))
	a.Equal("0x1.8p+00", v.Text('x', -1))
	a.Equal("1.5", v.Text('g', -1))

	a.Equal("-0.250", Q21_10.FromFloat64(-0.25).String())
	a.Equal("0.000", Q21_10.Zero().String())
	a.Equal("1.0000000000", Q31_32.FromFloat64(1).String())
}

func TestFormatBadVerb(t *testing.T) {
	d := Q21_10.FromFloat64(1.5)
	assert.Equal(t, "%!d(zigfp.Value=1.500)", fmt.Sprintf("%d", d))
}

// Rendering goes through the 32-bit float projection; the scientific mode
// with no explicit precision is the shortest exact form of that projection.
func TestShortestScientific(t *testing.T) {
	for _, typ := range []Type{Q21_10, Q15_16} {
		for _, f := range []float64{0.099609375, 3.141592, -123.456} {
			v := typ.FromFloat64(f)
			want := strconv.FormatFloat(float64(v.Float32()), 'e', -1, 32)
			assert.Equal(t, want, v.Text('e', -1))
		}
	}
}

func TestTextAgainstDecimal(t *testing.T) {
	values := []float64{3.141592, 2.718281, 1.414213, 10.5, -123.456}
	for _, typ := range []Type{Q21_10, Q15_16} {
		prec := typ.Decimals()
		for _, f := range values {
			v := typ.FromFloat64(f)
			want := decimal.NewFromFloat32(v.Float32()).StringFixed(int32(prec))
			assert.Equal(t, want, v.Text('f', prec), "%v: %v", typ, f)
		}
	}
}
