package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errx "github.com/markup-chain-poc/server/internal/core/error"
)

func TestParse(t *testing.T) {
	m, err := Parse("1299.99")
	require.NoError(t, err)
	assert.Equal(t, "1299.99", m.String())
	assert.False(t, m.Rounded())
	assert.Equal(t, int32(2), m.Scale())

	m, err = Parse("100")
	require.NoError(t, err)
	assert.Equal(t, "100", m.String())
	assert.Equal(t, int32(0), m.Scale())

	m, err = Parse("5432.00")
	require.NoError(t, err)
	assert.Equal(t, "5432.00", m.String())
}

func TestParseRejectsInvalidLiterals(t *testing.T) {
	for _, in := range []string{"", "abc", "12.3.4", "1,299.99", "NaN", "$100"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, errx.ErrParse)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a price") })
	assert.NotPanics(t, func() { MustParse("0.05") })
}

func TestArithmeticIsExact(t *testing.T) {
	price := MustParse("1299.99")
	flat := price.Mul(decimal.RequireFromString("0.05"))
	assert.Equal(t, "64.9995", flat.String())

	base := price.Add(flat)
	assert.Equal(t, "1364.9895", base.String())

	people := base.Mul(decimal.RequireFromString("0.012")).MulInt(3)
	assert.Equal(t, "49.1396220", people.String())

	// 0.1 + 0.2 has no binary floating point error here.
	sum := MustParse("0.1").Add(MustParse("0.2"))
	assert.True(t, sum.Equal(MustParse("0.3")))
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100.00"},
		{"100.5088", "100.51"},
		{"100.504999", "100.50"},
		{"100.505", "100.50"},
		{"100.515", "100.52"},
		{"100.525", "100.52"},
		{"1591.577757", "1591.58"},
		{"-2.345", "-2.34"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := MustParse(tc.in).RoundTo(2)
			assert.Equal(t, tc.want, got.String())
			assert.True(t, got.Rounded())
			assert.Equal(t, int32(2), got.Scale())
		})
	}
}

func TestRoundToIsIdempotent(t *testing.T) {
	for _, in := range []string{"0", "1.005", "100.504999", "13707.625", "6199.8084", "99999.999"} {
		once := MustParse(in).RoundTo(2)
		twice := once.RoundTo(2)
		assert.Equal(t, once.String(), twice.String(), in)
		assert.True(t, once.Equal(twice), in)
	}
}

func TestRoundToNegativeScaleClampsToZero(t *testing.T) {
	assert.Equal(t, "102", MustParse("101.5").RoundTo(-3).String())
}

func TestCompare(t *testing.T) {
	a := MustParse("100.00")
	b := MustParse("100")
	c := MustParse("100.01")

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, 1, c.Cmp(a))
	assert.True(t, MustParse("-0.01").IsNegative())
	assert.False(t, Zero.IsNegative())
}

func TestMarshalText(t *testing.T) {
	b, err := MustParse("105").RoundTo(2).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "105.00", string(b))
}
