package gtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   string
		format gtin.Format
	}{
		{"73513537", gtin.GTIN8},
		{"03485736", gtin.GTIN8},
		{"734092309436", gtin.GTIN12},
		{"0234248273487", gtin.GTIN13},
		{"10614141000415", gtin.GTIN14},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			g, err := gtin.Parse(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.format, g.Format())
			assert.Equal(t, tt.format.Length(), g.Len())
			assert.Equal(t, tt.code, g.String())
			assert.False(t, g.IsZero())
		})
	}

	t.Run("invalid codes", func(t *testing.T) {
		t.Parallel()
		for _, code := range []string{"", "73513536", "123456789010", "4006381333932", "10614141000416", "abcdefgh", "0123456"} {
			g, err := gtin.Parse(code)
			assert.ErrorIs(t, err, gtin.ErrInvalidFormat, code)
			assert.True(t, g.IsZero(), code)
		}
	})
}

func TestParseWithCheckDigit(t *testing.T) {
	t.Parallel()

	g, err := gtin.ParseWithCheckDigit("1061414100041")
	require.NoError(t, err)
	assert.Equal(t, "10614141000415", g.String())
	assert.Equal(t, gtin.GTIN14, g.Format())

	g, err = gtin.ParseWithCheckDigit("7351353")
	require.NoError(t, err)
	assert.Equal(t, gtin.MustParse("73513537"), g)

	_, err = gtin.ParseWithCheckDigit("abcdefgh")
	assert.ErrorIs(t, err, gtin.ErrInvalidFormat)

	_, err = gtin.ParseWithCheckDigit("73513537")
	assert.ErrorIs(t, err, gtin.ErrInvalidFormat)
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { gtin.MustParse("4006381333931") })
	assert.Panics(t, func() { gtin.MustParse("4006381333932") })
}

func TestGTIN_Digits(t *testing.T) {
	t.Parallel()

	g := gtin.MustParse("10614141000415")
	assert.Equal(t, 5, g.CheckDigit())

	expected := map[int]int{0: 1, 1: 0, 2: 6, 12: 1, 13: 5}
	for pos, digit := range expected {
		got, err := g.DigitAt(pos)
		require.NoError(t, err)
		assert.Equal(t, digit, got, "position %d", pos)
	}

	last, err := g.DigitAt(g.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, g.CheckDigit(), last)

	for _, pos := range []int{-1, 14, 100} {
		_, err := g.DigitAt(pos)
		assert.ErrorIs(t, err, gtin.ErrIndexOutOfRange, "position %d", pos)
	}

	assert.Equal(t, "1061414100041", g.Payload())
}

func TestGTIN_CheckDigitAgreesWithDigitAt(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"73513537", "734092309436", "0234248273487", "34957354738950"} {
		g := gtin.MustParse(code)
		last, err := g.DigitAt(g.Len() - 1)
		require.NoError(t, err)
		assert.Equal(t, g.CheckDigit(), last, code)
	}
}

func TestGTIN_Equality(t *testing.T) {
	t.Parallel()

	a := gtin.MustParse("10614141000415")
	b := gtin.MustParse("10614141000415")
	c := gtin.MustParse("0234248273487")

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a == b)
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))

	t.Run("usable as map key", func(t *testing.T) {
		t.Parallel()
		seen := map[gtin.GTIN]int{a: 1}
		seen[b]++
		assert.Equal(t, 2, seen[a])
	})
}

func TestGTIN_Hash(t *testing.T) {
	t.Parallel()

	a := gtin.MustParse("10614141000415")
	b := gtin.MustParse("10614141000415")
	c := gtin.MustParse("34957354738950")

	assert.Equal(t, a.Hash(), a.Hash())
	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestGTIN_GTIN14(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"73513537":       "00000073513537",
		"734092309436":   "00734092309436",
		"4006381333931":  "04006381333931",
		"10614141000415": "10614141000415",
	}
	for code, expected := range tests {
		g := gtin.MustParse(code)
		padded := g.GTIN14()
		assert.Equal(t, expected, padded.String())
		assert.Equal(t, gtin.GTIN14, padded.Format())
		assert.True(t, gtin.IsValid14(padded.String()))
		assert.Equal(t, g.CheckDigit(), padded.CheckDigit())
	}

	assert.True(t, gtin.GTIN{}.GTIN14().IsZero())
}

func TestGTIN_Zero(t *testing.T) {
	t.Parallel()

	var g gtin.GTIN
	assert.True(t, g.IsZero())
	assert.Equal(t, "", g.String())
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.CheckDigit())
	assert.Equal(t, "", g.Payload())
	assert.False(t, g.Format().IsValid())

	_, err := g.DigitAt(0)
	assert.ErrorIs(t, err, gtin.ErrIndexOutOfRange)
}
