package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhasan-dev/finarch/internal/currency"
)

func TestLookup(t *testing.T) {
	d := currency.Lookup(currency.BDT)
	assert.Equal(t, currency.BDT, d.Code)
	assert.Equal(t, 109.8, d.Rate)
	assert.Equal(t, "Bangladeshi Taka", d.Label)

	// Unknown codes fall back to the base currency.
	d = currency.Lookup(currency.Code("XYZ"))
	assert.Equal(t, currency.Base, d.Code)
	assert.Equal(t, float64(1), d.Rate)
}

func TestKnown(t *testing.T) {
	assert.True(t, currency.Known(currency.AUD))
	assert.False(t, currency.Known(currency.Code("EUR")))
}

func TestToBase(t *testing.T) {
	// 15.40 AUD at rate 1.54 is exactly 10 base units.
	assert.InDelta(t, 10.0, currency.ToBase(15.40, currency.AUD), 1e-9)
	assert.InDelta(t, 10.0, currency.FromBase(currency.ToBase(10.0, currency.USD), currency.USD), 1e-9)
}

func TestRoundTrip(t *testing.T) {
	for _, code := range currency.Codes() {
		base := 123.45
		got := currency.ToBase(currency.FromBase(base, code), code)
		assert.InDelta(t, base, got, 1e-9, "round trip through %s", code)
	}
}
