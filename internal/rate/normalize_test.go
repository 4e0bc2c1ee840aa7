package rate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

func TestNormalize_FixedOrder(t *testing.T) {
	entries, err := Normalize(fullRates("p"))
	require.NoError(t, err)
	require.Equal(t, []domain.RateEntry{
		{Currency: domain.EUR, Rate: 0.92},
		{Currency: domain.CNY, Rate: 7.12},
		{Currency: domain.JPY, Rate: 150.5},
		{Currency: domain.GBP, Rate: 0.79},
		{Currency: domain.AUD, Rate: 1.53},
	}, entries)
}

func TestNormalize_IgnoresExtraCurrencies(t *testing.T) {
	res := fullRates("p")
	res.Rates["CHF"] = 0.8

	entries, err := Normalize(res)
	require.NoError(t, err)
	require.Len(t, entries, 5)
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		drop  bool
	}{
		{name: "missing", drop: true},
		{name: "nan", value: math.NaN()},
		{name: "inf", value: math.Inf(1)},
		{name: "zero", value: 0},
		{name: "negative", value: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := fullRates("p")
			if tt.drop {
				delete(res.Rates, domain.GBP)
			} else {
				res.Rates[domain.GBP] = tt.value
			}

			entries, err := Normalize(res)
			require.Nil(t, entries)
			require.ErrorIs(t, err, domain.ErrMissingCurrencyData)
			require.Contains(t, err.Error(), "missing rate for currency GBP")
		})
	}
}

func TestNormalize_NilResult(t *testing.T) {
	_, err := Normalize(nil)
	require.ErrorIs(t, err, domain.ErrMissingCurrencyData)
}
