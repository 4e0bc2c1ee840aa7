package domain

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fullRates() map[CurrencyCode]float64 {
	return map[CurrencyCode]float64{EUR: 0.92, CNY: 7.12, JPY: 150.1, GBP: 0.79, AUD: 1.52}
}

func TestRatesResult_Validate_Success(t *testing.T) {
	r := RatesResult{Rates: fullRates(), Provider: "test"}
	require.NoError(t, r.Validate())
}

func TestRatesResult_Validate_MissingCurrency(t *testing.T) {
	rates := fullRates()
	delete(rates, JPY)
	r := RatesResult{Rates: rates}

	err := r.Validate()
	require.ErrorIs(t, err, ErrMissingCurrencyData)
	require.Contains(t, err.Error(), "missing rate for currency JPY")
}

func TestRatesResult_Validate_RejectsUnusableValues(t *testing.T) {
	for name, v := range map[string]float64{
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
		"zero":     0,
		"negative": -1.5,
	} {
		t.Run(name, func(t *testing.T) {
			rates := fullRates()
			rates[GBP] = v
			r := RatesResult{Rates: rates}
			require.ErrorIs(t, r.Validate(), ErrMissingCurrencyData)
		})
	}
}

func TestNewCurrencyCode(t *testing.T) {
	code, err := NewCurrencyCode(" eur ")
	require.NoError(t, err)
	require.Equal(t, EUR, code)
	require.Equal(t, "eur", code.Lower())

	_, err = NewCurrencyCode("USD")
	require.Error(t, err)
}

func TestParseTone(t *testing.T) {
	tone, err := ParseTone("")
	require.NoError(t, err)
	require.Equal(t, ToneNeutral, tone)

	tone, err = ParseTone(" Cautious ")
	require.NoError(t, err)
	require.Equal(t, ToneCautious, tone)

	_, err = ParseTone("angry")
	require.ErrorIs(t, err, ErrUnknownTone)
}

func TestNormalizeFocus(t *testing.T) {
	focus, err := NormalizeFocus("  yen carry trade ")
	require.NoError(t, err)
	require.Equal(t, "yen carry trade", focus)

	_, err = NormalizeFocus(strings.Repeat("é", MaxFocusLength))
	require.NoError(t, err)

	_, err = NormalizeFocus(strings.Repeat("a", MaxFocusLength+1))
	require.ErrorIs(t, err, ErrFocusTooLong)
}
