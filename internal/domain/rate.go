package domain

import (
	"fmt"
	"math"
)

type RateEntry struct {
	Currency CurrencyCode `json:"currency" example:"EUR"`
	Rate     float64      `json:"rate" example:"0.9231"`
}

// RatesResult is one provider's answer. It lives for a single request only.
type RatesResult struct {
	Rates     map[CurrencyCode]float64
	UpdatedAt string
	Provider  string
}

// ValidRate reports whether v can be served as an exchange rate.
func ValidRate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// Validate checks that every supported currency carries a usable rate.
func (r *RatesResult) Validate() error {
	for _, code := range SupportedCurrencies {
		v, ok := r.Rates[code]
		if !ok || !ValidRate(v) {
			return fmt.Errorf("%w: missing rate for currency %s", ErrMissingCurrencyData, code)
		}
	}
	return nil
}
