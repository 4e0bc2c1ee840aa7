package rate

import (
	"fmt"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

// Normalize lists the result's rates in SupportedCurrencies order. It never returns a partial list.
func Normalize(res *domain.RatesResult) ([]domain.RateEntry, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: no rates result", domain.ErrMissingCurrencyData)
	}

	entries := make([]domain.RateEntry, 0, len(domain.SupportedCurrencies))
	for _, code := range domain.SupportedCurrencies {
		v, ok := res.Rates[code]
		if !ok || !domain.ValidRate(v) {
			return nil, fmt.Errorf("%w: missing rate for currency %s", domain.ErrMissingCurrencyData, code)
		}
		entries = append(entries, domain.RateEntry{Currency: code, Rate: v})
	}
	return entries, nil
}
