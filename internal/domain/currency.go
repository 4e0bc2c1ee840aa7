package domain

import (
	"fmt"
	"strings"
)

type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	CNY CurrencyCode = "CNY"
	JPY CurrencyCode = "JPY"
	GBP CurrencyCode = "GBP"
	AUD CurrencyCode = "AUD"
)

// BaseCurrency is the currency every rate is quoted against.
const BaseCurrency = USD

// SupportedCurrencies is the fixed output order of every rates response.
var SupportedCurrencies = []CurrencyCode{EUR, CNY, JPY, GBP, AUD}

func NewCurrencyCode(s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsSupported() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return code, nil
}

func (c CurrencyCode) IsSupported() bool {
	for _, s := range SupportedCurrencies {
		if s == c {
			return true
		}
	}
	return false
}

func (c CurrencyCode) String() string { return string(c) }

// Lower returns the lower-case form used by providers keyed by lower-case codes.
func (c CurrencyCode) Lower() string { return strings.ToLower(string(c)) }
