package domain

import "errors"

var (
	ErrTransport           = errors.New("transport failure")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrMissingCurrencyData = errors.New("missing currency data")
	ErrAllProvidersFailed  = errors.New("all rate providers failed")

	ErrGeneratorUnavailable   = errors.New("text generator is not configured")
	ErrGeneratorEmptyResponse = errors.New("text generator returned no content")

	ErrFocusTooLong = errors.New("focus must be at most 240 characters")
	ErrUnknownTone  = errors.New("tone must be one of neutral, optimistic, cautious")
)
