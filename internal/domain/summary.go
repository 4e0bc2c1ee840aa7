package domain

import (
	"strings"
	"unicode/utf8"
)

// MaxFocusLength bounds the caller-supplied focus hint, counted in characters.
const MaxFocusLength = 240

type Tone string

const (
	ToneNeutral    Tone = "neutral"
	ToneOptimistic Tone = "optimistic"
	ToneCautious   Tone = "cautious"
)

// ParseTone maps user input to a Tone; empty input means neutral.
func ParseTone(s string) (Tone, error) {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case "", ToneNeutral:
		return ToneNeutral, nil
	case ToneOptimistic:
		return ToneOptimistic, nil
	case ToneCautious:
		return ToneCautious, nil
	default:
		return "", ErrUnknownTone
	}
}

// NormalizeFocus trims the focus hint and rejects anything longer than MaxFocusLength.
func NormalizeFocus(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxFocusLength {
		return "", ErrFocusTooLong
	}
	return s, nil
}

type MarketSummary struct {
	Summary    string
	Highlights []string
}
