package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const systemPrompt = `You are a concise foreign-exchange market analyst.
Reply with a single JSON object and nothing else: {"summary": string, "highlights": string[]}.
The summary is one or two sentences. Give at most three highlights, each under 100 characters.
Only use the rates you are given; do not invent historical moves or news.`

var toneGuidance = map[domain.Tone]string{
	domain.ToneNeutral:    "Keep a neutral, factual tone.",
	domain.ToneOptimistic: "Use a measured, optimistic tone.",
	domain.ToneCautious:   "Use a cautious tone and point out risks.",
}

// BuildPrompt renders the system and user messages for one summary request. Output depends
// only on the arguments, so it doubles as a cache key.
func BuildPrompt(rates []domain.RateEntry, focus string, tone domain.Tone) (system, user string) {
	guidance, ok := toneGuidance[tone]
	if !ok {
		guidance = toneGuidance[domain.ToneNeutral]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current exchange rates (1 %s =):\n", domain.BaseCurrency)
	for _, r := range rates {
		fmt.Fprintf(&b, "- %s: %s\n", r.Currency, formatRate(r.Rate))
	}

	focus = truncateFocus(strings.TrimSpace(focus))
	if focus != "" {
		fmt.Fprintf(&b, "\nFocus: %s\n", focus)
	}
	fmt.Fprintf(&b, "\nTone: %s. %s", tone, guidance)

	return systemPrompt, b.String()
}

func formatRate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}

func truncateFocus(s string) string {
	if utf8.RuneCountInString(s) <= domain.MaxFocusLength {
		return s
	}
	return string([]rune(s)[:domain.MaxFocusLength])
}
