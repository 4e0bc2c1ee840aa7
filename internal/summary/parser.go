package summary

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const maxHighlights = 3

// A marker only counts when followed by whitespace, so "-0.3%" and "1.5%" keep their figures.
var bulletPrefix = regexp.MustCompile(`^(?:[-*•]+|\d+[.)])(?:\s+|$)`)

// ParseSummary extracts a summary from generator output. It tries a JSON object first,
// then plain lines, and synthesizes highlights from rates when none were found.
func ParseSummary(text string, rates []domain.RateEntry) (domain.MarketSummary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.MarketSummary{}, domain.ErrGeneratorEmptyResponse
	}

	out, ok := parseJSON(text)
	if !ok {
		out = parseLines(text)
	}
	if len(out.Highlights) == 0 {
		out.Highlights = synthesizeHighlights(rates)
	}
	return out, nil
}

func parseJSON(text string) (domain.MarketSummary, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &raw); err != nil {
		return domain.MarketSummary{}, false
	}

	s, _ := raw["summary"].(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.MarketSummary{}, false
	}

	out := domain.MarketSummary{Summary: s}
	items, _ := raw["highlights"].([]any)
	for _, item := range items {
		h, ok := item.(string)
		if !ok {
			continue
		}
		if h = strings.TrimSpace(h); h == "" {
			continue
		}
		out.Highlights = append(out.Highlights, h)
		if len(out.Highlights) == maxHighlights {
			break
		}
	}
	return out, true
}

// stripCodeFence unwraps a ```json ... ``` block; anything else is returned as is.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") || len(text) < 6 {
		return text
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if i := strings.IndexByte(inner, '\n'); i >= 0 {
		inner = inner[i+1:]
	}
	return strings.TrimSpace(inner)
}

func parseLines(text string) domain.MarketSummary {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}

	out := domain.MarketSummary{Summary: lines[0]}
	for _, l := range lines[1:] {
		if len(out.Highlights) == maxHighlights {
			break
		}
		if h := strings.TrimSpace(bulletPrefix.ReplaceAllString(l, "")); h != "" {
			out.Highlights = append(out.Highlights, h)
		}
	}
	return out
}

func synthesizeHighlights(rates []domain.RateEntry) []string {
	n := min(len(rates), maxHighlights)
	out := make([]string, 0, n)
	for _, r := range rates[:n] {
		out = append(out, fmt.Sprintf("1 %s = %s %s", domain.BaseCurrency, formatRate(r.Rate), r.Currency))
	}
	return out
}
