package summary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

var testRates = []domain.RateEntry{
	{Currency: domain.EUR, Rate: 0.92},
	{Currency: domain.CNY, Rate: 7.1234567},
	{Currency: domain.JPY, Rate: 150.5},
	{Currency: domain.GBP, Rate: 0.79},
	{Currency: domain.AUD, Rate: 1.53},
}

func TestParseSummary_StrictJSON(t *testing.T) {
	out, err := ParseSummary(`{"summary":"USD strengthens","highlights":["EUR down 1%"]}`, testRates)
	require.NoError(t, err)
	require.Equal(t, domain.MarketSummary{Summary: "USD strengthens", Highlights: []string{"EUR down 1%"}}, out)
}

func TestParseSummary_PlainLines(t *testing.T) {
	out, err := ParseSummary("Rates look stable.\n- EUR flat\n- JPY flat", testRates)
	require.NoError(t, err)
	require.Equal(t, domain.MarketSummary{Summary: "Rates look stable.", Highlights: []string{"EUR flat", "JPY flat"}}, out)
}

func TestParseSummary_JSONHighlightsCleanedAndCapped(t *testing.T) {
	out, err := ParseSummary(`{"summary":"  Mixed  ","highlights":[" a ", "", 7, "b", "c", "d"]}`, testRates)
	require.NoError(t, err)
	require.Equal(t, "Mixed", out.Summary)
	require.Equal(t, []string{"a", "b", "c"}, out.Highlights)
}

func TestParseSummary_JSONInCodeFence(t *testing.T) {
	out, err := ParseSummary("```json\n{\"summary\":\"USD firm\",\"highlights\":[\"GBP soft\"]}\n```", testRates)
	require.NoError(t, err)
	require.Equal(t, "USD firm", out.Summary)
	require.Equal(t, []string{"GBP soft"}, out.Highlights)
}

func TestParseSummary_JSONWithoutSummaryFallsBackToLines(t *testing.T) {
	out, err := ParseSummary(`{"highlights":["x"]}`, testRates)
	require.NoError(t, err)
	require.Equal(t, `{"highlights":["x"]}`, out.Summary)
	require.Len(t, out.Highlights, 3)
}

func TestParseSummary_BulletStyles(t *testing.T) {
	text := "Summary line\n\n1. first\n2) second\n• third\n* fourth"
	out, err := ParseSummary(text, testRates)
	require.NoError(t, err)
	require.Equal(t, "Summary line", out.Summary)
	require.Equal(t, []string{"first", "second", "third"}, out.Highlights)
}

func TestParseSummary_SignedAndDecimalFiguresKept(t *testing.T) {
	out, err := ParseSummary("Dollar firm.\n1.5% gain for USD vs JPY\n-0.3% for EUR overnight\n- 2. GBP steady", nil)
	require.NoError(t, err)
	require.Equal(t, "Dollar firm.", out.Summary)
	require.Equal(t, []string{"1.5% gain for USD vs JPY", "-0.3% for EUR overnight", "2. GBP steady"}, out.Highlights)
}

func TestParseSummary_BareMarkerLineSkipped(t *testing.T) {
	out, err := ParseSummary("Flat.\n-\n- AUD flat", testRates)
	require.NoError(t, err)
	require.Equal(t, []string{"AUD flat"}, out.Highlights)
}

func TestParseSummary_WindowsLineEndings(t *testing.T) {
	out, err := ParseSummary("Calm day.\r\n- EUR flat\r\n", testRates)
	require.NoError(t, err)
	require.Equal(t, "Calm day.", out.Summary)
	require.Equal(t, []string{"EUR flat"}, out.Highlights)
}

func TestParseSummary_SynthesizesHighlights(t *testing.T) {
	out, err := ParseSummary("Only one line here.", testRates)
	require.NoError(t, err)
	require.Equal(t, "Only one line here.", out.Summary)
	require.Equal(t, []string{
		"1 USD = 0.9200 EUR",
		"1 USD = 7.1235 CNY",
		"1 USD = 150.5000 JPY",
	}, out.Highlights)
}

func TestParseSummary_JSONWithEmptyHighlightsSynthesizes(t *testing.T) {
	out, err := ParseSummary(`{"summary":"Quiet","highlights":[]}`, testRates[:2])
	require.NoError(t, err)
	require.Equal(t, []string{"1 USD = 0.9200 EUR", "1 USD = 7.1235 CNY"}, out.Highlights)
}

func TestParseSummary_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\n"} {
		_, err := ParseSummary(in, testRates)
		require.ErrorIs(t, err, domain.ErrGeneratorEmptyResponse)
	}
}
