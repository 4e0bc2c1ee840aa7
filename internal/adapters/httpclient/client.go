package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const (
	maxBodyBytes    = 1 << 20
	maxErrBodyBytes = 256
)

// getJSON performs one GET and returns the body of a 2xx response.
func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", domain.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w code %d: %s", domain.ErrUnexpectedStatus, resp.StatusCode, snippet(body))
	}
	return body, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrBodyBytes {
		s = s[:maxErrBodyBytes] + "..."
	}
	return s
}

// pickRates extracts every supported currency from raw, looking each one up under key(code).
func pickRates(raw map[string]any, key func(domain.CurrencyCode) string) (map[domain.CurrencyCode]float64, error) {
	rates := make(map[domain.CurrencyCode]float64, len(domain.SupportedCurrencies))
	var missing []string

	for _, code := range domain.SupportedCurrencies {
		v, ok := raw[key(code)].(float64)
		if !ok || !domain.ValidRate(v) {
			missing = append(missing, code.String())
			continue
		}
		rates[code] = v
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing rate for currency %s", domain.ErrMissingCurrencyData, strings.Join(missing, ", "))
	}
	return rates, nil
}

func upper(c domain.CurrencyCode) string { return c.String() }

func lower(c domain.CurrencyCode) string { return c.Lower() }
