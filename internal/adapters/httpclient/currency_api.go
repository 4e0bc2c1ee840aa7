package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const (
	CurrencyAPIName = "fawazahmed0/currency-api"
	CurrencyAPIURL  = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies/usd.json"
)

// CurrencyAPIClient is the secondary rates provider. Its payload nests rates under a
// lower-case base code and keys them by lower-case currency codes.
type CurrencyAPIClient struct {
	http *http.Client
	url  string
}

type currencyAPIResponse struct {
	Date string         `json:"date"`
	USD  map[string]any `json:"usd"`
}

func (c *CurrencyAPIClient) Name() string { return CurrencyAPIName }

func (c *CurrencyAPIClient) FetchRates(ctx context.Context) (*domain.RatesResult, error) {
	body, err := getJSON(ctx, c.http, c.url)
	if err != nil {
		return nil, err
	}

	var resp currencyAPIResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrMalformedResponse, err)
	}
	if resp.USD == nil {
		return nil, fmt.Errorf("%w: response has no usd rates object", domain.ErrMalformedResponse)
	}

	rates, err := pickRates(resp.USD, lower)
	if err != nil {
		return nil, err
	}

	return &domain.RatesResult{
		Rates:     rates,
		UpdatedAt: resp.Date,
		Provider:  CurrencyAPIName,
	}, nil
}

func NewCurrencyAPIClient(httpClient *http.Client, url string) *CurrencyAPIClient {
	if url == "" {
		url = CurrencyAPIURL
	}
	return &CurrencyAPIClient{http: httpClient, url: url}
}
