package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const (
	OpenERAPIName = "open.er-api.com"
	OpenERAPIURL  = "https://open.er-api.com/v6/latest/USD"
)

// OpenERAPIClient is the primary rates provider.
type OpenERAPIClient struct {
	http *http.Client
	url  string
}

type openERAPIResponse struct {
	Result            string         `json:"result"`
	ErrorType         string         `json:"error-type"`
	BaseCode          string         `json:"base_code"`
	TimeLastUpdateUTC string         `json:"time_last_update_utc"`
	Rates             map[string]any `json:"rates"`
}

func (c *OpenERAPIClient) Name() string { return OpenERAPIName }

func (c *OpenERAPIClient) FetchRates(ctx context.Context) (*domain.RatesResult, error) {
	body, err := getJSON(ctx, c.http, c.url)
	if err != nil {
		return nil, err
	}

	var resp openERAPIResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrMalformedResponse, err)
	}

	if resp.Result != "success" {
		return nil, fmt.Errorf("%w: api returned non-success result %q %s", domain.ErrMalformedResponse, resp.Result, resp.ErrorType)
	}
	if resp.Rates == nil {
		return nil, fmt.Errorf("%w: response has no rates object", domain.ErrMalformedResponse)
	}

	rates, err := pickRates(resp.Rates, upper)
	if err != nil {
		return nil, err
	}

	return &domain.RatesResult{
		Rates:     rates,
		UpdatedAt: resp.TimeLastUpdateUTC,
		Provider:  OpenERAPIName,
	}, nil
}

func NewOpenERAPIClient(httpClient *http.Client, url string) *OpenERAPIClient {
	if url == "" {
		url = OpenERAPIURL
	}
	return &OpenERAPIClient{http: httpClient, url: url}
}
