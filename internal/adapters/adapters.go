package adapters

import (
	"context"
	"time"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

type RatesProvider interface {
	Name() string
	FetchRates(ctx context.Context) (*domain.RatesResult, error)
}

// TextGenerator sends one system+user prompt pair and returns the raw completion text.
type TextGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

type AttemptRepository interface {
	SaveAttempts(ctx context.Context, attempts []domain.ProviderAttempt) error
	ListRecent(ctx context.Context, limit int) ([]domain.ProviderAttempt, error)
}

type SummaryCache interface {
	Get(key string) (domain.MarketSummary, bool)
	Set(key string, summary domain.MarketSummary, ttl time.Duration)
}
