package rate

import (
	"context"
	"time"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

// View is the caller-facing shape of one successful fetch.
type View struct {
	Base      domain.CurrencyCode
	Rates     []domain.RateEntry
	UpdatedAt string
	Provider  string
}

type Fetcher interface {
	FetchWithFallback(ctx context.Context) (*domain.RatesResult, error)
}

type Service struct {
	fetcher Fetcher
	now     func() time.Time
}

// Latest fetches with fallback and normalizes the result. A missing provider timestamp is
// replaced by the current UTC time.
func (s *Service) Latest(ctx context.Context) (View, error) {
	res, err := s.fetcher.FetchWithFallback(ctx)
	if err != nil {
		return View{}, err
	}

	entries, err := Normalize(res)
	if err != nil {
		return View{}, err
	}

	updatedAt := res.UpdatedAt
	if updatedAt == "" {
		updatedAt = s.now().UTC().Format(time.RFC3339)
	}

	return View{
		Base:      domain.BaseCurrency,
		Rates:     entries,
		UpdatedAt: updatedAt,
		Provider:  res.Provider,
	}, nil
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher, now: time.Now}
}
