package rate

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

// --- Testify mocks ---

type MockRatesProvider struct {
	mock.Mock
	name string
}

func (m *MockRatesProvider) Name() string { return m.name }

func (m *MockRatesProvider) FetchRates(ctx context.Context) (*domain.RatesResult, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(*domain.RatesResult)
	return res, args.Error(1)
}

type MockAttemptRepository struct{ mock.Mock }

func (m *MockAttemptRepository) SaveAttempts(ctx context.Context, attempts []domain.ProviderAttempt) error {
	args := m.Called(ctx, attempts)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListRecent(ctx context.Context, limit int) ([]domain.ProviderAttempt, error) {
	args := m.Called(ctx, limit)
	attempts, _ := args.Get(0).([]domain.ProviderAttempt)
	return attempts, args.Error(1)
}

type recordingObserver struct {
	calls [][]domain.ProviderAttempt
}

func (o *recordingObserver) ObserveFetch(_ context.Context, attempts []domain.ProviderAttempt) {
	o.calls = append(o.calls, attempts)
}

func fullRates(provider string) *domain.RatesResult {
	return &domain.RatesResult{
		Rates: map[domain.CurrencyCode]float64{
			domain.EUR: 0.92,
			domain.CNY: 7.12,
			domain.JPY: 150.5,
			domain.GBP: 0.79,
			domain.AUD: 1.53,
		},
		UpdatedAt: "2025-10-17",
		Provider:  provider,
	}
}
