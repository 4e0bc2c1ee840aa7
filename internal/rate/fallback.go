package rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/adapters"
	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

// Observer is notified once per fetch with every provider attempt it made.
// Observers see the outcome; they never influence it.
type Observer interface {
	ObserveFetch(ctx context.Context, attempts []domain.ProviderAttempt)
}

// FallbackFetcher asks the primary provider first and the secondary one only when the
// primary fails. Calls never overlap.
type FallbackFetcher struct {
	primary   adapters.RatesProvider
	secondary adapters.RatesProvider
	observers []Observer
	now       func() time.Time
}

func (f *FallbackFetcher) FetchWithFallback(ctx context.Context) (*domain.RatesResult, error) {
	fetchID := uuid.New()
	attempts := make([]domain.ProviderAttempt, 0, 2)
	defer func() { f.notify(ctx, attempts) }()

	res, primaryErr := f.try(ctx, fetchID, 0, f.primary, &attempts)
	if primaryErr == nil {
		return res, nil
	}

	logrus.WithError(primaryErr).WithFields(logrus.Fields{
		"provider": f.primary.Name(),
		"fetch_id": fetchID,
	}).Warn("primary rates provider failed, falling back")

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rates fetch aborted after primary (%s) failed: %w", f.primary.Name(), errors.Join(err, primaryErr))
	}

	res, secondaryErr := f.try(ctx, fetchID, 1, f.secondary, &attempts)
	if secondaryErr == nil {
		return res, nil
	}

	logrus.WithError(secondaryErr).WithFields(logrus.Fields{
		"provider": f.secondary.Name(),
		"fetch_id": fetchID,
	}).Error("secondary rates provider failed")

	return nil, fmt.Errorf("%w: primary (%s): %w; secondary (%s): %w",
		domain.ErrAllProvidersFailed,
		f.primary.Name(), primaryErr,
		f.secondary.Name(), secondaryErr,
	)
}

func (f *FallbackFetcher) try(
	ctx context.Context,
	fetchID uuid.UUID,
	position int,
	p adapters.RatesProvider,
	attempts *[]domain.ProviderAttempt,
) (*domain.RatesResult, error) {
	started := f.now()
	res, err := p.FetchRates(ctx)
	if err == nil {
		err = checkResult(res)
	}

	a := domain.ProviderAttempt{
		ID:        uuid.New(),
		FetchID:   fetchID,
		Provider:  p.Name(),
		Position:  position,
		Outcome:   domain.OutcomeSuccess,
		ElapsedMS: f.now().Sub(started).Milliseconds(),
		StartedAt: started.UTC(),
	}
	if err != nil {
		a.Outcome = domain.OutcomeFailure
		a.Error = err.Error()
	}
	*attempts = append(*attempts, a)

	if err != nil {
		return nil, err
	}
	if res.Provider == "" {
		res.Provider = p.Name()
	}
	return res, nil
}

// checkResult re-applies the five-currency invariant to whatever an adapter returned.
func checkResult(res *domain.RatesResult) error {
	if res == nil {
		return fmt.Errorf("%w: provider returned no result", domain.ErrMalformedResponse)
	}
	return res.Validate()
}

func (f *FallbackFetcher) notify(ctx context.Context, attempts []domain.ProviderAttempt) {
	for _, o := range f.observers {
		o.ObserveFetch(ctx, attempts)
	}
}

func NewFallbackFetcher(primary, secondary adapters.RatesProvider, observers ...Observer) *FallbackFetcher {
	return &FallbackFetcher{
		primary:   primary,
		secondary: secondary,
		observers: observers,
		now:       time.Now,
	}
}
