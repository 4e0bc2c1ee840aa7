package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

type MockGenerator struct{ mock.Mock }

func (m *MockGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

type MockCache struct{ mock.Mock }

func (m *MockCache) Get(key string) (domain.MarketSummary, bool) {
	args := m.Called(key)
	s, _ := args.Get(0).(domain.MarketSummary)
	return s, args.Bool(1)
}

func (m *MockCache) Set(key string, summary domain.MarketSummary, ttl time.Duration) {
	m.Called(key, summary, ttl)
}

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) ObserveSummary(result string) { m.Called(result) }

func TestService_Generate_NoGenerator(t *testing.T) {
	svc := NewService(nil)
	require.False(t, svc.Available())

	out, err := svc.Generate(context.Background(), testRates, "", domain.ToneNeutral)
	require.ErrorIs(t, err, domain.ErrGeneratorUnavailable)
	require.Empty(t, out.Summary)
	require.Empty(t, out.Highlights)
}

func TestService_Generate_ParsesJSON(t *testing.T) {
	gen := new(MockGenerator)
	sys, user := BuildPrompt(testRates, "euro", domain.ToneNeutral)
	gen.On("Generate", mock.Anything, sys, user).
		Return(`{"summary":"USD strengthens","highlights":["EUR down 1%"]}`, nil).Once()
	rec := new(MockRecorder)
	rec.On("ObserveSummary", ResultGenerated).Once()

	out, err := NewService(gen, WithRecorder(rec)).Generate(context.Background(), testRates, "euro", domain.ToneNeutral)
	require.NoError(t, err)
	require.Equal(t, "USD strengthens", out.Summary)
	require.Equal(t, []string{"EUR down 1%"}, out.Highlights)
	gen.AssertExpectations(t)
	rec.AssertExpectations(t)
}

func TestService_Generate_GeneratorError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
	rec := new(MockRecorder)
	rec.On("ObserveSummary", ResultFailed).Once()

	_, err := NewService(gen, WithRecorder(rec)).Generate(context.Background(), testRates, "", domain.ToneNeutral)
	require.Error(t, err)
	require.Contains(t, err.Error(), "timeout")
	rec.AssertExpectations(t)
}

func TestService_Generate_EmptyOutput(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("  ", nil).Once()

	_, err := NewService(gen).Generate(context.Background(), testRates, "", domain.ToneNeutral)
	require.ErrorIs(t, err, domain.ErrGeneratorEmptyResponse)
}

func TestService_Generate_CacheHitSkipsGenerator(t *testing.T) {
	gen := new(MockGenerator)
	cache := new(MockCache)
	cached := domain.MarketSummary{Summary: "cached", Highlights: []string{"h"}}
	cache.On("Get", mock.Anything).Return(cached, true).Once()

	out, err := NewService(gen, WithCache(cache, time.Minute)).Generate(context.Background(), testRates, "", domain.ToneNeutral)
	require.NoError(t, err)
	require.Equal(t, cached, out)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Generate_CacheMissStoresResult(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("Stable.\n- EUR flat", nil).Once()
	cache := new(MockCache)
	cache.On("Get", mock.Anything).Return(domain.MarketSummary{}, false).Once()
	want := domain.MarketSummary{Summary: "Stable.", Highlights: []string{"EUR flat"}}
	cache.On("Set", mock.Anything, want, time.Minute).Once()

	out, err := NewService(gen, WithCache(cache, time.Minute)).Generate(context.Background(), testRates, "", domain.ToneNeutral)
	require.NoError(t, err)
	require.Equal(t, want, out)
	cache.AssertExpectations(t)
}

func TestService_Generate_ZeroTTLDisablesCache(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("Stable.", nil).Once()
	cache := new(MockCache)

	_, err := NewService(gen, WithCache(cache, 0)).Generate(context.Background(), testRates, "", domain.ToneNeutral)
	require.NoError(t, err)
	cache.AssertNotCalled(t, "Get", mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}
