package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/adapters"
	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

// Result labels passed to Recorder.
const (
	ResultGenerated = "generated"
	ResultCached    = "cached"
	ResultFailed    = "failed"
)

type Recorder interface {
	ObserveSummary(result string)
}

type Service struct {
	generator adapters.TextGenerator
	cache     adapters.SummaryCache
	ttl       time.Duration
	recorder  Recorder
}

// Generate makes at most one generator call. Without a generator it fails with
// ErrGeneratorUnavailable and never substitutes scripted text.
func (s *Service) Generate(ctx context.Context, rates []domain.RateEntry, focus string, tone domain.Tone) (domain.MarketSummary, error) {
	if s.generator == nil {
		return domain.MarketSummary{}, domain.ErrGeneratorUnavailable
	}

	system, user := BuildPrompt(rates, focus, tone)
	key := system + "\x00" + user

	if s.cacheEnabled() {
		if cached, ok := s.cache.Get(key); ok {
			s.record(ResultCached)
			return cached, nil
		}
	}

	text, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		s.record(ResultFailed)
		return domain.MarketSummary{}, fmt.Errorf("failed to generate summary: %w", err)
	}

	out, err := ParseSummary(text, rates)
	if err != nil {
		s.record(ResultFailed)
		return domain.MarketSummary{}, err
	}

	if s.cacheEnabled() {
		s.cache.Set(key, out, s.ttl)
	}
	s.record(ResultGenerated)
	logrus.WithFields(logrus.Fields{"tone": tone, "highlights": len(out.Highlights)}).Debug("market summary generated")
	return out, nil
}

// Available reports whether a generator is configured.
func (s *Service) Available() bool { return s.generator != nil }

func (s *Service) cacheEnabled() bool { return s.cache != nil && s.ttl > 0 }

func (s *Service) record(result string) {
	if s.recorder != nil {
		s.recorder.ObserveSummary(result)
	}
}

type Option func(*Service)

// WithCache memoizes results for ttl; a non-positive ttl leaves caching off.
func WithCache(c adapters.SummaryCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.ttl = ttl
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService accepts a nil generator; Generate then reports ErrGeneratorUnavailable.
func NewService(generator adapters.TextGenerator, opts ...Option) *Service {
	s := &Service{generator: generator}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
