package rate

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/adapters"
	"github.com/wgopar/usd-conversions-agent/internal/domain"
)

const (
	defaultProbeInterval = 5 * time.Minute
	probeTimeout         = 10 * time.Second
)

// StatusBoard keeps the latest probe result of each provider.
type StatusBoard struct {
	mu       sync.RWMutex
	order    []string
	statuses map[string]domain.ProviderStatus
}

func NewStatusBoard(providers ...adapters.RatesProvider) *StatusBoard {
	b := &StatusBoard{statuses: make(map[string]domain.ProviderStatus, len(providers))}
	for _, p := range providers {
		b.order = append(b.order, p.Name())
	}
	return b
}

func (b *StatusBoard) Set(s domain.ProviderStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.known(s.Provider) {
		b.order = append(b.order, s.Provider)
	}
	b.statuses[s.Provider] = s
}

func (b *StatusBoard) known(name string) bool {
	for _, n := range b.order {
		if n == name {
			return true
		}
	}
	return false
}

// Snapshot lists providers in registration order. Providers never probed are reported
// unhealthy with a zero CheckedAt.
func (b *StatusBoard) Snapshot() []domain.ProviderStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.ProviderStatus, 0, len(b.order))
	for _, name := range b.order {
		s, ok := b.statuses[name]
		if !ok {
			s = domain.ProviderStatus{Provider: name, LastError: "not probed yet"}
		}
		out = append(out, s)
	}
	return out
}

// ProbeScheduler periodically calls every provider directly and records its health.
type ProbeScheduler struct {
	providers []adapters.RatesProvider
	board     *StatusBoard
	metrics   *Metrics
	interval  time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

// ProbeOnce calls each provider in turn and updates the board.
func (s *ProbeScheduler) ProbeOnce(ctx context.Context, execID string) {
	for _, p := range s.providers {
		status := probe(ctx, p)
		s.board.Set(status)
		s.metrics.ObserveProbe(status)

		entry := logrus.WithFields(logrus.Fields{
			"provider":   status.Provider,
			"exec_id":    execID,
			"latency_ms": status.LatencyMS,
		})
		if status.Healthy {
			entry.Debug("provider probe succeeded")
		} else {
			entry.WithField("error", status.LastError).Warn("provider probe failed")
		}
	}
}

func probe(ctx context.Context, p adapters.RatesProvider) domain.ProviderStatus {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	started := time.Now()
	res, err := p.FetchRates(probeCtx)
	if err == nil {
		err = checkResult(res)
	}

	status := domain.ProviderStatus{
		Provider:  p.Name(),
		Healthy:   err == nil,
		LatencyMS: time.Since(started).Milliseconds(),
		CheckedAt: time.Now().UTC(),
	}
	if err != nil {
		status.LastError = err.Error()
	}
	return status
}

func (s *ProbeScheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		s.ProbeOnce(jobCtx, uuid.NewString())
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Probe scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *ProbeScheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *ProbeScheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewProbeScheduler(board *StatusBoard, metrics *Metrics, interval time.Duration, providers ...adapters.RatesProvider) *ProbeScheduler {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &ProbeScheduler{
		providers: providers,
		board:     board,
		metrics:   metrics,
		interval:  interval,
	}
}
