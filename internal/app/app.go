package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wgopar/usd-conversions-agent/internal/adapters"
	"github.com/wgopar/usd-conversions-agent/internal/adapters/cache"
	"github.com/wgopar/usd-conversions-agent/internal/adapters/httpclient"
	"github.com/wgopar/usd-conversions-agent/internal/adapters/openai"
	"github.com/wgopar/usd-conversions-agent/internal/adapters/postgres"
	"github.com/wgopar/usd-conversions-agent/internal/api"
	"github.com/wgopar/usd-conversions-agent/internal/config"
	"github.com/wgopar/usd-conversions-agent/internal/platform/db"
	httpserver "github.com/wgopar/usd-conversions-agent/internal/platform/http"
	"github.com/wgopar/usd-conversions-agent/internal/rate"
	"github.com/wgopar/usd-conversions-agent/internal/rate/handler"
	"github.com/wgopar/usd-conversions-agent/internal/summary"
)

const startupTimeout = 10 * time.Second

// Components are the wired services shared by the server and the one-shot CLI commands.
type Components struct {
	Config    *config.AppConfig
	Registry  *prometheus.Registry
	Metrics   *rate.Metrics
	Providers []adapters.RatesProvider
	Board     *rate.StatusBoard
	Rates     *rate.Service
	Summaries *summary.Service
	// Attempts is nil when no database is configured or the audit was not requested.
	Attempts *postgres.AttemptRepository

	closers []func()
}

// SetupLogging configures the global logrus logger.
func SetupLogging(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// Build wires every component. withAudit connects to Postgres when a DSN is configured.
func Build(ctx context.Context, appCfg *config.AppConfig, withAudit bool) (*Components, error) {
	c := &Components{Config: appCfg, Registry: prometheus.NewRegistry()}
	c.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := rate.NewMetrics(c.Registry)
	if err != nil {
		return nil, err
	}
	c.Metrics = metrics

	// Base HTTP client (configurable timeout)
	baseHTTPClient := &http.Client{Timeout: time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second}

	primary := httpclient.NewOpenERAPIClient(baseHTTPClient, appCfg.Providers.PrimaryURL)
	secondary := httpclient.NewCurrencyAPIClient(baseHTTPClient, appCfg.Providers.SecondaryURL)
	c.Providers = []adapters.RatesProvider{primary, secondary}
	c.Board = rate.NewStatusBoard(primary, secondary)

	observers := []rate.Observer{metrics}
	if withAudit && appCfg.DbServer.Enabled() {
		startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
		defer cancel()

		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return nil, poolErr
		}
		c.closers = append(c.closers, pool.Close)
		if err = db.Migrate(startupCtx, pool); err != nil {
			c.Close()
			return nil, err
		}
		logrus.Info("✅ Postgres connection and migrations successful")

		c.Attempts = postgres.NewAttemptRepository(pool)
		observers = append(observers, rate.NewAuditRecorder(c.Attempts))
	}
	c.Rates = rate.NewService(rate.NewFallbackFetcher(primary, secondary, observers...))

	summaryOpts := []summary.Option{summary.WithRecorder(metrics)}
	if ttl := time.Duration(appCfg.Cache.SummaryTTLSec) * time.Second; ttl > 0 {
		summaryCache, cacheErr := cache.NewSummaryCache(appCfg.Cache.MaxItems)
		if cacheErr != nil {
			c.Close()
			return nil, cacheErr
		}
		c.closers = append(c.closers, summaryCache.Close)
		summaryOpts = append(summaryOpts, summary.WithCache(summaryCache, ttl))
	}

	// a missing credential leaves the generator nil so summaries report a configuration error
	var generator adapters.TextGenerator
	gen, genErr := openai.NewGenerator(openai.Config{
		APIKey:      appCfg.Generator.APIKey,
		BaseURL:     appCfg.Generator.BaseURL,
		Model:       appCfg.Generator.Model,
		Temperature: appCfg.Generator.Temperature,
		MaxTokens:   appCfg.Generator.MaxTokens,
	})
	if genErr == nil {
		generator = gen
	} else {
		logrus.WithError(genErr).Warn("OPENAI_API_KEY is not set, market summaries are unavailable")
	}
	c.Summaries = summary.NewService(generator, summaryOpts...)

	return c, nil
}

// Close releases resources in reverse order of acquisition.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Handler builds the router for c.
func (c *Components) Handler() http.Handler {
	var attempts handler.AttemptLister
	if c.Attempts != nil {
		attempts = c.Attempts
	}

	h := handler.NewHandler(
		c.Rates,
		c.Summaries,
		c.Board,
		attempts,
		handler.NewManifest(c.Config.Agent, c.Config.Payments, c.Config.Agent.SummaryEnabled),
	)
	return api.NewRouter(h, api.RouterOptions{
		SummaryEnabled: c.Config.Agent.SummaryEnabled,
		AuditEnabled:   c.Attempts != nil,
		Metrics:        promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{}),
	})
}

// Run wires the application components, starts HTTP server and probe scheduler, and
// blocks until ctx is cancelled or one of them fails.
func Run(ctx context.Context, appCfg *config.AppConfig) error {
	c, err := Build(ctx, appCfg, true)
	if err != nil {
		return err
	}
	defer c.Close()

	g, gctx := errgroup.WithContext(ctx)

	if appCfg.Scheduler.ProbeIntervalSec > 0 {
		interval := time.Duration(appCfg.Scheduler.ProbeIntervalSec) * time.Second
		scheduler := rate.NewProbeScheduler(c.Board, c.Metrics, interval, c.Providers...)
		if startErr := scheduler.Start(gctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start probe scheduler")
			return fmt.Errorf("failed to start probe scheduler: %w", startErr)
		}
		logrus.Info("✅ Probe scheduler activation successful")

		// Ensure scheduler stops before DB pool closes
		g.Go(func() error {
			<-gctx.Done()
			return scheduler.Shutdown()
		})
	}

	logrus.Info("Starting http server")
	g.Go(func() error {
		return httpserver.Start(gctx, appCfg.HTTPServer, c.Handler())
	})

	if err = g.Wait(); err != nil {
		logrus.Errorf("Agent stopped with error: %v", err)
		return err
	}
	return nil
}
