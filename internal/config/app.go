package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Providers struct {
	PrimaryURL   string `mapstructure:"primary_url"`
	SecondaryURL string `mapstructure:"secondary_url"`
}

type Generator struct {
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type Agent struct {
	Name           string `mapstructure:"name"`
	Version        string `mapstructure:"version"`
	Description    string `mapstructure:"description"`
	SummaryEnabled bool   `mapstructure:"summary_enabled"`
	RatesPrice     string `mapstructure:"rates_price"`
	SummaryPrice   string `mapstructure:"summary_price"`
}

// Payments is passed through to the agent manifest untouched.
type Payments struct {
	Network        string `mapstructure:"network"`
	PayTo          string `mapstructure:"pay_to"`
	FacilitatorURL string `mapstructure:"facilitator_url"`
}

type Scheduler struct {
	ProbeIntervalSec int `mapstructure:"probe_interval_sec"`
}

type Cache struct {
	SummaryTTLSec int   `mapstructure:"summary_ttl_sec"`
	MaxItems      int64 `mapstructure:"max_items"`
}

// DbServer is optional; an empty DSN disables the provider attempt audit.
type DbServer struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (c DbServer) Enabled() bool { return c.DSN != "" }

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	Providers  Providers  `mapstructure:"providers"`
	Generator  Generator  `mapstructure:"generator"`
	Agent      Agent      `mapstructure:"agent"`
	Payments   Payments   `mapstructure:"payments"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Cache      Cache      `mapstructure:"cache"`
	DbServer   DbServer   `mapstructure:"db_server"`
}

// Load reads .env and the yaml file at path when they exist, then applies env overrides.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err = v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("generator.model", "gpt-4o-mini")
	v.SetDefault("generator.temperature", 0.4)
	v.SetDefault("generator.max_tokens", 400)

	v.SetDefault("agent.name", "usd-conversions-agent")
	v.SetDefault("agent.version", "0.1.0")
	v.SetDefault("agent.description", "Live USD exchange rates for EUR, CNY, JPY, GBP and AUD with an optional market summary")
	v.SetDefault("agent.summary_enabled", true)
	v.SetDefault("agent.rates_price", "0.001")
	v.SetDefault("agent.summary_price", "0.005")

	v.SetDefault("scheduler.probe_interval_sec", 300)
	v.SetDefault("cache.summary_ttl_sec", 600)
	v.SetDefault("cache.max_items", 256)
	v.SetDefault("db_server.max_conns", 10)
}

func bindEnv(v *viper.Viper) {
	// http
	_ = v.BindEnv("http_server.port", "PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// logging
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")

	// providers
	_ = v.BindEnv("providers.primary_url", "PRIMARY_PROVIDER_URL")
	_ = v.BindEnv("providers.secondary_url", "SECONDARY_PROVIDER_URL")

	// text generator
	_ = v.BindEnv("generator.api_key", "OPENAI_API_KEY")
	_ = v.BindEnv("generator.base_url", "OPENAI_BASE_URL")
	_ = v.BindEnv("generator.model", "OPENAI_MODEL")
	_ = v.BindEnv("generator.temperature", "OPENAI_TEMPERATURE")
	_ = v.BindEnv("generator.max_tokens", "OPENAI_MAX_TOKENS")

	// agent + payments
	_ = v.BindEnv("agent.name", "AGENT_NAME")
	_ = v.BindEnv("agent.version", "AGENT_VERSION")
	_ = v.BindEnv("agent.summary_enabled", "AGENT_SUMMARY_ENABLED")
	_ = v.BindEnv("agent.rates_price", "AGENT_RATES_PRICE")
	_ = v.BindEnv("agent.summary_price", "AGENT_SUMMARY_PRICE")
	_ = v.BindEnv("payments.network", "PAYMENTS_NETWORK")
	_ = v.BindEnv("payments.pay_to", "PAYMENTS_PAY_TO")
	_ = v.BindEnv("payments.facilitator_url", "PAYMENTS_FACILITATOR_URL")

	// background + storage
	_ = v.BindEnv("scheduler.probe_interval_sec", "PROBE_INTERVAL_SEC")
	_ = v.BindEnv("cache.summary_ttl_sec", "SUMMARY_CACHE_TTL_SEC")
	_ = v.BindEnv("cache.max_items", "SUMMARY_CACHE_MAX_ITEMS")
	_ = v.BindEnv("db_server.dsn", "DB_DSN")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
}

func (c *AppConfig) Validate() error {
	if c.HTTPServer.Port == "" {
		return errors.New("invalid config: http_server.port is required")
	}
	if c.HTTPClient.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid config: http_client.timeout_seconds must be positive, got %d", c.HTTPClient.TimeoutSeconds)
	}
	if c.Generator.Temperature < 0 || c.Generator.Temperature > 2 {
		return fmt.Errorf("invalid config: generator.temperature must be within [0, 2], got %v", c.Generator.Temperature)
	}
	if c.Generator.MaxTokens < 0 {
		return fmt.Errorf("invalid config: generator.max_tokens must not be negative, got %d", c.Generator.MaxTokens)
	}
	if c.Scheduler.ProbeIntervalSec < 0 {
		return fmt.Errorf("invalid config: scheduler.probe_interval_sec must not be negative, got %d", c.Scheduler.ProbeIntervalSec)
	}
	if c.Cache.SummaryTTLSec < 0 {
		return fmt.Errorf("invalid config: cache.summary_ttl_sec must not be negative, got %d", c.Cache.SummaryTTLSec)
	}
	if c.Cache.SummaryTTLSec > 0 && c.Cache.MaxItems <= 0 {
		return fmt.Errorf("invalid config: cache.max_items must be positive when the summary cache is enabled, got %d", c.Cache.MaxItems)
	}
	return nil
}
