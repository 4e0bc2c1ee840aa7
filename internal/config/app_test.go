package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, 10, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, "info", cfg.Logging.Level)
	require.True(t, cfg.Agent.SummaryEnabled)
	require.Equal(t, 300, cfg.Scheduler.ProbeIntervalSec)
	require.Equal(t, 600, cfg.Cache.SummaryTTLSec)
	require.False(t, cfg.DbServer.Enabled())
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9090"
providers:
  primary_url: "http://primary.local/latest"
generator:
  model: "test-model"
  temperature: 0.2
agent:
  summary_enabled: false
payments:
  network: "base-sepolia"
  pay_to: "0xabc"
db_server:
  dsn: "postgres://u:p@localhost:5432/fx"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, "http://primary.local/latest", cfg.Providers.PrimaryURL)
	require.Equal(t, "test-model", cfg.Generator.Model)
	require.InDelta(t, 0.2, cfg.Generator.Temperature, 1e-6)
	require.False(t, cfg.Agent.SummaryEnabled)
	require.Equal(t, "base-sepolia", cfg.Payments.Network)
	require.Equal(t, "0xabc", cfg.Payments.PayTo)
	require.True(t, cfg.DbServer.Enabled())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
generator:
  model: "file-model"
`)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "env-model")
	t.Setenv("OPENAI_TEMPERATURE", "0.7")
	t.Setenv("PROBE_INTERVAL_SEC", "0")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sk-test", cfg.Generator.APIKey)
	require.Equal(t, "env-model", cfg.Generator.Model)
	require.InDelta(t, 0.7, cfg.Generator.Temperature, 1e-6)
	require.Zero(t, cfg.Scheduler.ProbeIntervalSec)
}

func TestLoad_InvalidTemperature(t *testing.T) {
	t.Setenv("OPENAI_TEMPERATURE", "3.5")

	_, err := Load("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "generator.temperature")
}

func TestLoad_BrokenYAML(t *testing.T) {
	path := writeConfig(t, "http_server: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	valid := func() AppConfig {
		return AppConfig{
			HTTPServer: HTTPServer{Port: "8080"},
			HTTPClient: HTTPClient{TimeoutSeconds: 5},
			Cache:      Cache{SummaryTTLSec: 60, MaxItems: 10},
		}
	}

	tests := []struct {
		name   string
		mutate func(*AppConfig)
		ok     bool
	}{
		{name: "valid", mutate: func(*AppConfig) {}, ok: true},
		{name: "no port", mutate: func(c *AppConfig) { c.HTTPServer.Port = "" }},
		{name: "zero timeout", mutate: func(c *AppConfig) { c.HTTPClient.TimeoutSeconds = 0 }},
		{name: "negative probe interval", mutate: func(c *AppConfig) { c.Scheduler.ProbeIntervalSec = -1 }},
		{name: "negative ttl", mutate: func(c *AppConfig) { c.Cache.SummaryTTLSec = -5 }},
		{name: "cache without size", mutate: func(c *AppConfig) { c.Cache.MaxItems = 0 }},
		{name: "cache disabled without size", mutate: func(c *AppConfig) { c.Cache = Cache{} }, ok: true},
		{name: "negative max tokens", mutate: func(c *AppConfig) { c.Generator.MaxTokens = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
