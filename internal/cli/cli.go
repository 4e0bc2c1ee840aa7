package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wgopar/usd-conversions-agent/internal/app"
	"github.com/wgopar/usd-conversions-agent/internal/config"
	"github.com/wgopar/usd-conversions-agent/internal/domain"
	"github.com/wgopar/usd-conversions-agent/internal/rate"
)

type options struct {
	configFile string
	cfg        *config.AppConfig
}

// NewRootCommand builds the agent CLI. Running it without a subcommand starts the server.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "usd-conversions-agent",
		Short:         "Live USD exchange rates with provider fallback and market summaries",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			app.SetupLogging(cfg.Logging)
			opts.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", config.DefaultConfigFile, "Path to config file")

	serve := serveCommand(opts)
	rootCmd.RunE = serve.RunE
	rootCmd.AddCommand(serve, ratesCommand(opts), summaryCommand(opts))
	return rootCmd
}

func serveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts.cfg)
		},
	}
}

type ratesOutput struct {
	Base      string             `json:"base"`
	Rates     []domain.RateEntry `json:"rates"`
	UpdatedAt string             `json:"updatedAt"`
	Provider  string             `json:"provider"`
}

func ratesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Fetch the current USD rates once and print them as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.Build(cmd.Context(), opts.cfg, false)
			if err != nil {
				return err
			}
			defer c.Close()

			v, err := c.Rates.Latest(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), toRatesOutput(v))
		},
	}
}

type summaryOutput struct {
	ratesOutput
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

func summaryCommand(opts *options) *cobra.Command {
	var focus, tone string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Fetch the current USD rates and print a generated market summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			normalizedFocus, err := domain.NormalizeFocus(focus)
			if err != nil {
				return err
			}
			parsedTone, err := domain.ParseTone(tone)
			if err != nil {
				return err
			}

			c, err := app.Build(cmd.Context(), opts.cfg, false)
			if err != nil {
				return err
			}
			defer c.Close()

			if !c.Summaries.Available() {
				return domain.ErrGeneratorUnavailable
			}

			v, err := c.Rates.Latest(cmd.Context())
			if err != nil {
				return err
			}
			s, err := c.Summaries.Generate(cmd.Context(), v.Rates, normalizedFocus, parsedTone)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), summaryOutput{
				ratesOutput: toRatesOutput(v),
				Summary:     s.Summary,
				Highlights:  s.Highlights,
			})
		},
	}
	cmd.Flags().StringVar(&focus, "focus", "", "Optional focus hint, at most 240 characters")
	cmd.Flags().StringVar(&tone, "tone", string(domain.ToneNeutral), "One of neutral, optimistic, cautious")
	return cmd
}

func toRatesOutput(v rate.View) ratesOutput {
	return ratesOutput{Base: v.Base.String(), Rates: v.Rates, UpdatedAt: v.UpdatedAt, Provider: v.Provider}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
