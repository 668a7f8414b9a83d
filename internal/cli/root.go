// Package cli implements the one-shot pod-dashboard commands.
package cli

import (
	"github.com/spf13/cobra"

	"pod-dashboard/internal/app"
	"pod-dashboard/internal/config"
)

type rootOptions struct {
	configPath string
	apiURL     string
	debug      bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pod-dashboard",
		Short:         "Inspect POD trend data from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "config/dashboard.yaml", "configuration file (optional)")
	flags.StringVar(&opts.apiURL, "api-url", "", "API base URL, overrides config and POD_API_BASE_URL")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newTrendsCommand(opts),
		newTrendCommand(opts),
		newImportTrendCommand(opts),
	)
	return cmd
}

// build loads configuration, applies flag overrides and assembles the app.
func (o *rootOptions) build() (*app.App, error) {
	cfg, err := config.NewManager().Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.apiURL != "" {
		cfg.API.BaseURL = o.apiURL
	}
	if o.debug {
		cfg.App.Debug = true
	} else if cfg.Logger.Level == "info" {
		// Keep command output readable unless asked otherwise.
		cfg.Logger.Level = "warn"
	}
	return app.New(cfg)
}
