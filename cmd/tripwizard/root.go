package main

import (
	"context"
	"log/slog"

	"github.com/aretw0/tripwizard/internal/cli"
	"github.com/aretw0/tripwizard/internal/config"
	"github.com/spf13/cobra"
)

// app carries resolved configuration between the root command and its children.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	runtime *cli.Runtime
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tripwizard",
		Short: "Tripwizard plans a trip one page at a time",
		Long: `Tripwizard walks a traveller through profile, trip, destination and guide pages
and prints an itemized cost breakdown of the resulting trip.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.runtime == nil {
				return nil
			}
			return a.runtime.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default tripwizard.yaml if present)")
	flags.String("store", "", "Session store backend: file, redis or memory")
	flags.String("data-dir", "", "Directory for local wizard data")
	flags.String("session", "", "Session ID (default: saved or newly generated)")
	flags.String("catalog", "", "Directory with destinations/ and guides/ markdown files")
	flags.String("locale", "", "Locale for currency grouping, e.g. en-IN")
	flags.String("currency", "", "Currency symbol")
	flags.String("redis-addr", "", "Redis address for the redis backend")
	flags.String("log-level", "", "Log level: debug, info, warn, error or off")

	rootCmd.AddCommand(
		newProfileCmd(a),
		newTripCmd(a),
		newDestinationCmd(a),
		newGuideCmd(a),
		newNavCmd(a),
		newSummaryCmd(a),
		newSessionCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// configure resolves config: file, .env and environment first, then flags.
func (a *app) configure(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("store", &cfg.Store.Backend)
	override("data-dir", &cfg.Store.DataDir)
	override("session", &cfg.SessionID)
	override("catalog", &cfg.CatalogDir)
	override("locale", &cfg.Locale)
	override("currency", &cfg.Currency)
	override("redis-addr", &cfg.Redis.Addr)
	override("log-level", &cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cli.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// wizard builds the runtime on first use.
func (a *app) wizard(ctx context.Context, opts cli.BuildOptions) (*cli.Runtime, error) {
	if a.runtime != nil {
		return a.runtime, nil
	}
	rt, err := cli.Build(ctx, a.cfg, a.logger, opts)
	if err != nil {
		return nil, err
	}
	a.runtime = rt
	return rt, nil
}
