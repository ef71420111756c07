package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ARTM2000/acorn"
	"github.com/ARTM2000/acorn/internal/config"
)

// app is what every subcommand runs against once the root command has
// loaded the configuration and built the context.
type app struct {
	cfg config.Config
	log *slog.Logger
	ctx acorn.Context
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		roots      []string
	)
	a := &app{}

	root := &cobra.Command{
		Use:           "garage",
		Short:         "Inspect the garage bean context",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("root") {
				cfg.Roots = roots
			}
			if verbose {
				cfg.Log.Level = "debug"
			}
			a.cfg = cfg
			a.log = cfg.Log.Logger(cmd.ErrOrStderr())

			a.ctx, err = acorn.NewContext(acorn.DefaultCatalog, cfg.Roots, acorn.WithLogger(a.log))
			if err != nil {
				return fmt.Errorf("building context: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().StringSliceVarP(&roots, "root", "r", nil, "namespace roots to discover (overrides config)")

	root.AddCommand(newBeansCmd(a), newGetCmd(a), newServeCmd(a))
	return root
}
