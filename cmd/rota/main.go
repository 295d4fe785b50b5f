// Package main provides the CLI entry point for rota-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rota-go/internal/config"
	"github.com/ukaji3/rota-go/internal/logger"
	"go.uber.org/zap"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "rota",
		Short: "Allocate rota staff to teams",
		Long: `rota reads the weekly SHO rota sheet from an Excel workbook and
allocates each day's available doctors to teams, reporting locum shortfalls.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level override: debug, info, warn, error")

	rootCmd.AddCommand(
		newProcessCmd(flags),
		newServeCmd(flags),
		newSheetsCmd(),
		newConfigCmd(flags),
	)
	return rootCmd
}

// load reads configuration and builds the logger it asks for.
func (f *globalFlags) load() (*config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.NewConfig(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
