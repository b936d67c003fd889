package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"credit-simulator/config"
	"credit-simulator/logger"
)

var (
	version = "v0.1.0-dev"

	configPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "credit-simulator",
		Short:         "Synthetic multi-bureau credit reports and unified scores",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(
		newServeCmd(),
		newReportCmd(),
		newUnifyCmd(),
	)
	return root
}

// setup loads config and builds the logger shared by every command.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return cfg, log, nil
}
