// Package cmd defines and implements the CLI commands for the dcmap-crawler
// executable.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rbeggs/dcmap-crawler/internal/config"
	"github.com/rbeggs/dcmap-crawler/internal/logging"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dcmap-crawler",
		Short: "Crawls a data center directory and exports facility records.",
		Long: `dcmap-crawler walks a hierarchical data center directory
(country -> state -> city listing pages), extracts structured facility
records, and writes the deduplicated result as a CSV dataset.`,

		// Config is loaded by cobra.OnInitialize before this hook runs, so
		// the logger can pick up the configured mode.
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.InitLogger(viper.GetBool("logging.development"))
		},

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(func() {
		config.InitConfig(cfgFile)
	})

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.dcmap-crawler/config.yaml)")

	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// Execute is the main entry point. A zero-record crawl and any hard failure
// both exit non-zero with a diagnostic on the error stream.
func Execute() {
	logging.InitLogger(true)

	if err := newRootCmd().Execute(); err != nil {
		logging.L.Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}
