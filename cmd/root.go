// Package cmd implements the restyled CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagDir      string
	flagConfig   string
	flagCacheDir string
	flagOutput   string
	flagDebug    bool
)

// rootCmd is the top-level command for restyled.
var rootCmd = &cobra.Command{
	Use:   "restyled",
	Short: "Resolve the effective restyled configuration",
	Long: `restyled resolves the effective configuration for a repository by
layering the user document over the built-in defaults and reconciling
the restyler overrides against the published manifest for the pinned
restylers version.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if flagDebug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
	// Default action is resolve.
	RunE: resolveRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", ".", "repository directory to resolve configuration for")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "explicit config file path (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "", "manifest cache directory (default: system temp)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "yaml", "output format: yaml or json")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
