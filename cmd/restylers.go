package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/restyled-io/go-restyled/internal/download"
	"github.com/restyled-io/go-restyled/internal/restylers"
)

var flagRestylersVersion string

var restylersCmd = &cobra.Command{
	Use:   "restylers",
	Short: "List the restylers available in a manifest version",
	RunE:  restylersRunE,
}

func init() {
	restylersCmd.Flags().StringVar(&flagRestylersVersion, "restylers-version", "stable", "manifest version to list")

	rootCmd.AddCommand(restylersCmd)
}

func restylersRunE(cmd *cobra.Command, _ []string) error {
	fetcher := restylers.NewFetcher(download.NewClient(), flagCacheDir)

	manifest, err := fetcher.Fetch(cmd.Context(), flagRestylersVersion)
	if err != nil {
		return fmt.Errorf("fetching manifest: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, r := range manifest {
		fmt.Fprintf(out, "%s\t%s\n", color.CyanString(r.Name), r.Image)
		if len(r.Include) > 0 {
			fmt.Fprintf(out, "\tincludes %s\n", strings.Join(r.Include, ", "))
		}
	}
	return nil
}
