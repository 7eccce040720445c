package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/restyled-io/go-restyled/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config document without resolving restylers",
	Long: `check locates and decodes the config document, reporting syntax
errors, unknown keys, and invalid values. No manifest is fetched, so the
restyler names themselves are not verified.`,
	RunE: checkRunE,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkRunE(cmd *cobra.Command, _ []string) error {
	sources, err := configSources()
	if err != nil {
		return err
	}

	data, src, found, err := config.Locate(sources)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(cmd.OutOrStdout(), "no config document found, defaults apply")
		return nil
	}

	if _, err := config.DecodePartial(data); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", src.Describe(), color.RedString("invalid"))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", src.Describe(), color.GreenString("valid"))
	return nil
}
