package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/restyled-io/go-restyled/internal/config"
)

func resolveRunE(cmd *cobra.Command, _ []string) error {
	// 1. Pick the candidate sources.
	sources, err := configSources()
	if err != nil {
		return err
	}

	// 2. Resolve the effective configuration.
	cfg, err := config.Load(cmd.Context(), config.Options{
		Sources:  sources,
		CacheDir: flagCacheDir,
	})
	if err != nil {
		return err
	}

	// 3. Write output.
	return writeConfig(cmd.OutOrStdout(), cfg)
}

// configSources returns the explicit --config path when given, otherwise
// the auto-detected candidates under --dir. An explicit path must exist.
func configSources() ([]config.Source, error) {
	if flagConfig == "" {
		return config.DefaultSources(flagDir), nil
	}
	if _, err := os.Stat(flagConfig); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", flagConfig)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	return []config.Source{config.SourcePath(flagConfig)}, nil
}

// writeConfig renders the final configuration in the selected format.
func writeConfig(w io.Writer, cfg *config.Config) error {
	switch flagOutput {
	case "yaml", "":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		// Round-trip through YAML so the JSON keys match the document
		// surface names.
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("remarshaling configuration: %w", err)
		}
		out, err := json.MarshalIndent(generic, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling configuration to JSON: %w", err)
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	default:
		return fmt.Errorf("unknown output format %q: expected yaml or json", flagOutput)
	}
}
