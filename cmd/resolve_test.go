package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/restyled-io/go-restyled/internal/testutil"
)

// setFlags sets the package-level flags for a test and restores them
// afterwards.
func setFlags(t *testing.T, dir, cfg, cacheDir, output string) {
	t.Helper()
	oldDir, oldConfig, oldCache, oldOutput := flagDir, flagConfig, flagCacheDir, flagOutput
	flagDir, flagConfig, flagCacheDir, flagOutput = dir, cfg, cacheDir, output
	t.Cleanup(func() {
		flagDir, flagConfig, flagCacheDir, flagOutput = oldDir, oldConfig, oldCache, oldOutput
	})
}

// seedManifestCache writes a manifest into a fresh cache dir so no
// network is needed, and returns the dir.
func seedManifestCache(t *testing.T, version string, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "restylers-"+version+".yaml", string(testutil.ManifestYAML(names...)))
	return dir
}

func testCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestResolve_DefaultsOnly(t *testing.T) {
	cacheDir := seedManifestCache(t, "stable", "black", "prettier")
	setFlags(t, t.TempDir(), "", cacheDir, "yaml")

	var buf bytes.Buffer
	require.NoError(t, resolveRunE(testCommand(&buf), nil))

	// With no user document the wildcard default activates the whole
	// manifest in order.
	out := buf.String()
	require.Contains(t, out, "name: black")
	require.Contains(t, out, "name: prettier")
	require.Contains(t, out, "enabled: true")
	require.Less(t, bytes.Index(buf.Bytes(), []byte("name: black")), bytes.Index(buf.Bytes(), []byte("name: prettier")))
}

func TestResolve_UserDocumentSelectsRestylers(t *testing.T) {
	cacheDir := seedManifestCache(t, "stable", "black", "prettier")

	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".restyled.yaml", "restylers:\n  - prettier\n")
	setFlags(t, dir, "", cacheDir, "yaml")

	var buf bytes.Buffer
	require.NoError(t, resolveRunE(testCommand(&buf), nil))

	out := buf.String()
	require.Contains(t, out, "name: prettier")
	require.NotContains(t, out, "name: black")
}

func TestResolve_JSONOutput(t *testing.T) {
	cacheDir := seedManifestCache(t, "stable", "black")
	setFlags(t, t.TempDir(), "", cacheDir, "json")

	var buf bytes.Buffer
	require.NoError(t, resolveRunE(testCommand(&buf), nil))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, true, decoded["enabled"])
	require.Equal(t, "stable", decoded["restylers_version"])
}

func TestResolve_UnknownOutputFormat(t *testing.T) {
	cacheDir := seedManifestCache(t, "stable", "black")
	setFlags(t, t.TempDir(), "", cacheDir, "toml")

	var buf bytes.Buffer
	err := resolveRunE(testCommand(&buf), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestResolve_InvalidDocument(t *testing.T) {
	cacheDir := seedManifestCache(t, "stable", "black")

	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".restyled.yaml", "bogus_key: true\n")
	setFlags(t, dir, "", cacheDir, "yaml")

	var buf bytes.Buffer
	err := resolveRunE(testCommand(&buf), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus_key")
}

func TestConfigSources_ExplicitMissingFileErrors(t *testing.T) {
	setFlags(t, ".", filepath.Join(t.TempDir(), "nope.yaml"), "", "yaml")

	_, err := configSources()
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestConfigSources_ExplicitExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "custom.yaml", "enabled: false\n")
	setFlags(t, ".", path, "", "yaml")

	sources, err := configSources()
	require.NoError(t, err)
	require.Len(t, sources, 1)
	require.Equal(t, path, sources[0].Describe())
}

func TestConfigSources_AutoDetect(t *testing.T) {
	setFlags(t, "/some/repo", "", "", "yaml")

	sources, err := configSources()
	require.NoError(t, err)
	require.Len(t, sources, 4)
	require.Equal(t, filepath.Join("/some/repo", ".restyled.yaml"), sources[0].Describe())
}
