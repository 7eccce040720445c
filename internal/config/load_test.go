package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restyled-io/go-restyled/internal/testutil"
)

func loadWith(t *testing.T, document string, manifest []byte) (*Config, error) {
	t.Helper()

	var sources []Source
	if document != "" {
		sources = []Source{SourceContent(document)}
	} else {
		sources = DefaultSources(t.TempDir())
	}

	return Load(context.Background(), Options{
		Sources:    sources,
		Downloader: &testutil.FakeDownloader{Payload: manifest},
		CacheDir:   t.TempDir(),
	})
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := loadWith(t, "", testutil.ManifestYAML("astyle", "black"))
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, defaults.Enabled, cfg.Enabled)
	require.Equal(t, defaults.Exclude, cfg.Exclude)
	require.Equal(t, defaults.RestylersVersion, cfg.RestylersVersion)

	// The default wildcard activates the full manifest in manifest order.
	require.Len(t, cfg.Restylers, 2)
	require.Equal(t, "astyle", cfg.Restylers[0].Name)
	require.Equal(t, "black", cfg.Restylers[1].Name)
}

func TestLoad_UserDocument(t *testing.T) {
	doc := `
enabled: true
restylers_version: "20240101"
restylers:
  - black
`
	cfg, err := loadWith(t, doc, testutil.ManifestYAML("astyle", "black"))
	require.NoError(t, err)

	require.Equal(t, "20240101", cfg.RestylersVersion)
	require.Len(t, cfg.Restylers, 1)
	require.Equal(t, "black", cfg.Restylers[0].Name)
}

func TestLoad_BareListDocument(t *testing.T) {
	cfg, err := loadWith(t, "- black\n- astyle\n", testutil.ManifestYAML("astyle", "black"))
	require.NoError(t, err)

	require.Len(t, cfg.Restylers, 2)
	require.Equal(t, "black", cfg.Restylers[0].Name)
	require.Equal(t, "astyle", cfg.Restylers[1].Name)
	// Everything else falls back to defaults.
	require.Equal(t, DefaultConfig().Exclude, cfg.Exclude)
}

func TestLoad_ManifestVersionDrivesURL(t *testing.T) {
	dl := &testutil.FakeDownloader{Payload: testutil.ManifestYAML("black")}
	_, err := Load(context.Background(), Options{
		Sources:    []Source{SourceContent(`restylers_version: v42`)},
		Downloader: dl,
		CacheDir:   t.TempDir(),
	})
	require.NoError(t, err)

	require.Len(t, dl.Calls, 1)
	require.Equal(t, "https://docs.restyled.io/data-files/restylers/manifests/v42/restylers.yaml", dl.Calls[0])
}

func TestLoad_FromFilesOnDisk(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, ".github/restyled.yaml", "labels: [from-github-dir]\n")

	cfg, err := Load(context.Background(), Options{
		Sources:    DefaultSources(dir),
		Downloader: &testutil.FakeDownloader{Payload: testutil.ManifestYAML("black")},
		CacheDir:   t.TempDir(),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"from-github-dir"}, cfg.Labels)

	// A root-level file takes precedence over .github/.
	testutil.WriteFile(t, dir, ".restyled.yaml", "labels: [from-root]\n")
	cfg, err = Load(context.Background(), Options{
		Sources:    DefaultSources(dir),
		Downloader: &testutil.FakeDownloader{Payload: testutil.ManifestYAML("black")},
		CacheDir:   t.TempDir(),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"from-root"}, cfg.Labels)
}

func TestLoad_LabelsDeduplicated(t *testing.T) {
	doc := "labels: [a, b, a]\nignore_labels: [x, x]\n"
	cfg, err := loadWith(t, doc, testutil.ManifestYAML("black"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, cfg.Labels)
	require.Equal(t, []string{"x"}, cfg.IgnoreLabels)
}

func TestLoad_InvalidUserDocument(t *testing.T) {
	_, err := loadWith(t, "no_such_key: 1\n", testutil.ManifestYAML("black"))
	require.Error(t, err)

	var invalid *InvalidConfigError
	require.True(t, errors.As(err, &invalid))
}

func TestLoad_UnknownRestyler(t *testing.T) {
	_, err := loadWith(t, "restylers: [nope]\n", testutil.ManifestYAML("black"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown restyler")
	require.Contains(t, err.Error(), `"nope"`)
}

func TestLoad_DownloadFailurePropagates(t *testing.T) {
	boom := errors.New("network down")
	_, err := Load(context.Background(), Options{
		Sources:    []Source{SourceContent("enabled: true")},
		Downloader: &testutil.FakeDownloader{Err: boom},
		CacheDir:   t.TempDir(),
	})
	require.ErrorIs(t, err, boom)
}
