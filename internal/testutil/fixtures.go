// Package testutil provides shared helpers for configuration-resolution
// tests: a fake downloader and manifest/document builders.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FakeDownloader satisfies the manifest downloader by writing canned
// bytes to the cache path instead of touching the network.
type FakeDownloader struct {
	Payload []byte
	Err     error

	// Calls records every URL fetched, in order.
	Calls []string
}

// FetchToCache records the call and writes Payload to dest, or returns
// Err when set.
func (d *FakeDownloader) FetchToCache(_ context.Context, url, dest string) error {
	d.Calls = append(d.Calls, url)
	if d.Err != nil {
		return d.Err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, d.Payload, 0o644)
}

// ManifestYAML builds a minimal manifest document containing the given
// restyler names, each with a derived image and include pattern.
func ManifestYAML(names ...string) []byte {
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "- name: %s\n", name)
		fmt.Fprintf(&b, "  image: restyled/restyler-%s:v1\n", name)
		fmt.Fprintf(&b, "  command: [%s]\n", name)
		fmt.Fprintf(&b, "  arguments: []\n")
		fmt.Fprintf(&b, "  include: [\"**/*.%s\"]\n", name)
		fmt.Fprintf(&b, "  interpreters: []\n")
	}
	return []byte(b.String())
}

// WriteFile writes content under dir at the (possibly nested) relative
// name, creating parent directories, and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
