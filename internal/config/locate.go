package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// userConfigNames lists the candidate user-config paths, checked in
// order. The first existing file wins.
var userConfigNames = []string{
	".restyled.yaml",
	".restyled.yml",
	".github/restyled.yaml",
	".github/restyled.yml",
}

// A Source is one candidate location for the user configuration
// document: a file path that may or may not exist, or literal content
// that always does.
type Source interface {
	// load returns the document bytes and whether the source exists.
	load() ([]byte, bool, error)

	// Describe names the source for logging and diagnostics.
	Describe() string
}

// SourcePath is a candidate file path.
type SourcePath string

func (s SourcePath) load() ([]byte, bool, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		// An I/O error other than not-found (e.g. permission denied)
		// aborts the scan rather than being skipped.
		return nil, false, fmt.Errorf("reading %s: %w", string(s), err)
	}
	return data, true, nil
}

func (s SourcePath) Describe() string { return string(s) }

// SourceContent is literal document content.
type SourceContent []byte

func (s SourceContent) load() ([]byte, bool, error) { return []byte(s), true, nil }

func (s SourceContent) Describe() string { return "<literal content>" }

// DefaultSources returns the candidate user-config paths under dir, in
// check order.
func DefaultSources(dir string) []Source {
	out := make([]Source, len(userConfigNames))
	for i, name := range userConfigNames {
		out[i] = SourcePath(filepath.Join(dir, name))
	}
	return out
}

// Locate returns the bytes of the first source that exists, trying
// sources strictly in order. ok is false only when every source is a
// non-existent path; that case is not an error.
func Locate(sources []Source) (data []byte, src Source, ok bool, err error) {
	for _, candidate := range sources {
		data, found, err := candidate.load()
		if err != nil {
			return nil, candidate, false, err
		}
		if found {
			return data, candidate, true, nil
		}
	}
	return nil, nil, false, nil
}
