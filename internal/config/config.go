// Package config resolves the effective restyled configuration from three
// layered inputs: the embedded default document, an optional user document,
// and the version-pinned restyler manifest.
package config

import (
	"net/url"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/restyled-io/go-restyled/internal/restylers"
)

// Partial mirrors every recognized top-level option of a user document.
// Every field is optional: a nil pointer or nil slice means "not
// specified", which the merge treats differently from an explicit zero
// value (enabled: false is not the same as leaving enabled out).
type Partial struct {
	Enabled          *bool                         `yaml:"enabled,omitempty"`
	Exclude          OneOrMany[string]             `yaml:"exclude,omitempty"`
	ChangedPaths     ChangedPathsPartial           `yaml:"changed_paths,omitempty"`
	Auto             *bool                         `yaml:"auto,omitempty"`
	CommitTemplate   *string                       `yaml:"commit_template,omitempty"`
	RemoteFiles      OneOrMany[RemoteFile]         `yaml:"remote_files,omitempty"`
	PullRequests     *bool                         `yaml:"pull_requests,omitempty"`
	Comments         *bool                         `yaml:"comments,omitempty"`
	Statuses         StatusesPartial               `yaml:"statuses,omitempty"`
	RequestReview    *RequestReviewFrom            `yaml:"request_review,omitempty"`
	Labels           OneOrMany[string]             `yaml:"labels,omitempty"`
	IgnoreLabels     OneOrMany[string]             `yaml:"ignore_labels,omitempty"`
	RestylersVersion *string                       `yaml:"restylers_version,omitempty"`
	Restylers        OneOrMany[restylers.Override] `yaml:"restylers,omitempty"`
}

// Resolved is the fully-populated configuration produced by merging a
// Partial over the embedded defaults. Every field is present; consumers
// read it unconditionally. Its Restylers field still holds the user's
// override specs, not manifest entries.
type Resolved struct {
	Enabled          bool                 `yaml:"enabled"`
	Exclude          []string             `yaml:"exclude"`
	ChangedPaths     ChangedPaths         `yaml:"changed_paths"`
	Auto             bool                 `yaml:"auto"`
	CommitTemplate   string               `yaml:"commit_template"`
	RemoteFiles      []RemoteFile         `yaml:"remote_files"`
	PullRequests     bool                 `yaml:"pull_requests"`
	Comments         bool                 `yaml:"comments"`
	Statuses         Statuses             `yaml:"statuses"`
	RequestReview    RequestReviewFrom    `yaml:"request_review"`
	Labels           []string             `yaml:"labels"`
	IgnoreLabels     []string             `yaml:"ignore_labels"`
	RestylersVersion string               `yaml:"restylers_version"`
	Restylers        []restylers.Override `yaml:"restylers"`
}

// Config is the final configuration: Resolved with the override specs
// replaced by the activated manifest entries, labels deduplicated, and
// order-significant sequences left in order. It is immutable once
// produced.
type Config struct {
	Enabled          bool                 `yaml:"enabled"`
	Exclude          []string             `yaml:"exclude"`
	ChangedPaths     ChangedPaths         `yaml:"changed_paths"`
	Auto             bool                 `yaml:"auto"`
	CommitTemplate   string               `yaml:"commit_template"`
	RemoteFiles      []RemoteFile         `yaml:"remote_files"`
	PullRequests     bool                 `yaml:"pull_requests"`
	Comments         bool                 `yaml:"comments"`
	Statuses         Statuses             `yaml:"statuses"`
	RequestReview    RequestReviewFrom    `yaml:"request_review"`
	Labels           []string             `yaml:"labels"`
	IgnoreLabels     []string             `yaml:"ignore_labels"`
	RestylersVersion string               `yaml:"restylers_version"`
	Restylers        []restylers.Restyler `yaml:"restylers"`
}

// ChangedPathsPartial is the optional-per-field form of ChangedPaths.
type ChangedPathsPartial struct {
	Maximum *int                 `yaml:"maximum,omitempty"`
	Outcome *ChangedPathsOutcome `yaml:"outcome,omitempty"`
}

// ChangedPaths controls behavior when a pull request touches more paths
// than expected.
type ChangedPaths struct {
	Maximum int                 `yaml:"maximum"`
	Outcome ChangedPathsOutcome `yaml:"outcome"`
}

// StatusesPartial is the optional-per-field form of Statuses. The
// document also accepts a bare bool, which sets all three toggles.
type StatusesPartial struct {
	Differences   *bool `yaml:"differences,omitempty"`
	NoDifferences *bool `yaml:"no_differences,omitempty"`
	Error         *bool `yaml:"error,omitempty"`
}

// UnmarshalYAML accepts either a bool shorthand or a mapping of the
// individual toggles.
func (s *StatusesPartial) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		on := b
		*s = StatusesPartial{Differences: &on, NoDifferences: &on, Error: &on}
		return nil
	}

	type plain StatusesPartial
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = StatusesPartial(p)
	return nil
}

// Statuses toggles commit-status reporting per outcome.
type Statuses struct {
	Differences   bool `yaml:"differences"`
	NoDifferences bool `yaml:"no_differences"`
	Error         bool `yaml:"error"`
}

// RemoteFile is a document fetched into the working tree before
// restyling. A bare string is sugar for a URL whose basename names the
// destination.
type RemoteFile struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path,omitempty"`
}

// UnmarshalYAML accepts either a bare URL string or a {url, path} mapping.
func (f *RemoteFile) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var u string
		if err := value.Decode(&u); err != nil {
			return err
		}
		*f = RemoteFile{URL: u}
		return nil
	}

	type plain RemoteFile
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*f = RemoteFile(p)
	return nil
}

// DestinationPath returns the configured path, falling back to the URL
// basename when no path was given.
func (f RemoteFile) DestinationPath() string {
	if f.Path != "" {
		return f.Path
	}
	u, err := url.Parse(f.URL)
	if err != nil {
		return path.Base(f.URL)
	}
	return path.Base(u.Path)
}
