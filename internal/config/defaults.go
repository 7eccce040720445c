package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

// defaultDocument is the compiled-in default configuration. It must
// decode as a fully-populated object; a malformed default is a broken
// build, not a user error.
//
//go:embed default.yaml
var defaultDocument []byte

var (
	defaultOnce     sync.Once
	defaultResolved Resolved
	defaultErr      error
)

// DefaultConfig returns the embedded default configuration, decoded once
// per process. It panics when the embedded document is malformed, which
// cannot happen in a correct build.
func DefaultConfig() Resolved {
	defaultOnce.Do(func() {
		defaultResolved, defaultErr = decodeDefault(defaultDocument)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultResolved
}

// decodeDefault decodes a default document, requiring every field to be
// present.
func decodeDefault(data []byte) (Resolved, error) {
	p, err := DecodePartial(data)
	if err != nil {
		return Resolved{}, fmt.Errorf("invalid default configuration document: %w", err)
	}
	if missing := p.missingFields(); len(missing) > 0 {
		return Resolved{}, fmt.Errorf("invalid default configuration document: missing fields: %s", strings.Join(missing, ", "))
	}
	// Every field is present, so merging over a zero Resolved yields the
	// defaults themselves.
	return Merge(*p, Resolved{}), nil
}

// missingFields names every absent field, in document surface form.
func (p *Partial) missingFields() []string {
	var missing []string
	add := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}

	add(p.Enabled != nil, "enabled")
	add(p.Exclude != nil, "exclude")
	add(p.ChangedPaths.Maximum != nil, "changed_paths.maximum")
	add(p.ChangedPaths.Outcome != nil, "changed_paths.outcome")
	add(p.Auto != nil, "auto")
	add(p.CommitTemplate != nil, "commit_template")
	add(p.RemoteFiles != nil, "remote_files")
	add(p.PullRequests != nil, "pull_requests")
	add(p.Comments != nil, "comments")
	add(p.Statuses.Differences != nil, "statuses.differences")
	add(p.Statuses.NoDifferences != nil, "statuses.no_differences")
	add(p.Statuses.Error != nil, "statuses.error")
	add(p.RequestReview != nil, "request_review")
	add(p.Labels != nil, "labels")
	add(p.IgnoreLabels != nil, "ignore_labels")
	add(p.RestylersVersion != nil, "restylers_version")
	add(p.Restylers != nil, "restylers")

	return missing
}
