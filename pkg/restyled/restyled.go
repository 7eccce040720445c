// Package restyled provides a public Go API for resolving the effective
// Restyled configuration of a repository: the user document layered over
// the built-in defaults, with the restyler overrides reconciled against
// the published manifest for the pinned restylers version.
//
// Basic usage:
//
//	result, err := restyled.Load(ctx, restyled.Options{
//	    Dir: "/path/to/repo",
//	})
//	for _, r := range result.Restylers {
//	    fmt.Println(r.Name, r.Image)
//	}
package restyled

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v68/github"

	"github.com/restyled-io/go-restyled/internal/config"
	"github.com/restyled-io/go-restyled/internal/restylers"
)

// Options configures configuration resolution.
type Options struct {
	// Dir is the repository directory searched for the user document.
	// Defaults to "." if empty.
	Dir string

	// ConfigPath is an explicit user-document path. When set, Dir is not
	// searched.
	ConfigPath string

	// Content is a literal user document. When set, no files are read.
	Content []byte

	// CacheDir holds the per-version manifest caches. Defaults to the
	// system temp directory.
	CacheDir string
}

// Result is the fully-resolved configuration. Every field holds a
// concrete value; the zero value never occurs for a successful Load.
type Result struct {
	Enabled          bool
	Exclude          []string
	ChangedPaths     ChangedPaths
	Auto             bool
	CommitTemplate   string
	RemoteFiles      []RemoteFile
	PullRequests     bool
	Comments         bool
	Statuses         Statuses
	RequestReview    string
	Labels           []string
	IgnoreLabels     []string
	RestylersVersion string
	Restylers        []Restyler

	cfg *config.Config
}

// ChangedPaths bounds how large a pull request may be before restyling
// is skipped or failed.
type ChangedPaths struct {
	Maximum int
	Outcome string
}

// Statuses selects which commit statuses are posted.
type Statuses struct {
	Differences   bool
	NoDifferences bool
	Error         bool
}

// RemoteFile names a remote document fetched into the repository before
// restyling.
type RemoteFile struct {
	URL  string
	Path string
}

// Restyler is one activated restyler, in run order.
type Restyler struct {
	Name          string
	Image         string
	Command       []string
	Arguments     []string
	Include       []string
	Interpreters  []string
	Documentation []string
}

// Load resolves the effective configuration.
func Load(ctx context.Context, opts Options) (*Result, error) {
	cfg, err := config.Load(ctx, config.Options{
		Sources:  sourcesFor(opts),
		CacheDir: opts.CacheDir,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}
	return buildResult(cfg), nil
}

// Validate decodes a user document, reporting syntax errors, unknown
// keys, and invalid values. No manifest is fetched.
func Validate(content []byte) error {
	_, err := config.DecodePartial(content)
	return err
}

// Reviewer returns the login to request review from for the given pull
// request, or nil when no review should be requested or the needed
// metadata is missing.
func (r *Result) Reviewer(pr *gh.PullRequest) *string {
	return config.DetermineReviewer(pr, r.cfg)
}

// Ignored reports whether the pull request carries a label that opts it
// out of restyling.
func (r *Result) Ignored(pr *gh.PullRequest) bool {
	return config.IgnoredByLabels(pr, r.cfg)
}

func sourcesFor(opts Options) []config.Source {
	if opts.Content != nil {
		return []config.Source{config.SourceContent(opts.Content)}
	}
	if opts.ConfigPath != "" {
		return []config.Source{config.SourcePath(opts.ConfigPath)}
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return config.DefaultSources(dir)
}

// buildResult maps the internal configuration to the public Result.
func buildResult(cfg *config.Config) *Result {
	r := &Result{
		Enabled:        cfg.Enabled,
		Exclude:        cfg.Exclude,
		ChangedPaths:   ChangedPaths{Maximum: cfg.ChangedPaths.Maximum, Outcome: cfg.ChangedPaths.Outcome.String()},
		Auto:           cfg.Auto,
		CommitTemplate: cfg.CommitTemplate,
		PullRequests:   cfg.PullRequests,
		Comments:       cfg.Comments,
		Statuses: Statuses{
			Differences:   cfg.Statuses.Differences,
			NoDifferences: cfg.Statuses.NoDifferences,
			Error:         cfg.Statuses.Error,
		},
		RequestReview:    cfg.RequestReview.String(),
		Labels:           cfg.Labels,
		IgnoreLabels:     cfg.IgnoreLabels,
		RestylersVersion: cfg.RestylersVersion,

		cfg: cfg,
	}

	for _, f := range cfg.RemoteFiles {
		r.RemoteFiles = append(r.RemoteFiles, RemoteFile{URL: f.URL, Path: f.DestinationPath()})
	}
	for _, a := range cfg.Restylers {
		r.Restylers = append(r.Restylers, buildRestyler(a))
	}
	return r
}

func buildRestyler(a restylers.Restyler) Restyler {
	return Restyler{
		Name:          a.Name,
		Image:         a.Image,
		Command:       a.Command,
		Arguments:     a.Arguments,
		Include:       a.Include,
		Interpreters:  a.Interpreters,
		Documentation: a.Documentation,
	}
}
