package config

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/restyled-io/go-restyled/internal/download"
	"github.com/restyled-io/go-restyled/internal/restylers"
)

// Options configures Load.
type Options struct {
	// Sources are the candidate user documents, tried in order.
	// Defaults to DefaultSources(".").
	Sources []Source

	// Downloader fetches the restyler manifest. Defaults to an HTTP
	// client with retries.
	Downloader restylers.Downloader

	// CacheDir holds the per-version manifest caches. Defaults to the
	// system temp directory.
	CacheDir string
}

// Load resolves the effective configuration: locate the user document,
// decode it leniently, merge it over the embedded defaults, fetch the
// restyler manifest for the resolved version, and reconcile the user's
// override list against it. Any failure is terminal; no partial Config is
// ever returned.
func Load(ctx context.Context, opts Options) (*Config, error) {
	sources := opts.Sources
	if sources == nil {
		sources = DefaultSources(".")
	}

	// 1. Locate the user document. Finding none is not an error.
	data, src, found, err := Locate(sources)
	if err != nil {
		return nil, err
	}

	// 2. Decode the partial configuration.
	partial := &Partial{}
	if found {
		partial, err = DecodePartial(data)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("source", src.Describe()).Msg("loaded user configuration")
	} else {
		log.Debug().Msg("no user configuration found, using defaults")
	}

	// 3. Merge over the embedded defaults.
	resolved := Merge(*partial, DefaultConfig())

	// 4. Fetch the manifest for the resolved restylers version.
	dl := opts.Downloader
	if dl == nil {
		dl = download.NewClient()
	}
	manifest, err := restylers.NewFetcher(dl, opts.CacheDir).Fetch(ctx, resolved.RestylersVersion)
	if err != nil {
		return nil, err
	}

	// 5. Reconcile the override specs against the manifest.
	active, err := restylers.ApplyOverrides(manifest, resolved.Restylers)
	if err != nil {
		return nil, err
	}

	// 6. Assemble the final configuration.
	return finalize(resolved, active), nil
}

// finalize assembles the final Config from a Resolved and the activated
// restyler list. Label fields carry set semantics and are deduplicated;
// order-significant sequences keep their order.
func finalize(r Resolved, active []restylers.Restyler) *Config {
	return &Config{
		Enabled:          r.Enabled,
		Exclude:          r.Exclude,
		ChangedPaths:     r.ChangedPaths,
		Auto:             r.Auto,
		CommitTemplate:   r.CommitTemplate,
		RemoteFiles:      r.RemoteFiles,
		PullRequests:     r.PullRequests,
		Comments:         r.Comments,
		Statuses:         r.Statuses,
		RequestReview:    r.RequestReview,
		Labels:           dedupe(r.Labels),
		IgnoreLabels:     dedupe(r.IgnoreLabels),
		RestylersVersion: r.RestylersVersion,
		Restylers:        active,
	}
}

// dedupe removes duplicate names, keeping first occurrences in order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
