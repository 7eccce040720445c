package config

import (
	"slices"

	gh "github.com/google/go-github/v68/github"
)

// DetermineReviewer returns the login to request as reviewer for a pull
// request under the configured request_review policy, or nil when no
// review should be requested. Pure function of policy and pull-request
// metadata; no API calls are made.
func DetermineReviewer(pr *gh.PullRequest, cfg *Config) *string {
	switch cfg.RequestReview {
	case RequestReviewAuthor:
		if login := pr.GetUser().GetLogin(); login != "" {
			return stringPtr(login)
		}
	case RequestReviewOwner:
		if login := pr.GetBase().GetRepo().GetOwner().GetLogin(); login != "" {
			return stringPtr(login)
		}
	}
	return nil
}

// IgnoredByLabels reports whether any of the pull request's labels is in
// the configured ignore set.
func IgnoredByLabels(pr *gh.PullRequest, cfg *Config) bool {
	if pr == nil {
		return false
	}
	for _, label := range pr.Labels {
		if slices.Contains(cfg.IgnoreLabels, label.GetName()) {
			return true
		}
	}
	return false
}
