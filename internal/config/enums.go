package config

import (
	"fmt"
	"strings"
)

// RequestReviewFrom is the review-request policy: who, if anyone, is
// requested as reviewer on a restyled pull request.
type RequestReviewFrom int

const (
	RequestReviewNone RequestReviewFrom = iota
	RequestReviewAuthor
	RequestReviewOwner
)

func (r RequestReviewFrom) String() string {
	switch r {
	case RequestReviewNone:
		return "none"
	case RequestReviewAuthor:
		return "author"
	case RequestReviewOwner:
		return "owner"
	default:
		return "unknown"
	}
}

// ParseRequestReviewFrom parses the document surface form, case
// insensitively.
func ParseRequestReviewFrom(s string) (RequestReviewFrom, error) {
	switch strings.ToLower(s) {
	case "none":
		return RequestReviewNone, nil
	case "author":
		return RequestReviewAuthor, nil
	case "owner":
		return RequestReviewOwner, nil
	default:
		return RequestReviewNone, fmt.Errorf("unknown request_review policy %q: expected none, author, or owner", s)
	}
}

// ChangedPathsOutcome is what happens when a pull request touches more
// paths than the configured maximum.
type ChangedPathsOutcome int

const (
	ChangedPathsSkip ChangedPathsOutcome = iota
	ChangedPathsError
)

func (o ChangedPathsOutcome) String() string {
	switch o {
	case ChangedPathsSkip:
		return "skip"
	case ChangedPathsError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseChangedPathsOutcome parses the document surface form, case
// insensitively.
func ParseChangedPathsOutcome(s string) (ChangedPathsOutcome, error) {
	switch strings.ToLower(s) {
	case "skip":
		return ChangedPathsSkip, nil
	case "error":
		return ChangedPathsError, nil
	default:
		return ChangedPathsSkip, fmt.Errorf("unknown changed_paths outcome %q: expected skip or error", s)
	}
}
