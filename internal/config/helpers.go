package config

func stringPtr(s string) *string { return &s }
func intPtr(n int) *int          { return &n }
func boolPtr(b bool) *bool       { return &b }

func requestReviewPtr(r RequestReviewFrom) *RequestReviewFrom {
	return &r
}

func outcomePtr(o ChangedPathsOutcome) *ChangedPathsOutcome {
	return &o
}
