package config

// Merge produces a Resolved where each field takes the user's value when
// present and the default's value otherwise. The merge is field-local and
// total: it never fails, since both sides already decoded. The nested
// changed_paths and statuses groups merge per-subfield.
func Merge(user Partial, defaults Resolved) Resolved {
	out := defaults

	if user.Enabled != nil {
		out.Enabled = *user.Enabled
	}
	if user.Exclude != nil {
		out.Exclude = user.Exclude
	}
	if user.ChangedPaths.Maximum != nil {
		out.ChangedPaths.Maximum = *user.ChangedPaths.Maximum
	}
	if user.ChangedPaths.Outcome != nil {
		out.ChangedPaths.Outcome = *user.ChangedPaths.Outcome
	}
	if user.Auto != nil {
		out.Auto = *user.Auto
	}
	if user.CommitTemplate != nil {
		out.CommitTemplate = *user.CommitTemplate
	}
	if user.RemoteFiles != nil {
		out.RemoteFiles = user.RemoteFiles
	}
	if user.PullRequests != nil {
		out.PullRequests = *user.PullRequests
	}
	if user.Comments != nil {
		out.Comments = *user.Comments
	}
	if user.Statuses.Differences != nil {
		out.Statuses.Differences = *user.Statuses.Differences
	}
	if user.Statuses.NoDifferences != nil {
		out.Statuses.NoDifferences = *user.Statuses.NoDifferences
	}
	if user.Statuses.Error != nil {
		out.Statuses.Error = *user.Statuses.Error
	}
	if user.RequestReview != nil {
		out.RequestReview = *user.RequestReview
	}
	if user.Labels != nil {
		out.Labels = user.Labels
	}
	if user.IgnoreLabels != nil {
		out.IgnoreLabels = user.IgnoreLabels
	}
	if user.RestylersVersion != nil {
		out.RestylersVersion = *user.RestylersVersion
	}
	if user.Restylers != nil {
		out.Restylers = user.Restylers
	}

	return out
}
