package restylers

import "fmt"

// InvalidManifestError reports a fetched manifest document that failed
// structured decode. It is distinct from the user-document decode error so
// callers can tell a broken publisher from a broken user config.
type InvalidManifestError struct {
	Version string
	Err     error
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid restylers manifest for version %q: %v", e.Version, e.Err)
}

func (e *InvalidManifestError) Unwrap() error { return e.Err }

// InvalidRestylersError reports an override list that cannot be reconciled
// against the manifest: an unknown name reference or a structurally
// invalid spec.
type InvalidRestylersError struct {
	// Name identifies the offending spec, when one can be named.
	Name   string
	Reason string
}

func (e *InvalidRestylersError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid restylers configuration: %s: %q", e.Reason, e.Name)
	}
	return "invalid restylers configuration: " + e.Reason
}
