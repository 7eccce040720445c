package restylers

import (
	"gopkg.in/yaml.v3"
)

// Wildcard is the override name that activates every manifest entry not
// already active at that point, in manifest order.
const Wildcard = "*"

// Override is a user-authored reference to a restyler by name, optionally
// changing its configuration or activation state. Optional fields are
// pointers or nil-able slices: nil means "keep the manifest value".
type Override struct {
	Name         string   `yaml:"name"`
	Enabled      *bool    `yaml:"enabled,omitempty"`
	Image        *string  `yaml:"image,omitempty"`
	Command      []string `yaml:"command,omitempty"`
	Arguments    []string `yaml:"arguments,omitempty"`
	Include      []string `yaml:"include,omitempty"`
	Interpreters []string `yaml:"interpreters,omitempty"`
}

// UnmarshalYAML accepts either a bare name ("prettier") or a mapping with
// a name key and optional field overrides.
func (o *Override) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*o = Override{Name: name}
		return nil
	}

	type plain Override
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*o = Override(p)
	return nil
}

// validate rejects specs that cannot be reconciled regardless of the
// manifest contents.
func (o Override) validate() error {
	if o.Name == "" {
		return &InvalidRestylersError{Reason: "override spec is missing a name"}
	}
	if o.Name == Wildcard && (o.hasFieldOverrides() || o.disables()) {
		return &InvalidRestylersError{Name: Wildcard, Reason: "wildcard override cannot carry field overrides"}
	}
	if o.disables() && o.hasFieldOverrides() {
		return &InvalidRestylersError{Name: o.Name, Reason: "disabled override cannot also change fields"}
	}
	return nil
}

func (o Override) hasFieldOverrides() bool {
	return o.Image != nil ||
		o.Command != nil ||
		o.Arguments != nil ||
		o.Include != nil ||
		o.Interpreters != nil
}

func (o Override) disables() bool {
	return o.Enabled != nil && !*o.Enabled
}

// apply copies the spec's non-nil field overrides onto a manifest entry.
func (o Override) apply(r *Restyler) {
	if o.Image != nil {
		r.Image = *o.Image
	}
	if o.Command != nil {
		r.Command = o.Command
	}
	if o.Arguments != nil {
		r.Arguments = o.Arguments
	}
	if o.Include != nil {
		r.Include = o.Include
	}
	if o.Interpreters != nil {
		r.Interpreters = o.Interpreters
	}
}
