package config

import "gopkg.in/yaml.v3"

// UnmarshalYAML implements yaml.Unmarshaler for RequestReviewFrom.
func (r *RequestReviewFrom) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRequestReviewFrom(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for RequestReviewFrom.
func (r RequestReviewFrom) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for ChangedPathsOutcome.
func (o *ChangedPathsOutcome) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseChangedPathsOutcome(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for ChangedPathsOutcome.
func (o ChangedPathsOutcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}
