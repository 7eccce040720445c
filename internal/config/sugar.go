package config

import "gopkg.in/yaml.v3"

// OneOrMany is an ordered sequence that also decodes from a bare scalar:
// `x` and `[x]` are equivalent in the document. Decoding always yields a
// non-nil slice, so an explicit empty list stays distinguishable from an
// absent field (nil). The sugar does not leak past decoding; consumers
// only ever see a slice.
type OneOrMany[T any] []T

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *OneOrMany[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		items := []T{}
		if err := value.Decode(&items); err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		*l = items
		return nil
	}

	var one T
	if err := value.Decode(&one); err != nil {
		return err
	}
	*l = []T{one}
	return nil
}
