// Package restylers models the versioned restyler manifest and reconciles
// user override specs against it.
package restylers

// Restyler is one manifest entry: a named, independently invocable
// code-formatting unit. The manifest carries more metadata than this;
// only the fields the resolution pipeline reads are modeled.
type Restyler struct {
	Name          string   `yaml:"name"`
	Image         string   `yaml:"image"`
	Command       []string `yaml:"command"`
	Arguments     []string `yaml:"arguments"`
	Include       []string `yaml:"include"`
	Interpreters  []string `yaml:"interpreters"`
	Documentation []string `yaml:"documentation,omitempty"`
}
