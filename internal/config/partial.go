package config

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// knownKeys lists every recognized top-level document key, in document
// surface form.
var knownKeys = []string{
	"enabled",
	"exclude",
	"changed_paths",
	"auto",
	"commit_template",
	"remote_files",
	"pull_requests",
	"comments",
	"statuses",
	"request_review",
	"labels",
	"ignore_labels",
	"restylers_version",
	"restylers",
}

// DecodePartial decodes raw user-document bytes into a Partial. A bare
// sequence document is sugar for the restylers field alone, with every
// other field absent. Unrecognized top-level keys fail the decode, naming
// every unexpected key. All failures come back as *InvalidConfigError.
func DecodePartial(data []byte) (*Partial, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, newInvalidConfigError(data, err)
	}

	// An empty or comment-only document is a valid all-absent Partial.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Partial{}, nil
	}
	root := doc.Content[0]
	if root.Tag == "!!null" {
		return &Partial{}, nil
	}

	var p Partial
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&p.Restylers); err != nil {
			return nil, newInvalidConfigError(data, err)
		}
	case yaml.MappingNode:
		if err := checkKnownKeys(root); err != nil {
			return nil, newInvalidConfigError(data, err)
		}
		if err := root.Decode(&p); err != nil {
			return nil, newInvalidConfigError(data, err)
		}
	default:
		return nil, newInvalidConfigError(data, fmt.Errorf("expected a mapping or a sequence at the document root"))
	}
	return &p, nil
}

// checkKnownKeys rejects mappings with keys outside the recognized set,
// reporting all offenders at once.
func checkKnownKeys(root *yaml.Node) error {
	var unknown []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if !slices.Contains(knownKeys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unexpected keys: %s", strings.Join(unknown, ", "))
	}
	return nil
}
