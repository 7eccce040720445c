package config

import (
	"bytes"
	"strings"
)

// tabHint is appended to decode diagnostics that point at tab
// indentation, the most common way to trip the YAML tokenizer.
const tabHint = "YAML forbids tabs for indentation; replace them with spaces"

// InvalidConfigError reports a user document that failed structured
// decode. It carries the offending source bytes and the parser
// diagnostic, plus a tab-indentation hint when the diagnostic suggests
// one.
type InvalidConfigError struct {
	Source []byte
	Err    error
	Hint   string
}

func newInvalidConfigError(source []byte, err error) *InvalidConfigError {
	e := &InvalidConfigError{Source: source, Err: err}
	if strings.Contains(err.Error(), "cannot start any token") && bytes.Contains(source, []byte("\n\t")) {
		e.Hint = tabHint
	}
	return e
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid configuration document: " + e.Err.Error()
	if e.Hint != "" {
		msg += "\nhint: " + e.Hint
	}
	return msg
}

func (e *InvalidConfigError) Unwrap() error { return e.Err }
