// Package trace loads scanpath trace files: YAML datasets of named traces
// for batch evaluation, and single trace files for live re-analysis.
package trace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Expectation is an optional per-trace label recording the outcome the
// dataset author expects, so batch runs can flag mismatches.
type Expectation string

const (
	// ExpectNone means the trace carries no expected outcome.
	ExpectNone Expectation = ""
	// ExpectComplete means the trace should be accepted.
	ExpectComplete Expectation = "complete"
	// ExpectIncomplete means the trace should be rejected.
	ExpectIncomplete Expectation = "incomplete"
)

// Trace is one named scanpath in a dataset.
type Trace struct {
	// Name identifies the trace in reports. Required, unique per dataset.
	Name string `yaml:"name"`
	// Scanpath is the whitespace-delimited symbol sequence. Required.
	Scanpath string `yaml:"scanpath"`
	// Expect optionally labels the expected outcome: complete | incomplete.
	Expect Expectation `yaml:"expect,omitempty"`
}

// Dataset is a collection of traces loaded from one YAML file.
type Dataset struct {
	Traces []Trace `yaml:"traces"`
}

// LoadDataset reads and validates a trace dataset from a YAML file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}
	return &ds, nil
}

// Validate checks structural requirements: at least one trace, unique
// non-empty names, non-empty scanpaths, and recognized expect labels.
// Symbols themselves are not validated; unknown tokens simply fail every
// table lookup at evaluation time.
func (d *Dataset) Validate() error {
	if len(d.Traces) == 0 {
		return fmt.Errorf("dataset contains no traces")
	}
	names := make(map[string]struct{}, len(d.Traces))
	for i, tr := range d.Traces {
		if tr.Name == "" {
			return fmt.Errorf("trace %d: missing name", i)
		}
		if _, dup := names[tr.Name]; dup {
			return fmt.Errorf("trace %d: duplicate name %q", i, tr.Name)
		}
		names[tr.Name] = struct{}{}
		if tr.Scanpath == "" {
			return fmt.Errorf("trace %q: missing scanpath", tr.Name)
		}
		switch tr.Expect {
		case ExpectNone, ExpectComplete, ExpectIncomplete:
		default:
			return fmt.Errorf("trace %q: invalid expect label %q (want complete or incomplete)", tr.Name, tr.Expect)
		}
	}
	return nil
}
