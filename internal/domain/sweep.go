package domain

import (
	"path/filepath"
	"slices"
	"time"
)

// Expectation states whether a suite's documents should pass or fail their schema.
type Expectation string

const (
	ExpectValid   Expectation = "valid"
	ExpectInvalid Expectation = "invalid"
)

// SweepSpec describes one credential category: a schema and the files it governs.
type SweepSpec struct {
	Label          string      `yaml:"label"                     json:"label"`
	CredentialType string      `yaml:"credential_type"           json:"credential_type"`
	Schema         string      `yaml:"schema"                    json:"schema"`
	Pattern        string      `yaml:"pattern"                   json:"pattern"`
	Expect         Expectation `yaml:"expect,omitempty"          json:"expect,omitempty"`
	RuntimeChecked []string    `yaml:"runtime_checked,omitempty" json:"runtime_checked,omitempty"`
}

// ExpectsInvalid reports whether documents of this suite are supposed to be rejected.
func (s SweepSpec) ExpectsInvalid() bool {
	return s.Expect == ExpectInvalid
}

// IsRuntimeChecked reports whether the file can only be rejected by checks
// JSON Schema cannot express, such as comparing two dates.
func (s SweepSpec) IsRuntimeChecked(path string) bool {
	return slices.Contains(s.RuntimeChecked, filepath.Base(path))
}

// Outcome is the verdict for a single file.
type Outcome string

const (
	OutcomePassed Outcome = "passed"
	OutcomeFailed Outcome = "failed"
)

// Tally counts passed and failed units of one sweep or of a whole run.
type Tally struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Add returns the sum of two tallies.
func (t Tally) Add(o Tally) Tally {
	return Tally{Passed: t.Passed + o.Passed, Failed: t.Failed + o.Failed}
}

// Record returns the tally with one more unit of the given outcome.
func (t Tally) Record(o Outcome) Tally {
	if o == OutcomePassed {
		t.Passed++
	} else {
		t.Failed++
	}
	return t
}

func (t Tally) Total() int { return t.Passed + t.Failed }

// FileResult is the verdict and diagnostics for one matched file.
type FileResult struct {
	Path       string      `json:"path"`
	Outcome    Outcome     `json:"outcome"`
	Kind       ErrorKind   `json:"kind,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	Note       string      `json:"note,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
}

func (r FileResult) Name() string { return filepath.Base(r.Path) }

func (r FileResult) Passed() bool { return r.Outcome == OutcomePassed }

// SweepResult is the outcome of validating every file of one SweepSpec.
type SweepResult struct {
	Spec      SweepSpec    `json:"spec"`
	Tally     Tally        `json:"tally"`
	Files     []FileResult `json:"files,omitempty"`
	NoMatches bool         `json:"no_matches,omitempty"`
	Err       *Error       `json:"error,omitempty"`
}

// RunSummary aggregates all sweeps of one invocation.
type RunSummary struct {
	Sweeps    []SweepResult `json:"sweeps"`
	Total     Tally         `json:"total"`
	Commit    string        `json:"commit,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// Failed reports whether any unit of the run failed.
func (s RunSummary) Failed() bool { return s.Total.Failed > 0 }
