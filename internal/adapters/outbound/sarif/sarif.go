// Package sarif renders validation runs as SARIF 2.1.0 logs for CI annotation.
package sarif

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/beltic/credcheck/internal/domain"
)

// Version is the SARIF schema version.
const Version = "2.1.0"

const schemaURI = "https://json.schemastore.org/sarif-2.1.0.json"

// Log is the top-level SARIF structure.
type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema,omitempty"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single validation run.
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name           string `json:"name"`
	Version        string `json:"version,omitempty"`
	InformationURI string `json:"informationUri,omitempty"`
	Rules          []Rule `json:"rules,omitempty"`
}

// Rule describes one failure kind.
type Rule struct {
	ID               string  `json:"id"`
	ShortDescription Message `json:"shortDescription"`
}

// Result is a single finding.
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level,omitempty"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

var ruleText = map[domain.ErrorKind]string{
	domain.KindSchemaNotFound:    "Schema file does not exist",
	domain.KindSchemaMalformed:   "Schema is not valid JSON or not a valid JSON Schema",
	domain.KindDocumentMalformed: "Credential is not valid JSON",
	domain.KindSchemaViolation:   "Credential violates its schema",
	domain.KindAcceptedInvalid:   "Credential expected to be invalid was accepted",
	domain.KindUnexpected:        "Credential could not be read",
}

// FromSummary converts a run summary into a SARIF log with one result per
// schema failure, per violation, and per unreadable or unparsable file.
func FromSummary(summary domain.RunSummary, version string) *Log {
	run := Run{
		Tool:    Tool{Driver: Driver{Name: "credcheck", Version: version}},
		Results: []Result{},
	}
	seen := map[domain.ErrorKind]bool{}
	add := func(kind domain.ErrorKind, path, text string) {
		if !seen[kind] {
			seen[kind] = true
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, Rule{
				ID:               kind.String(),
				ShortDescription: Message{Text: ruleText[kind]},
			})
		}
		run.Results = append(run.Results, Result{
			RuleID:    kind.String(),
			Level:     "error",
			Message:   Message{Text: text},
			Locations: []Location{{PhysicalLocation: PhysicalLocation{ArtifactLocation: ArtifactLocation{URI: path}}}},
		})
	}

	for _, sweep := range summary.Sweeps {
		if sweep.Err != nil {
			add(sweep.Err.Kind, sweep.Err.Path, sweep.Err.Error())
			continue
		}
		for _, f := range sweep.Files {
			if f.Passed() {
				continue
			}
			if f.Kind == domain.KindSchemaViolation {
				for _, v := range f.Violations {
					add(f.Kind, f.Path, fmt.Sprintf("%s: %s", v.Path, v.Message))
				}
				continue
			}
			add(f.Kind, f.Path, f.Detail)
		}
	}

	return &Log{Version: Version, Schema: schemaURI, Runs: []Run{run}}
}

// Write encodes log as indented JSON.
func Write(w io.Writer, log *Log) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}
