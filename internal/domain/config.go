package domain

import "fmt"

// DefaultMaxViolations is how many violations are printed per failed file.
const DefaultMaxViolations = 5

// ConfigFileName is the project-level configuration file.
const ConfigFileName = ".credcheck.yaml"

const (
	agentSchema     = "schemas/agent/v1/agent-credential-v1.schema.json"
	developerSchema = "schemas/developer/v1/developer-credential-v1.schema.json"
)

// Config holds the sweeps to run, loaded from .credcheck.yaml.
type Config struct {
	MaxViolations int         `yaml:"max_violations,omitempty" json:"max_violations,omitempty"`
	Suites        []SweepSpec `yaml:"suites"                   json:"suites"`
}

// DefaultSuites returns the two sweeps run when no configuration is present:
// agent credentials, then valid developer credentials.
func DefaultSuites() []SweepSpec {
	return []SweepSpec{
		{
			Label:          "Agent Credentials",
			CredentialType: "agent",
			Schema:         agentSchema,
			Pattern:        "examples/agent/v1/*.json",
		},
		{
			Label:          "Developer Credentials (Valid Examples)",
			CredentialType: "developer (valid)",
			Schema:         developerSchema,
			Pattern:        "examples/developer/v1/tests/valid-*.json",
		},
	}
}

// RuntimeCheckedDeveloperExamples lists invalid developer examples whose defect
// is a date ordering or staleness rule, which only runtime checks can catch.
func RuntimeCheckedDeveloperExamples() []string {
	return []string{
		"invalid-dates-reversed.json",
		"invalid-last-updated-out-of-range.json",
		"tier2-invalid-expired-status-mismatch.json",
		"tier2-invalid-pep-assessment-stale.json",
		"tier2-invalid-screening-stale.json",
		"tier2-invalid-tax-verification-old.json",
	}
}

// ExpectedInvalidSuites returns the developer suites whose examples must all be rejected.
func ExpectedInvalidSuites() []SweepSpec {
	return []SweepSpec{
		{
			Label:          "Developer Credentials (Tier 1 Invalid Examples)",
			CredentialType: "developer (tier 1 invalid)",
			Schema:         developerSchema,
			Pattern:        "examples/developer/v1/tests/invalid-*.json",
			Expect:         ExpectInvalid,
			RuntimeChecked: RuntimeCheckedDeveloperExamples(),
		},
		{
			Label:          "Developer Credentials (Tier 2 Invalid Examples)",
			CredentialType: "developer (tier 2 invalid)",
			Schema:         developerSchema,
			Pattern:        "examples/developer/v1/tests/tier2-invalid-*.json",
			Expect:         ExpectInvalid,
			RuntimeChecked: RuntimeCheckedDeveloperExamples(),
		},
	}
}

// DefaultConfig returns the configuration used when .credcheck.yaml is absent.
func DefaultConfig() Config {
	return Config{
		MaxViolations: DefaultMaxViolations,
		Suites:        DefaultSuites(),
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.MaxViolations < 0 {
		return fmt.Errorf("max_violations must not be negative (got %d)", c.MaxViolations)
	}
	for i, s := range c.Suites {
		if s.Schema == "" {
			return fmt.Errorf("suite %d: schema is required", i+1)
		}
		if s.Pattern == "" {
			return fmt.Errorf("suite %d: pattern is required", i+1)
		}
		switch s.Expect {
		case "", ExpectValid, ExpectInvalid:
		default:
			return fmt.Errorf("suite %d: unknown expect %q (valid: valid, invalid)", i+1, s.Expect)
		}
		if len(s.RuntimeChecked) > 0 && !s.ExpectsInvalid() {
			return fmt.Errorf("suite %d: runtime_checked only applies to expect: invalid", i+1)
		}
	}
	return nil
}
