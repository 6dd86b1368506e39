package domain

// Explanation is the full diagnosis of one document against one schema.
type Explanation struct {
	Schema     string      `json:"schema"`
	SchemaID   string      `json:"schema_id,omitempty"`
	Document   string      `json:"document"`
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"violations,omitempty"`
}
