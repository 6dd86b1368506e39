package domain

import "strings"

// RootPath is the display path of a violation at the document root.
const RootPath = "(root)"

// Violation is one failed schema constraint.
type Violation struct {
	Path           string `json:"path"`
	Message        string `json:"message"`
	Keyword        string `json:"keyword,omitempty"`
	SchemaLocation string `json:"schema_location,omitempty"`
}

// JoinPath renders a document location as slash-separated keys and indices.
func JoinPath(segments []string) string {
	if len(segments) == 0 {
		return RootPath
	}
	return strings.Join(segments, "/")
}

// Truncate returns at most limit violations and how many were left out.
// A non-positive limit keeps everything.
func Truncate(violations []Violation, limit int) ([]Violation, int) {
	if limit <= 0 || len(violations) <= limit {
		return violations, 0
	}
	return violations[:limit], len(violations) - limit
}
