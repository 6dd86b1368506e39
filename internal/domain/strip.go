package domain

// CommentKey is the annotation key removed by strip-comments.
const CommentKey = "$comment"

// StripResult is what happened to a single file.
type StripResult struct {
	Path    string `json:"path"`
	Removed bool   `json:"removed"`
	Err     string `json:"error,omitempty"`
}

// StripReport summarises a strip-comments pass.
type StripReport struct {
	Pattern string        `json:"pattern"`
	DryRun  bool          `json:"dry_run"`
	Files   []StripResult `json:"files"`
	Removed int           `json:"removed"`
	Errors  int           `json:"errors"`
}
