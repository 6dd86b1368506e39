package domain

import "time"

// RunEntry records one validation run for later comparison.
type RunEntry struct {
	Timestamp string `json:"timestamp"`
	Commit    string `json:"commit,omitempty"`
	Passed    int    `json:"passed"`
	Failed    int    `json:"failed"`
}

// NewRunEntry condenses a run summary into a history entry.
func NewRunEntry(s RunSummary) RunEntry {
	return RunEntry{
		Timestamp: s.StartedAt.UTC().Format(time.RFC3339),
		Commit:    s.Commit,
		Passed:    s.Total.Passed,
		Failed:    s.Total.Failed,
	}
}

// Time parses the entry timestamp. The zero time is returned for malformed entries.
func (e RunEntry) Time() time.Time {
	t, err := time.Parse(time.RFC3339, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
