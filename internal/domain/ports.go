package domain

// ValidationEngine decodes JSON and compiles schemas. It is the only
// component that knows JSON Schema semantics.
type ValidationEngine interface {
	// Decode parses a JSON document in the representation Compile and
	// Schema.Validate expect.
	Decode(data []byte) (any, error)
	// Compile turns a decoded schema document into a validator. location
	// identifies the schema for relative $ref resolution.
	Compile(location string, doc any) (Schema, error)
}

// Schema validates decoded documents against one compiled JSON Schema.
type Schema interface {
	// Validate returns every violated constraint, or nil when doc conforms.
	Validate(doc any) []Violation
}

// Reporter receives sweep progress as it happens.
type Reporter interface {
	RunStarted()
	SweepStarted(spec SweepSpec)
	FilesFound(spec SweepSpec, count int)
	// FileStarted is called before a file is read, FileChecked once it is judged.
	FileStarted(spec SweepSpec, path string)
	FileChecked(spec SweepSpec, result FileResult)
	SweepFinished(result SweepResult)
	RunFinished(summary RunSummary)
}

// NopReporter discards all progress. Used when the report is rendered as a whole.
type NopReporter struct{}

func (NopReporter) RunStarted() {}
func (NopReporter) SweepStarted(SweepSpec) {}
func (NopReporter) FilesFound(SweepSpec, int) {}
func (NopReporter) FileStarted(SweepSpec, string) {}
func (NopReporter) FileChecked(SweepSpec, FileResult) {}
func (NopReporter) SweepFinished(SweepResult) {}
func (NopReporter) RunFinished(RunSummary) {}

// ConfigLoader loads the sweep configuration.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// CommitReader reports the commit the credentials were validated at.
type CommitReader interface {
	CommitHash(projectPath string) (string, error)
}

// RunHistory stores summaries of past runs.
type RunHistory interface {
	Save(entry RunEntry) error
	Load() ([]RunEntry, error)
}
