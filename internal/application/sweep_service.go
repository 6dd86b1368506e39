package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"

	"github.com/beltic/credcheck/internal/domain"
)

const runtimeCheckNote = "requires runtime validation (date comparison not supported by JSON Schema)"

// SweepService validates every file matched by a SweepSpec against its schema.
// Files are processed one at a time, in sorted path order.
type SweepService struct {
	fs       afero.Fs
	engine   domain.ValidationEngine
	reporter domain.Reporter
	logger   log.Logger
}

// NewSweepService creates a SweepService reading schemas and documents from fs.
func NewSweepService(fs afero.Fs, engine domain.ValidationEngine, reporter domain.Reporter, logger log.Logger) *SweepService {
	if reporter == nil {
		reporter = domain.NopReporter{}
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &SweepService{fs: fs, engine: engine, reporter: reporter, logger: logger}
}

// Run performs one sweep. Schema and file failures are folded into the
// returned tally; the only error returned is an interruption, in which case
// the partial result is returned alongside it.
func (s *SweepService) Run(ctx context.Context, spec domain.SweepSpec) (domain.SweepResult, error) {
	// 1. Load the schema. Its title can name an unlabelled suite.
	schemaDoc, schemaErr := s.readSchema(spec.Schema)
	spec = withLabel(spec, schemaDoc)
	result := domain.SweepResult{Spec: spec}
	s.reporter.SweepStarted(spec)

	var schema domain.Schema
	if schemaErr == nil {
		schema, schemaErr = s.compileSchema(spec.Schema, schemaDoc)
	}
	if schemaErr != nil {
		level.Debug(s.logger).Log("msg", "schema unusable, aborting sweep", "schema", spec.Schema, "err", schemaErr)
		result.Err = schemaErr
		result.Tally = domain.Tally{Failed: 1}
		s.reporter.SweepFinished(result)
		return result, nil
	}

	// 2. Resolve the glob. Malformed patterns match nothing.
	matches, err := glob(s.fs, spec.Pattern)
	if err != nil {
		level.Warn(s.logger).Log("msg", "invalid glob pattern", "pattern", spec.Pattern, "err", err)
		matches = nil
	}
	sort.Strings(matches)
	level.Debug(s.logger).Log("msg", "resolved pattern", "pattern", spec.Pattern, "matches", len(matches))

	if len(matches) == 0 {
		result.NoMatches = true
		s.reporter.SweepFinished(result)
		return result, nil
	}
	s.reporter.FilesFound(spec, len(matches))

	// 3. Validate each file independently.
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("%w: %w", domain.ErrInterrupted, err)
		}

		s.reporter.FileStarted(spec, path)
		fr := s.checkFile(spec, schema, path)
		result.Files = append(result.Files, fr)
		result.Tally = result.Tally.Record(fr.Outcome)
		level.Debug(s.logger).Log("msg", "checked file", "file", path, "outcome", fr.Outcome, "kind", fr.Kind)
		s.reporter.FileChecked(spec, fr)
	}

	s.reporter.SweepFinished(result)
	return result, nil
}

// Labelled returns spec with the display label a sweep would give it.
func (s *SweepService) Labelled(spec domain.SweepSpec) domain.SweepSpec {
	if spec.Label != "" {
		return spec
	}
	doc, _ := s.readSchema(spec.Schema)
	return withLabel(spec, doc)
}

// LoadSchema reads and compiles the schema at path, classifying failures.
func (s *SweepService) LoadSchema(path string) (domain.Schema, error) {
	doc, derr := s.readSchema(path)
	if derr != nil {
		return nil, derr
	}
	schema, cerr := s.compileSchema(path, doc)
	if cerr != nil {
		return nil, cerr
	}
	return schema, nil
}

// CheckFile validates a single document the way a sweep would.
func (s *SweepService) CheckFile(spec domain.SweepSpec, schema domain.Schema, path string) domain.FileResult {
	return s.checkFile(spec, schema, path)
}

func (s *SweepService) readSchema(path string) (any, *domain.Error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.Error{Kind: domain.KindSchemaNotFound, Path: path, Err: err}
		}
		return nil, &domain.Error{Kind: domain.KindUnexpected, Path: path, Err: err}
	}

	doc, err := s.engine.Decode(data)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindSchemaMalformed, Path: path, Err: err}
	}
	return doc, nil
}

func (s *SweepService) compileSchema(path string, doc any) (domain.Schema, *domain.Error) {
	schema, err := s.engine.Compile(path, doc)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindSchemaMalformed, Path: path, Err: err}
	}
	level.Debug(s.logger).Log("msg", "compiled schema", "schema", path)
	return schema, nil
}

func (s *SweepService) checkFile(spec domain.SweepSpec, schema domain.Schema, path string) domain.FileResult {
	fr := domain.FileResult{Path: path}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return failed(fr, domain.KindUnexpected, err.Error())
	}

	doc, err := s.engine.Decode(data)
	if err != nil {
		return failed(fr, domain.KindDocumentMalformed, err.Error())
	}

	return judge(spec, fr, schema.Validate(doc))
}

// judge turns the engine's violations into a verdict according to what the
// suite expects of its documents.
func judge(spec domain.SweepSpec, fr domain.FileResult, violations []domain.Violation) domain.FileResult {
	fr.Violations = violations

	if !spec.ExpectsInvalid() {
		if len(violations) == 0 {
			fr.Outcome = domain.OutcomePassed
			return fr
		}
		fr.Outcome = domain.OutcomeFailed
		fr.Kind = domain.KindSchemaViolation
		return fr
	}

	switch {
	case len(violations) > 0:
		fr.Outcome = domain.OutcomePassed
		fr.Note = "correctly rejected"
	case spec.IsRuntimeChecked(fr.Path):
		fr.Outcome = domain.OutcomePassed
		fr.Note = runtimeCheckNote
	default:
		fr.Outcome = domain.OutcomeFailed
		fr.Kind = domain.KindAcceptedInvalid
		fr.Detail = "should be invalid but passed"
	}
	return fr
}

func failed(fr domain.FileResult, kind domain.ErrorKind, detail string) domain.FileResult {
	fr.Outcome = domain.OutcomeFailed
	fr.Kind = kind
	fr.Detail = detail
	return fr
}
