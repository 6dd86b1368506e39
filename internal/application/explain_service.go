package application

import (
	"github.com/spf13/afero"

	"github.com/beltic/credcheck/internal/domain"
)

// ExplainService diagnoses a single document against a single schema,
// reporting every violation rather than a truncated list.
type ExplainService struct {
	sweeps *SweepService
}

func NewExplainService(sweeps *SweepService) *ExplainService {
	return &ExplainService{sweeps: sweeps}
}

// Explain validates docPath against schemaPath. Schema and document problems
// are returned as *domain.Error; a document that merely violates the schema is
// not an error.
func (s *ExplainService) Explain(schemaPath, docPath string) (*domain.Explanation, error) {
	schemaDoc, derr := s.sweeps.readSchema(schemaPath)
	if derr != nil {
		return nil, derr
	}
	schema, cerr := s.sweeps.compileSchema(schemaPath, schemaDoc)
	if cerr != nil {
		return nil, cerr
	}

	data, err := afero.ReadFile(s.sweeps.fs, docPath)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindUnexpected, Path: docPath, Err: err}
	}
	doc, err := s.sweeps.engine.Decode(data)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindDocumentMalformed, Path: docPath, Err: err}
	}

	violations := schema.Validate(doc)
	return &domain.Explanation{
		Schema:     schemaPath,
		SchemaID:   schemaID(schemaDoc),
		Document:   docPath,
		Valid:      len(violations) == 0,
		Violations: violations,
	}, nil
}

func schemaID(doc any) string {
	obj, ok := doc.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := obj["$id"].(string)
	return id
}
