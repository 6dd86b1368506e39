package engine

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/beltic/credcheck/internal/domain"
)

// scheme names schema resources that live on the engine's file system.
const scheme = "credcheck"

// Engine implements domain.ValidationEngine with JSON Schema Draft 2020-12
// semantics. Formats are asserted, not just annotated.
type Engine struct {
	fs      afero.Fs
	printer *message.Printer
}

// New creates an Engine that resolves relative $refs through fs.
func New(fs afero.Fs) *Engine {
	return &Engine{
		fs:      fs,
		printer: message.NewPrinter(language.English),
	}
}

// Decode parses data as a single JSON value, keeping numbers exact.
func (e *Engine) Decode(data []byte) (any, error) {
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// Compile compiles a decoded schema document found at location.
func (e *Engine) Compile(location string, doc any) (domain.Schema, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)
	c.AssertFormat()
	c.UseLoader(jsonschema.SchemeURLLoader{scheme: fsLoader{fs: e.fs}})

	u := resourceURL(location)
	if err := c.AddResource(u, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	sch, err := c.Compile(u)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return &Schema{schema: sch, printer: e.printer}, nil
}

// Schema is a compiled JSON Schema.
type Schema struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// Validate returns the leaf violations of doc in the order the engine reports them.
func (s *Schema) Validate(doc any) []domain.Violation {
	err := s.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []domain.Violation{{Path: domain.RootPath, Message: err.Error()}}
	}

	var out []domain.Violation
	collectLeaves(ve, s.printer, &out)
	return out
}

// collectLeaves flattens the error tree. Inner nodes only group their causes.
func collectLeaves(ve *jsonschema.ValidationError, p *message.Printer, out *[]domain.Violation) {
	if len(ve.Causes) == 0 {
		*out = append(*out, domain.Violation{
			Path:           domain.JoinPath(ve.InstanceLocation),
			Message:        ve.ErrorKind.LocalizedString(p),
			Keyword:        strings.Join(ve.ErrorKind.KeywordPath(), "/"),
			SchemaLocation: ve.SchemaURL,
		})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, p, out)
	}
}

func resourceURL(location string) string {
	p := filepath.ToSlash(filepath.Clean(location))
	return scheme + ":///" + strings.TrimPrefix(p, "/")
}

// fsLoader serves $ref targets from the engine's file system.
type fsLoader struct {
	fs afero.Fs
}

func (l fsLoader) Load(rawURL string) (any, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	name := filepath.FromSlash(strings.TrimPrefix(path.Clean(u.Path), "/"))
	data, err := afero.ReadFile(l.fs, name)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}
