package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies a failure by the policy that handles it.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	// KindSchemaNotFound aborts a sweep: the schema file does not exist.
	KindSchemaNotFound
	// KindSchemaMalformed aborts a sweep: the schema is not JSON or does not compile.
	KindSchemaMalformed
	// KindDocumentMalformed fails one file: it is not JSON.
	KindDocumentMalformed
	// KindSchemaViolation fails one file: it breaks at least one constraint.
	KindSchemaViolation
	// KindAcceptedInvalid fails one file of an expected-invalid suite: the schema accepted it.
	KindAcceptedInvalid
	// KindUnexpected fails one file (or a sweep, when loading its schema) for any other reason.
	KindUnexpected
)

var kindNames = map[ErrorKind]string{
	KindNone:              "",
	KindSchemaNotFound:    "schema_not_found",
	KindSchemaMalformed:   "schema_malformed",
	KindDocumentMalformed: "document_malformed",
	KindSchemaViolation:   "schema_violation",
	KindAcceptedInvalid:   "accepted_invalid",
	KindUnexpected:        "unexpected_error",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Error is a classified failure tied to the file that caused it.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Kind    ErrorKind `json:"kind"`
		Path    string    `json:"path,omitempty"`
		Message string    `json:"message"`
	}{e.Kind, e.Path, msg})
}

// KindOf returns the kind carried by err, or KindUnexpected for unclassified errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}

var (
	// ErrValidationFailed is returned when at least one credential failed.
	ErrValidationFailed = errors.New("validation failed")
	// ErrInterrupted is returned when the run was cancelled by the user.
	ErrInterrupted = errors.New("validation interrupted by user")
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// ExitCodeFor maps the outcome of a run to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
