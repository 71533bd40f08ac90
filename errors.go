// Package promptflow is a local, file-based store for short text documents
// ("prompts") kept in two fixed collections, favorites and templates.
//
// Every document is one Markdown file: a small header block of key: value
// metadata between two "---" lines, a blank line, then the free-form body.
// The header uses a deliberately restricted subset of YAML (one scalar or one
// flat list per line, no nesting) that is parsed by hand so that unknown keys
// and malformed lines never prevent a document from loading.
//
// The storage root is resolved on every operation from an injected
// StorageConfig, so a changed storage path takes effect without reopening
// the Store. Collections are created lazily and idempotently, and all file
// access under a collection goes through os.Root so document ids can never
// escape their directory.
package promptflow

import "errors"

// Error kinds. Callers use errors.Is to tell them apart; the wrapped cause is
// preserved for display.
var (
	ErrIO         = errors.New("i/o failure")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("document not found")
	ErrParse      = errors.New("parse failure")
)

// Validation refinements. Both satisfy errors.Is(err, ErrValidation).
var (
	ErrInvalidID         = validation("invalid document id")
	ErrInvalidCollection = validation("unknown collection")
)

type kindError struct {
	msg  string
	kind error
}

func validation(msg string) error { return &kindError{msg: msg, kind: ErrValidation} }

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Code maps an error to a stable code string for machine-readable output.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrValidation):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrParse):
		return "PARSE_ERROR"
	case errors.Is(err, ErrIO):
		return "IO_ERROR"
	default:
		return "ERROR"
	}
}
