// Package diag defines the diagnostic record shared by the parser,
// validator, encoder and file layer. Every fallible operation in this
// module returns its diagnostic as a value; there is no shared
// last-error state.
package diag

import (
	"errors"
	"fmt"
)

// Error is the single diagnostic shape surfaced by this module. Line and
// Col are 1-based and byte-oriented; they are zero for diagnostics that
// have no position (config, file errors). Context holds a short input
// snippet around the failure point, with "..." markers when truncated.
type Error struct {
	Code    Code
	Line    int
	Col     int
	Msg     string
	Context string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Line > 0 && e.Context != "":
		return fmt.Sprintf("%s: %s at line %d, col %d: `%s`",
			e.Code, e.Msg, e.Line, e.Col, e.Context)
	case e.Line > 0:
		return fmt.Sprintf("%s: %s at line %d, col %d", e.Code, e.Msg, e.Line, e.Col)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a position-less diagnostic.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a position-less diagnostic carrying an underlying error.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the diagnostic code from an error chain, or CodeNone.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeNone
}
