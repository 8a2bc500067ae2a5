// Package apperrors defines the failure kinds surfaced by the converter commands.
package apperrors

import (
	"errors"

	errorslib "github.com/goliatone/go-errors"
)

// Kind classifies a fatal conversion failure.
type Kind string

const (
	KindInputNotFound Kind = "input_not_found"
	KindFormat        Kind = "format"
	KindOutputWrite   Kind = "output_write"
	KindConfig        Kind = "config"
	KindInternal      Kind = "internal"
)

// Error wraps an underlying error with its kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error of the given kind.
func New(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// InputNotFound reports a missing or unreadable input file.
func InputNotFound(msg string, err error) *Error {
	return New(KindInputNotFound, msg, err)
}

// Format reports an input that is not a usable spreadsheet.
func Format(msg string, err error) *Error {
	return New(KindFormat, msg, err)
}

// OutputWrite reports a destination that could not be written.
func OutputWrite(msg string, err error) *Error {
	return New(KindOutputWrite, msg, err)
}

// KindOf returns the kind carried by err, or KindInternal when it has none.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch KindOf(err) {
	case KindInputNotFound:
		return 2
	case KindFormat:
		return 3
	case KindOutputWrite:
		return 4
	default:
		return 1
	}
}

// AsGoError maps an error into a go-errors error for structured reporting.
func AsGoError(err error) *errorslib.Error {
	if err == nil {
		return nil
	}

	var ge *errorslib.Error
	if errors.As(err, &ge) {
		return ge
	}

	msg := err.Error()

	switch KindOf(err) {
	case KindInputNotFound:
		return errorslib.New(msg, errorslib.CategoryNotFound).WithTextCode(string(KindInputNotFound))
	case KindFormat:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode(string(KindFormat))
	case KindConfig:
		return errorslib.New(msg, errorslib.CategoryValidation).WithTextCode(string(KindConfig))
	case KindOutputWrite:
		return errorslib.New(msg, errorslib.CategoryOperation).WithTextCode(string(KindOutputWrite))
	default:
		return errorslib.New(msg, errorslib.CategoryInternal).WithTextCode(string(KindInternal))
	}
}
