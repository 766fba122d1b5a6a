// Package errors provides structured error types for drawkit.
//
// Rendering and outline computation never fail for well-formed model data;
// malformed geometry is defaulted instead. The error codes below cover the
// surrounding tooling: loading documents and themes, resolving renderers,
// and producing output artifacts.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND / NO_*: Resource lookup failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDiagram, "unknown source %q", src).For(id)
//	if errors.Is(err, errors.ErrCodeInvalidDiagram) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidTheme, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidDiagram Code = "INVALID_DIAGRAM"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme   Code = "INVALID_THEME"

	// Lookup errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNoRenderer   Code = "NO_RENDERER"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error carries a code, a message, the ID of the diagram element it concerns
// (if any) and an optional cause.
type Error struct {
	Code    Code
	Message string
	Element string
	Cause   error
}

// Error formats as "CODE: [element ID: ]message[: cause]".
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	if e.Element != "" {
		fmt.Fprintf(&b, "element %s: ", e.Element)
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// For attaches the ID of the offending element and returns e.
func (e *Error) For(elementID string) *Error {
	e.Element = elementID
	return e
}

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with a cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := find(err)
	return ok && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// ElementID returns the element an error concerns, or "" when it concerns
// none.
func ElementID(err error) string {
	if e, ok := find(err); ok {
		return e.Element
	}
	return ""
}

// UserMessage returns the message without the code prefix for an *Error,
// and err.Error() otherwise.
func UserMessage(err error) string {
	e, ok := find(err)
	if !ok {
		return err.Error()
	}
	if e.Element != "" {
		return "element " + e.Element + ": " + e.Message
	}
	return e.Message
}

// HTTPStatus maps an error code to the status the API responds with.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDiagram, ErrCodeInvalidFormat, ErrCodeInvalidTheme:
		return http.StatusBadRequest
	case ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeNoRenderer, ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
