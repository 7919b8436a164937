package core

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind classifies a failed API call into the outcome the caller (and
// the user notification) should see.
type ErrorKind string

const (
	KindUnknown        ErrorKind = "unknown"
	KindAuthentication ErrorKind = "authentication" // 401 or a login response missing a token
	KindAuthorization  ErrorKind = "authorization"  // 403 or a role mismatch at the guard
	KindNotFound       ErrorKind = "not_found"
	KindServerFault    ErrorKind = "server_fault" // 500 or any unclassified non-2xx
	KindTimeout        ErrorKind = "timeout"
	KindNetwork        ErrorKind = "network"
	KindBusiness       ErrorKind = "business" // non-success code in an HTTP-200 envelope
)

// APIError is the single error type produced by the request pipeline.
type APIError struct {
	Kind    ErrorKind
	Status  int    // HTTP status; 0 when no response was received
	Code    int    // application-level code from the response envelope, if any
	Message string // user-facing message, already surfaced once by the pipeline
	Err     error  // underlying cause, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed (%s)", e.Kind)
}

func (e *APIError) Unwrap() error { return e.Err }

// KindOf returns the ErrorKind of err, or KindUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}
