// Package arterr defines the tagged error values shared by the string-art
// pipeline packages.
//
// Every failure reported to a caller carries one of a small set of kinds so
// that hosts can branch on the category without parsing message text. Errors
// support errors.Is/errors.As and wrap an underlying cause where one exists.
package arterr

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// InvalidArgument indicates a caller-supplied parameter is out of range
	// or otherwise unusable (e.g., a pin count of zero).
	InvalidArgument Kind = iota + 1

	// DecodeError indicates the supplied bytes are not a recognized raster
	// image format or are corrupt.
	DecodeError

	// GeometryError indicates a crop/resize rectangle degenerated to a
	// non-positive size after clamping.
	GeometryError

	// PreconditionError indicates an operation was invoked before its
	// required state existed (e.g., planning without a processed image).
	PreconditionError
)

// String returns the stable wire name of the kind.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case DecodeError:
		return "decode_error"
	case GeometryError:
		return "geometry_error"
	case PreconditionError:
		return "precondition_error"
	default:
		return "unknown"
	}
}

// Error is a failure tagged with a Kind and an optional wrapped cause.
type Error struct {
	Kind Kind   // failure category
	Msg  string // human-readable description
	Err  error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error with a formatted message and no cause.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates a tagged error that records err as its cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err. It returns 0 if err is nil or carries
// no tag anywhere in its chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err is tagged with the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
