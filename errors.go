package vcanvas

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures reported by render contexts and builders.
type ErrorKind int

const (
	// NotSupported reports a format, gradient kind or feature the active
	// backend cannot represent.
	NotSupported ErrorKind = iota + 1
	// MissingFeature reports an optional capability compiled out of the build.
	MissingFeature
	// BackendError wraps a failure of the native engine.
	BackendError
	// InvalidInput reports malformed shapes, stops, buffers or foreign values.
	InvalidInput
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case NotSupported:
		return "not supported"
	case MissingFeature:
		return "missing feature"
	case BackendError:
		return "backend error"
	case InvalidInput:
		return "invalid input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by every vcanvas operation.
type Error struct {
	Op   string    // operation that failed, e.g. "make_image"
	Kind ErrorKind // classification
	Err  error     // underlying cause, may be nil
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrNotSupported   = &Error{Kind: NotSupported}
	ErrMissingFeature = &Error{Kind: MissingFeature}
	ErrBackend        = &Error{Kind: BackendError}
	ErrInvalidInput   = &Error{Kind: InvalidInput}
)

// NewError builds an *Error for op.
func NewError(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Errorf builds an *Error whose cause is formatted from format and args.
func Errorf(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	msg := "vcanvas: "
	if e.Op != "" {
		msg += e.Op + ": "
	}
	msg += e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a kind sentinel matching e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// AsBackendError wraps a native engine error as BackendError unless it
// already carries a kind.
func AsBackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Kind: BackendError, Err: err}
}
