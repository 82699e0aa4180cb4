package monoid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTypeMismatch is returned when values of different concrete monoid types are combined.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrConfigurationMismatch is returned when two values carry different combiners.
	ErrConfigurationMismatch = errors.New("configuration mismatch")
	// ErrMappingFailure wraps an error raised by caller-supplied functions.
	ErrMappingFailure = errors.New("mapping failure")
	// ErrOverflow is returned when an integer Sum or Product exceeds its representation.
	ErrOverflow = errors.New("numeric overflow")
)

// Error describes a failed monoid operation.
type Error struct {
	// Op is the operation that failed, e.g. "Map.Combine".
	Op string
	// Kind is one of the Err* sentinels of this package.
	Kind error
	// Detail is a human readable explanation.
	Detail string
	// Cause is the underlying caller error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// NewTypeMismatch reports that left and right are of different concrete types.
func NewTypeMismatch(op string, left, right any) error {
	return &Error{
		Op:     op,
		Kind:   ErrTypeMismatch,
		Detail: fmt.Sprintf("cannot combine %T with %T", left, right),
	}
}

// NewConfigurationMismatch reports that two operands were built with different combiners.
func NewConfigurationMismatch(op string, left, right fmt.Stringer) error {
	return &Error{
		Op:     op,
		Kind:   ErrConfigurationMismatch,
		Detail: fmt.Sprintf("combiner %s differs from %s", describe(left), describe(right)),
	}
}

// NewMappingFailure wraps an error returned by a caller-supplied function.
func NewMappingFailure(op string, cause error) error {
	return &Error{Op: op, Kind: ErrMappingFailure, Cause: cause}
}

func newOverflow(op string, operands ...any) error {
	parts := make([]string, len(operands))
	for i, v := range operands {
		parts[i] = fmt.Sprint(v)
	}
	return &Error{
		Op:     op,
		Kind:   ErrOverflow,
		Detail: strings.Join(parts, " and "),
	}
}

func describe(s fmt.Stringer) string {
	if s == nil {
		return "<none>"
	}
	return s.String()
}
