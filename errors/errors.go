package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse        Phase = "parse"        // selector text parsing
	PhaseRegistration Phase = "registration" // handler registration
	PhaseBoundary     Phase = "boundary"     // guest-facing ABI operations
	PhaseDispatch     Phase = "dispatch"     // event dispatch into guest handlers
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedSelector Kind = "malformed_selector"
	KindInvalidUTF8       Kind = "invalid_utf8"
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
	KindTypeMismatch      Kind = "type_mismatch"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindTrap              Kind = "trap"
	KindDirective         Kind = "directive"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Selector string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Selector != "" {
		b.WriteString(" for selector ")
		b.WriteString(fmt.Sprintf("%q", e.Selector))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Selector sets the selector text the error refers to
func (b *Builder) Selector(s string) *Builder {
	b.err.Selector = s
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedSelector creates a selector parse failure error
func MalformedSelector(selector string, cause error) *Error {
	return &Error{
		Phase:    PhaseParse,
		Kind:     KindMalformedSelector,
		Selector: selector,
		Cause:    cause,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error with a bounded data preview
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not found error for a missing handle or export
func NotFound(phase Phase, what string, ref uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %d not found", what, ref),
	}
}

// TypeMismatch creates an error for a handle of the wrong resource type
func TypeMismatch(phase Phase, what string, handle uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Detail: fmt.Sprintf("handle %d is not a %s", handle, what),
	}
}

// OutOfBounds creates an error for a guest buffer outside linear memory
func OutOfBounds(phase Phase, offset, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d+%d) exceeds guest memory", offset, offset, length),
	}
}

// Trap wraps a guest trap raised during handler invocation
func Trap(cause error, detail string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindTrap,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidDirective creates an error for an unknown control directive value
func InvalidDirective(value int32) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindDirective,
		Detail: fmt.Sprintf("guest handler returned unknown directive %d", value),
	}
}
