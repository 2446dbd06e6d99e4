package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // pointer/message parsing
	PhaseResolve  Phase = "resolve"  // binding resolution
	PhaseApply    Phase = "apply"    // protocol message application
	PhaseDispatch Phase = "dispatch" // user action dispatch
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedPointer Kind = "malformed_pointer"
	KindRootWrite        Kind = "root_write"
	KindNotFound         Kind = "not_found"
	KindInvalidMessage   Kind = "invalid_message"
	KindInvalidData      Kind = "invalid_data"
	KindQueueOverflow    Kind = "queue_overflow"
	KindSinkClosed       Kind = "sink_closed"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Surface   string
	Component string
	Pointer   string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Surface != "" {
		b.WriteString(" surface ")
		b.WriteString(e.Surface)
	}
	if e.Component != "" {
		b.WriteString(" component ")
		b.WriteString(e.Component)
	}
	if e.Pointer != "" {
		b.WriteString(" pointer ")
		b.WriteString(strconvQuote(e.Pointer))
	}
	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
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

func strconvQuote(s string) string { return fmt.Sprintf("%q", s) }

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

// Surface sets the surface id
func (b *Builder) Surface(id string) *Builder {
	b.err.Surface = id
	return b
}

// Component sets the component id
func (b *Builder) Component(id string) *Builder {
	b.err.Component = id
	return b
}

// Pointer sets the offending pointer expression
func (b *Builder) Pointer(p string) *Builder {
	b.err.Pointer = p
	return b
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// MalformedPointer creates a malformed pointer error
func MalformedPointer(phase Phase, pointer string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindMalformedPointer,
		Pointer: pointer,
		Detail:  "pointer must start with '/'",
	}
}

// RootWrite creates an error for a write addressed at the tree root
func RootWrite(pointer string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindRootWrite,
		Pointer: pointer,
		Detail:  "cannot replace the whole tree through set",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidMessage creates an invalid protocol message error
func InvalidMessage(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidMessage,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// QueueOverflow creates a pending-queue overflow error
func QueueOverflow(surfaceID string, dropped int) *Error {
	return &Error{
		Phase:   PhaseApply,
		Kind:    KindQueueOverflow,
		Surface: surfaceID,
		Detail:  fmt.Sprintf("pending queue full, dropped %d message(s)", dropped),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
