package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // board file decoding
	PhaseTraverse Phase = "traverse" // backend traversal
	PhaseAllocate Phase = "allocate" // stream and gpio id assignment
	PhaseCatalog  Phase = "catalog"  // device catalog lookup
	PhaseSchedule Phase = "schedule" // scheduler synthesis
	PhaseOutput   Phase = "output"   // artifact publication
	PhaseConfig   Phase = "config"   // generator configuration
)

// Kind categorizes the error
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindStructural    Kind = "structural"
	KindInvariant     Kind = "invariant"
	KindInvalidInput  Kind = "invalid_input"
	KindUnsupported   Kind = "unsupported"
	KindIO            Kind = "io"
)

// StreamRole names a stream category for allocation errors.
type StreamRole string

const (
	Master StreamRole = "host-write"
	Slave  StreamRole = "host-read"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Backend string
	File    string
	Detail  string
	Path    []string
	Line    int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.File != "" {
		b.WriteString(e.File)
		if e.Line > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(e.Line))
		}
		b.WriteString(": ")
	}

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	if e.Backend != "" {
		b.WriteByte('/')
		b.WriteString(e.Backend)
	}
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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

// IsFatal reports whether err, or any error it wraps, is an invariant
// violation that must abort the current backend run.
func IsFatal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == KindInvariant
	}
	return false
}

// KindOf returns the kind of the first structured error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
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

// Path sets the board path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Backend sets the reporting backend name
func (b *Builder) Backend(name string) *Builder {
	b.err.Backend = name
	return b
}

// At sets the source position
func (b *Builder) At(file string, line int) *Builder {
	b.err.File = file
	b.err.Line = line
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

// WithBackend returns a copy of e attributed to the named backend.
func (e *Error) WithBackend(name string) *Error {
	c := *e
	c.Backend = name
	return &c
}

// WithPos returns a copy of e carrying the given source position.
func (e *Error) WithPos(file string, line int) *Error {
	c := *e
	c.File = file
	c.Line = line
	return &c
}

// Convenience constructors for common error patterns

// StreamsExhausted creates the error reported when a stream category has no
// identifiers left.
func StreamsExhausted(role StreamRole, limit int) *Error {
	return &Error{
		Phase:  PhaseAllocate,
		Kind:   KindConfiguration,
		Detail: fmt.Sprintf("too many %s stream interfaces (limit %d)", role, limit),
	}
}

// UnknownDevice creates an error for a GPIO name missing from the catalog.
func UnknownDevice(name string) *Error {
	return &Error{
		Phase:  PhaseCatalog,
		Kind:   KindConfiguration,
		Path:   []string{name},
		Detail: fmt.Sprintf("unknown GPIO device %q", name),
	}
}

// BidirectionalGPIO creates an error for a DUAL GPIO declaration.
func BidirectionalGPIO(name string) *Error {
	return &Error{
		Phase:  PhaseTraverse,
		Kind:   KindConfiguration,
		Path:   []string{name},
		Detail: "bi-directional GPIO components are not supported",
	}
}

// MissingPort creates a structural error for a binding whose port does not
// exist on the instance's core.
func MissingPort(instance, core, port string) *Error {
	return &Error{
		Phase:  PhaseTraverse,
		Kind:   KindStructural,
		Path:   []string{instance, port},
		Detail: fmt.Sprintf("core %q has no port %q", core, port),
	}
}

// MissingCore creates a structural error for an instance of an undeclared core.
func MissingCore(instance, core string) *Error {
	return &Error{
		Phase:  PhaseTraverse,
		Kind:   KindStructural,
		Path:   []string{instance},
		Detail: fmt.Sprintf("instance of undeclared core %q", core),
	}
}

// Invariant creates a fatal error for a condition a validated board never produces.
func Invariant(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvariant,
		Detail: detail,
	}
}

// Unsupported creates an unsupported feature error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
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
