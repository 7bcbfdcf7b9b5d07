package errors

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode    Phase = "encode"    // decoded text to marks
	PhaseDecode    Phase = "decode"    // marks to decoded text
	PhaseValidate  Phase = "validate"  // checked construction from encoded text
	PhaseSlice     Phase = "slice"     // ZalgoString range access
	PhaseIO        Phase = "io"        // file helpers
	PhaseSplice    Phase = "splice"    // build-time embedding
	PhaseSerialize Phase = "serialize" // serialization adapters
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidCharacter  Kind = "invalid_character"
	KindEmptyInput        Kind = "empty_input"
	KindMalformedEncoding Kind = "malformed_encoding"
	KindInvalidAnchor     Kind = "invalid_anchor"
	KindInvalidBoundary   Kind = "invalid_boundary"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindLengthMismatch    Kind = "length_mismatch"
	KindAlreadyExists     Kind = "already_exists"
	KindInvalidInput      Kind = "invalid_input"
	KindInvalidData       Kind = "invalid_data"
	KindIO                Kind = "io"
)

// Error is the structured error type used throughout the codec.
//
// Index is the zero-based byte index for encode errors and the zero-based
// symbol index for decode errors; it is -1 when no position applies.
// Line and Column are 1-indexed and only set for encode errors.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Repr   string // name of an unencodable ASCII control byte
	Stack  string // only set while stack capture is enabled
	Index  int
	Line   int
	Column int
	Rune   rune // non-ASCII character found while encoding
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		b.WriteString(" at line ")
		b.WriteString(strconv.Itoa(e.Line))
		b.WriteString(" column ")
		b.WriteString(strconv.Itoa(e.Column))
	} else if e.Index >= 0 && e.Kind != KindEmptyInput {
		b.WriteString(" at index ")
		b.WriteString(strconv.Itoa(e.Index))
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

// Byte returns the offending byte value and whether Value holds one.
func (e *Error) Byte() (byte, bool) {
	b, ok := e.Value.(byte)
	return b, ok
}

// Scalar returns the offending Unicode scalar value of a decode error.
func (e *Error) Scalar() (rune, bool) {
	r, ok := e.Value.(rune)
	return r, ok
}

// Sentinels for errors.Is matching. Only Phase and Kind take part in the match.
var (
	ErrUnencodable       = &Error{Phase: PhaseEncode, Kind: KindInvalidCharacter, Index: -1}
	ErrInvalidCharacter  = &Error{Phase: PhaseDecode, Kind: KindInvalidCharacter, Index: -1}
	ErrEmptyInput        = &Error{Phase: PhaseDecode, Kind: KindEmptyInput, Index: -1}
	ErrMalformedEncoding = &Error{Phase: PhaseDecode, Kind: KindMalformedEncoding, Index: -1}
	ErrInvalidAnchor     = &Error{Phase: PhaseDecode, Kind: KindInvalidAnchor, Index: -1}
	ErrInvalidBoundary   = &Error{Phase: PhaseSlice, Kind: KindInvalidBoundary, Index: -1}
)

var captureStacks atomic.Bool

// SetStackCapture toggles capturing of a call stack into Error.Stack for
// every error built afterwards. Matching with errors.Is is unaffected.
func SetStackCapture(enabled bool) {
	captureStacks.Store(enabled)
}

// StackCaptureEnabled reports whether stack capture is on.
func StackCaptureEnabled() bool {
	return captureStacks.Load()
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
			Index: -1,
		},
	}
}

// Index sets the zero-based byte or symbol index
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Position sets the 1-indexed line and column
func (b *Builder) Position(line, column int) *Builder {
	b.err.Line = line
	b.err.Column = column
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Rune sets the offending non-ASCII character
func (b *Builder) Rune(r rune) *Builder {
	b.err.Rune = r
	return b
}

// Repr sets the name of an ASCII control character
func (b *Builder) Repr(name string) *Builder {
	b.err.Repr = name
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
	e := b.err
	if captureStacks.Load() {
		e.Stack = zap.StackSkip("", 1).String
	}
	return &e
}

// Convenience constructors for common error patterns

// Unencodable creates the encode error for a byte outside the accepted
// alphabet. repr names ASCII control bytes; r is the decoded character when
// the byte starts a non-ASCII sequence.
func Unencodable(value byte, index, line, column int, repr string, r rune) *Error {
	b := New(PhaseEncode, KindInvalidCharacter).
		Value(value).
		Index(index).
		Position(line, column)
	switch {
	case repr != "":
		b.Repr(repr).Detail("can not encode ascii %q character with byte value %d", repr, value)
	case r != 0:
		b.Rune(r).Detail("can not encode non-ascii character %q (U+%04X)", r, r)
	default:
		b.Detail("can not encode byte 0x%02X", value)
	}
	return b.Build()
}

// InvalidCharacter creates a decode error for a well-formed scalar that does
// not map back into the accepted alphabet.
func InvalidCharacter(scalar rune, symbol int) *Error {
	return New(PhaseDecode, KindInvalidCharacter).
		Value(scalar).
		Index(symbol).
		Detail("U+%04X does not decode to printable ascii or newline", scalar).
		Build()
}

// EmptyInput creates the decode error for input without an anchor
func EmptyInput() *Error {
	return New(PhaseDecode, KindEmptyInput).
		Detail("encoded text is empty").
		Build()
}

// MalformedEncoding creates a decode error for bytes that do not form a
// 2-byte UTF-8 sequence
func MalformedEncoding(symbol int, data []byte) *Error {
	preview := data
	if len(preview) > 2 {
		preview = preview[:2]
	}
	return New(PhaseDecode, KindMalformedEncoding).
		Index(symbol).
		Value(append([]byte(nil), preview...)).
		Detail("invalid 2-byte UTF-8 sequence: %x", preview).
		Build()
}

// InvalidAnchor creates a decode error for a missing or unusable base character
func InvalidAnchor(anchor byte) *Error {
	return New(PhaseDecode, KindInvalidAnchor).
		Index(0).
		Value(anchor).
		Detail("anchor byte 0x%02X is not a printable ascii character", anchor).
		Build()
}

// InvalidBoundary creates a slicing error for a range that splits a symbol
func InvalidBoundary(start, end, length int) *Error {
	return New(PhaseSlice, KindInvalidBoundary).
		Value([2]int{start, end}).
		Detail("range [%d:%d] is not on symbol boundaries (length %d)", start, end, length).
		Build()
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, index, length int) *Error {
	return New(phase, KindOutOfBounds).
		Index(index).
		Value(index).
		Detail("index %d out of bounds (length %d)", index, length).
		Build()
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).
		Cause(cause).
		Detail("%s", detail).
		Build()
}

// IO creates a file system error
func IO(op, path string, cause error) *Error {
	return New(PhaseIO, KindIO).
		Cause(cause).
		Detail("%s %s", op, path).
		Build()
}

// AlreadyExists creates the error returned when an output file would be overwritten
func AlreadyExists(path string) *Error {
	return New(PhaseIO, KindAlreadyExists).
		Value(path).
		Detail("file %q already exists, enable overwriting to replace it", path).
		Build()
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).
		Detail("%s", detail).
		Build()
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string, cause error) *Error {
	return New(phase, KindInvalidData).
		Cause(cause).
		Detail("%s", detail).
		Build()
}

// LengthMismatch creates the error for serialized length metadata that
// disagrees with the payload
func LengthMismatch(phase Phase, declared, actual int) *Error {
	return New(phase, KindLengthMismatch).
		Value(declared).
		Detail("declared decoded length %d, payload holds %d", declared, actual).
		Build()
}

// Diagnostic is one positioned build-time failure
type Diagnostic struct {
	Err    error
	File   string
	Line   int
	Column int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %v", d.File, d.Line, d.Column, d.Err)
}

// DiagnosticsError is returned when build-time embedding fails for one or more markers
type DiagnosticsError struct {
	Diagnostics []Diagnostic
}

// NewDiagnosticsError creates an error from collected diagnostics
func NewDiagnosticsError(diags []Diagnostic) *DiagnosticsError {
	return &DiagnosticsError{Diagnostics: diags}
}

func (e *DiagnosticsError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "[splice] invalid_data: no diagnostics"
	}
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].String()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d embedding error(s):", len(e.Diagnostics)))
	for _, d := range e.Diagnostics {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}

// Unwrap exposes the individual diagnostic causes to errors.Is/As
func (e *DiagnosticsError) Unwrap() []error {
	errs := make([]error, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		errs = append(errs, d.Err)
	}
	return errs
}

// Is reports whether target matches this error type
func (e *DiagnosticsError) Is(target error) bool {
	_, ok := target.(*DiagnosticsError)
	return ok
}
