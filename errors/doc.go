// Package errors provides structured error types for the zalgo codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending value together with its position: the byte
// index, line and column for encode errors, the symbol index for decode errors.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidCharacter).
//		Index(3).
//		Value(rune(0x360)).
//		Detail("does not decode to printable ascii").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unencodable('\t', 5, 1, 6, "Horizontal Tab", 0)
//	err := errors.InvalidBoundary(0, 2, 11)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching only considers Phase and Kind, so the sentinels work as targets:
//
//	if errors.Is(err, zerrors.ErrEmptyInput) { ... }
//
// SetStackCapture(true) records a call stack in Error.Stack for debugging.
// It never changes how errors match.
package errors
