// Package errors provides structured error types for the html-rewriter library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending selector text and a cause
// chain when one exists.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegistration, errors.KindMalformedSelector).
//		Selector("div[").
//		Detail("unterminated attribute selector").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedSelector("div[", cause)
//	err := errors.InvalidUTF8(errors.PhaseRegistration, raw)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
