// Package errors provides structured error types for the a2ui runtime.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes surface/component ids, the
// offending pointer, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseApply, errors.KindInvalidData).
//		Surface("surface_1a2b3c4d").
//		Component("c1").
//		Detail("component has no type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedPointer(errors.PhaseResolve, "user/name")
//	err := errors.RootWrite("/")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
