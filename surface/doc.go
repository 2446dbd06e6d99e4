// Package surface turns an ordered stream of protocol messages into
// live surface state.
//
// A Processor owns a registry of named surfaces. Each surface holds a
// root component pointer, a component registry, and a data model,
// mutated in place by the three message variants:
//
//	beginRendering   sets the root and merges styles
//	surfaceUpdate    upserts whole component instances by id
//	dataModelUpdate  writes keyed values into the data model
//
// Surfaces are created implicitly on first reference. A surface whose
// root has not arrived yet is Initializing: non-begin messages queue
// (bounded, oldest dropped and logged) and replay in order once
// beginRendering supplies the root. No protocol message removes a
// component or a surface; teardown is the host's explicit
// DestroySurface call.
//
// Failures during Apply are recovered locally and logged through the
// package logger (a no-op by default, see SetLogger). The worst
// observable symptom of a protocol violation is a partially rendered
// surface, not a crash.
//
// # Thread Safety
//
// A Processor is safe for concurrent Apply calls addressing different
// surfaces. Messages for one surface must come from a single logical
// writer, in backend production order; the processor does no
// reordering or sequence-number reconciliation.
package surface
