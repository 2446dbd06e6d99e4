// Package a2ui provides a Go implementation of the A2UI surface runtime.
//
// A backend describes a user interface as an ordered stream of small
// protocol messages. This library interprets that stream into live,
// mutable surface state (a component registry, a data model, and a root
// pointer) ready to be painted by a host renderer, and resolves value
// bindings between components and their surface's data model.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	a2ui/            Root package with the UserAction event and ActionSink interface
//	├── surface/     Surface processor: protocol messages, per-surface state, Apply
//	├── binding/     JSON-pointer engine and value descriptor resolution
//	├── component/   Component instances, kinds, children and prop registries
//	├── builder/     Fluent producer-side surface construction
//	├── transport/   jsonrpc2 delivery of server events and user actions
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Apply a message stream and read the resulting surface:
//
//	proc := surface.NewProcessor()
//
//	msgs, err := surface.DecodeMessages(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	proc.Apply(msgs)
//
//	s, ok := proc.Surface("surface_1a2b3c4d")
//	if ok {
//	    root, _ := s.Component(s.RootID())
//	    for _, id := range component.ChildIDs(root) {
//	        child, _ := s.Component(id)
//	        props := component.RenderProps(child, s.DataModel())
//	        // hand props to the host toolkit
//	        _ = props
//	    }
//	}
//
// # Data Flow
//
// Messages flow one direction inward (protocol messages mutate surface
// state) and events flow one direction outward (user interaction becomes
// a UserAction handed to the ActionSink). The concrete renderer and the
// transport that carries messages are host concerns; cmd/render and the
// transport package provide reference implementations.
//
// # Bindings
//
// Component properties hold value descriptors: either literals
// (literalString, literalNumber, literalBoolean) or a path resolved
// against the surface's data model at render time. Literals win when
// both are present. Read failures degrade to nil and are logged, never
// raised; only malformed writes return errors.
//
// # Thread Safety
//
// A Processor is safe for concurrent Apply calls addressing different
// surfaces. Messages for one surface must come from a single logical
// writer; the processor does no reordering or sequence reconciliation.
package a2ui
