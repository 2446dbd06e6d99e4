// Package transport carries protocol messages and user actions over a
// jsonrpc2 connection.
//
// Two wire methods exist: a2ui/serverEvent delivers an ordered batch
// of protocol messages inward (notification or request, the request
// form acknowledges how many messages were applied), and
// a2ui/userAction delivers a dispatched user action outward as a
// notification.
//
// Serve attaches a surface.Processor to the client-app end of a
// stream; NewClient attaches a producer to the other end. Ordering
// within a connection is the stream's ordering — the processor applies
// batches in arrival order and performs no reordering of its own.
package transport
