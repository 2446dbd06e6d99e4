package transport

import (
	"context"
	"encoding/json"
	"io"

	"github.com/sourcegraph/jsonrpc2"

	a2ui "github.com/wippyai/a2ui-runtime"
	"github.com/wippyai/a2ui-runtime/surface"
)

// Wire methods.
const (
	// MethodServerEvent carries a batch of protocol messages inward.
	MethodServerEvent = "a2ui/serverEvent"
	// MethodUserAction carries a user action outward.
	MethodUserAction = "a2ui/userAction"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

// ServerEvent is the a2ui/serverEvent payload: an ordered message
// batch plus opaque display metadata.
type ServerEvent struct {
	Messages []surface.Message `json:"messages"`
	Metadata map[string]any    `json:"metadata,omitempty"`
}

// EventResult acknowledges an applied server event.
type EventResult struct {
	Applied int `json:"applied"`
}

// Conn is the client-side end of an a2ui connection: inbound server
// events are applied to a Processor, dispatched user actions flow back
// as notifications.
type Conn struct {
	conn *jsonrpc2.Conn
}

// Serve attaches proc to stream. It registers itself as proc's action
// sink, so every DispatchUserAction is forwarded as an a2ui/userAction
// notification on the connection.
func Serve(ctx context.Context, stream io.ReadWriteCloser, proc *surface.Processor) *Conn {
	c := &Conn{}
	c.conn = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		routingHandler(map[string]method{
			MethodServerEvent: serverEventMethod(proc),
		}))

	proc.SetActionSink(a2ui.ActionSinkFunc(func(action a2ui.UserAction) error {
		return c.conn.Notify(ctx, MethodUserAction, action)
	}))
	return c
}

// Wait blocks until the connection is closed or fails.
func (c *Conn) Wait() {
	<-c.conn.DisconnectNotify()
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}

type method func(ctx context.Context, conn *jsonrpc2.Conn, params json.RawMessage) (any, error)

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		if req.Params == nil {
			return nil, errInvalidParams
		}
		return fn(ctx, conn, *req.Params)
	})
}

func serverEventMethod(proc *surface.Processor) method {
	return func(_ context.Context, _ *jsonrpc2.Conn, params json.RawMessage) (any, error) {
		var event ServerEvent
		if json.Unmarshal(params, &event) != nil {
			return nil, errInvalidParams
		}
		proc.Apply(event.Messages)
		return &EventResult{Applied: len(event.Messages)}, nil
	}
}
