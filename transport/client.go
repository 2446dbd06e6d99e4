package transport

import (
	"context"
	"encoding/json"
	"io"

	"github.com/sourcegraph/jsonrpc2"

	a2ui "github.com/wippyai/a2ui-runtime"
	"github.com/wippyai/a2ui-runtime/surface"
)

// ActionHandler receives user actions arriving from the remote end.
type ActionHandler func(action a2ui.UserAction)

// Client is the producer-side end of an a2ui connection: it pushes
// server events and observes user actions.
type Client struct {
	conn     *jsonrpc2.Conn
	onAction ActionHandler
}

// NewClient attaches a producer to stream. onAction may be nil when
// inbound actions are not of interest.
func NewClient(ctx context.Context, stream io.ReadWriteCloser, onAction ActionHandler) *Client {
	c := &Client{onAction: onAction}
	c.conn = jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		routingHandler(map[string]method{
			MethodUserAction: c.userActionMethod,
		}))
	return c
}

func (c *Client) userActionMethod(_ context.Context, _ *jsonrpc2.Conn, params json.RawMessage) (any, error) {
	var action a2ui.UserAction
	if json.Unmarshal(params, &action) != nil {
		return nil, errInvalidParams
	}
	if c.onAction != nil {
		c.onAction(action)
	}
	return nil, nil
}

// SendEvent delivers a message batch as an a2ui/serverEvent
// notification.
func (c *Client) SendEvent(ctx context.Context, msgs []surface.Message, metadata map[string]any) error {
	return c.conn.Notify(ctx, MethodServerEvent, &ServerEvent{
		Messages: msgs,
		Metadata: metadata,
	})
}

// CallEvent delivers a message batch as a request and waits for the
// applied acknowledgement.
func (c *Client) CallEvent(ctx context.Context, msgs []surface.Message, metadata map[string]any) (*EventResult, error) {
	var result EventResult
	err := c.conn.Call(ctx, MethodServerEvent, &ServerEvent{
		Messages: msgs,
		Metadata: metadata,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
