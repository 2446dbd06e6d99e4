package transport

import (
	"context"
	"net"
	"testing"
	"time"

	a2ui "github.com/wippyai/a2ui-runtime"
	"github.com/wippyai/a2ui-runtime/builder"
	"github.com/wippyai/a2ui-runtime/surface"
)

func pipePair(t *testing.T, ctx context.Context, proc *surface.Processor, onAction ActionHandler) (*Conn, *Client) {
	t.Helper()
	clientEnd, producerEnd := net.Pipe()

	conn := Serve(ctx, clientEnd, proc)
	client := NewClient(ctx, producerEnd, onAction)
	t.Cleanup(func() {
		conn.Close()
		client.Close()
	})
	return conn, client
}

func TestCallEvent_AppliesToProcessor(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proc := surface.NewProcessor()
	_, client := pipePair(t, ctx, proc, nil)

	bundle, err := builder.Form("reg", "Sign up", []builder.FormField{
		{ID: "username", Label: "Username"},
	}, "submitForm")
	if err != nil {
		t.Fatalf("Form error: %v", err)
	}

	result, err := client.CallEvent(ctx, bundle.Messages, bundle.Metadata)
	if err != nil {
		t.Fatalf("CallEvent error: %v", err)
	}
	if result.Applied != 3 {
		t.Errorf("applied = %d, want 3", result.Applied)
	}

	s, ok := proc.Surface(bundle.SurfaceID)
	if !ok {
		t.Fatal("surface not created on the serving end")
	}
	if s.State() != surface.StateLive {
		t.Errorf("state = %v, want live", s.State())
	}
	if s.RootID() != "reg" {
		t.Errorf("root = %q, want reg", s.RootID())
	}
}

func TestSendEvent_Notification(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proc := surface.NewProcessor()
	_, client := pipePair(t, ctx, proc, nil)

	msgs := []surface.Message{
		{BeginRendering: &surface.BeginRendering{SurfaceID: "s1", Root: "c1"}},
	}
	if err := client.SendEvent(ctx, msgs, nil); err != nil {
		t.Fatalf("SendEvent error: %v", err)
	}

	// notifications carry no ack; poll for the applied state
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := proc.Surface("s1"); ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("notification never applied")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDispatch_ForwardsUserAction(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	actions := make(chan a2ui.UserAction, 1)
	proc := surface.NewProcessor()
	pipePair(t, ctx, proc, func(action a2ui.UserAction) {
		actions <- action
	})

	proc.DispatchUserAction("s1", "submit", "submitForm", map[string]any{"form": "reg"})

	select {
	case got := <-actions:
		if got.Type != a2ui.UserActionType {
			t.Errorf("type = %q, want %q", got.Type, a2ui.UserActionType)
		}
		if got.SurfaceID != "s1" || got.ComponentID != "submit" || got.ActionName != "submitForm" {
			t.Errorf("action = %+v", got)
		}
		if got.Context["form"] != "reg" {
			t.Errorf("context = %v", got.Context)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("user action never reached the producer end")
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	proc := surface.NewProcessor()
	_, client := pipePair(t, ctx, proc, nil)

	var result any
	err := client.conn.Call(ctx, "a2ui/unknown", map[string]any{}, &result)
	if err == nil {
		t.Fatal("expected method-not-found error")
	}
}
