package a2ui

// UserAction is the outbound event produced when the user interacts with
// a rendered component. It is delivered to the transport, never applied
// back to surface state.
type UserAction struct {
	Type        string         `json:"type"`
	SurfaceID   string         `json:"surfaceId"`
	ComponentID string         `json:"componentId"`
	ActionName  string         `json:"actionName"`
	Context     map[string]any `json:"context,omitempty"`
}

// UserActionType is the wire discriminator for UserAction events.
const UserActionType = "a2ui_user_action"

// ActionSink receives user actions for outward delivery
type ActionSink interface {
	SendAction(action UserAction) error
}

// ActionSinkFunc adapts a function to the ActionSink interface
type ActionSinkFunc func(action UserAction) error

func (f ActionSinkFunc) SendAction(action UserAction) error { return f(action) }
