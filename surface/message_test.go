package surface

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/a2ui-runtime/component"
)

// payload in the shape the producer actually emits: the three-message
// bundle with component objects nested under "component".
const producerPayload = `[
	{"beginRendering": {"surfaceId": "surface_1a2b3c4d", "root": "form", "styles": {"accent": "#7D56F4"}}},
	{"surfaceUpdate": {"surfaceId": "surface_1a2b3c4d", "components": [
		{"id": "form", "component": {"type": "Column", "children": {"explicitList": ["title", "name", "submit"]}}},
		{"id": "title", "component": {"type": "Text", "text": {"literalString": "Sign up"}, "usageHint": "h3"}},
		{"id": "name", "component": {"type": "TextField", "label": "Name", "value": {"path": "/name"}}},
		{"id": "submit", "component": {"type": "Button", "child": "submit_label", "action": {"name": "submitForm", "context": []}}},
		{"id": "submit_label", "component": {"type": "Text", "text": {"literalString": "Submit"}}}
	]}},
	{"dataModelUpdate": {"surfaceId": "surface_1a2b3c4d", "contents": [{"key": "name", "value": ""}]}}
]`

func TestDecodeMessages_ProducerBundle(t *testing.T) {
	msgs, err := DecodeMessages([]byte(producerPayload))
	if err != nil {
		t.Fatalf("DecodeMessages error: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("decoded %d messages, want 3", len(msgs))
	}
	for i, m := range msgs {
		if !m.Valid() {
			t.Errorf("message %d not a single-variant message", i)
		}
		if m.SurfaceID() != "surface_1a2b3c4d" {
			t.Errorf("message %d surface = %q", i, m.SurfaceID())
		}
	}
	if !msgs[0].IsBegin() {
		t.Error("first message should be beginRendering")
	}
	if len(msgs[1].SurfaceUpdate.Components) != 5 {
		t.Errorf("components = %d, want 5", len(msgs[1].SurfaceUpdate.Components))
	}
}

func TestDecodeMessages_Invalid(t *testing.T) {
	if _, err := DecodeMessages([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("expected error for non-array payload")
	}
	if _, err := DecodeMessages([]byte(`[{`)); err == nil {
		t.Error("expected error for truncated payload")
	}
}

func TestApply_ProducerBundleEndToEnd(t *testing.T) {
	msgs, err := DecodeMessages([]byte(producerPayload))
	if err != nil {
		t.Fatalf("DecodeMessages error: %v", err)
	}

	proc := NewProcessor()
	proc.Apply(msgs)

	s, ok := proc.Surface("surface_1a2b3c4d")
	if !ok {
		t.Fatal("surface not created")
	}

	root, ok := s.Component(s.RootID())
	if !ok {
		t.Fatalf("root %q missing from registry", s.RootID())
	}
	if diff := cmp.Diff([]string{"title", "name", "submit"}, component.ChildIDs(root)); diff != "" {
		t.Errorf("root children mismatch (-want +got):\n%s", diff)
	}

	// the button resolves its label child through the singleton accessor
	btn, _ := s.Component("submit")
	if diff := cmp.Diff([]string{"submit_label"}, component.ChildIDs(btn)); diff != "" {
		t.Errorf("button children mismatch (-want +got):\n%s", diff)
	}

	// the text field's value binding points into the seeded data model
	field, _ := s.Component("name")
	props := s.RenderProps(field)
	if props["value"] != "" {
		t.Errorf("value = %v, want seeded empty string", props["value"])
	}

	// simulate typing: the widget writes back through the binding
	if err := s.UpdateBinding("/name", "Ann"); err != nil {
		t.Fatalf("UpdateBinding error: %v", err)
	}
	props = s.RenderProps(field)
	if props["value"] != "Ann" {
		t.Errorf("value after edit = %v, want Ann", props["value"])
	}
}

func TestSurface_DanglingChildTolerated(t *testing.T) {
	proc := NewProcessor()
	proc.Apply([]Message{
		beginMsg("s1", "c1"),
		updateMsg("s1", &component.Instance{
			ID: "c1", Type: "Row",
			Properties: map[string]any{"children": []any{"ghost"}},
		}),
	})

	s, _ := proc.Surface("s1")
	root, _ := s.Component("c1")

	// the reference dangles until a later surfaceUpdate delivers it;
	// walking it must not panic and the slot simply renders nothing
	for _, id := range component.ChildIDs(root) {
		if _, ok := s.Component(id); ok {
			t.Errorf("unexpected component %q", id)
		}
	}
}
