package binding

import "testing"

func TestResolve_Literals(t *testing.T) {
	model := map[string]any{"user": map[string]any{"name": "Ann"}}

	if got := Resolve(map[string]any{"literalString": "hi"}, model); got != "hi" {
		t.Errorf("literalString = %v, want hi", got)
	}
	if got := Resolve(map[string]any{"literalNumber": 3.5}, model); got != 3.5 {
		t.Errorf("literalNumber = %v, want 3.5", got)
	}
	if got := Resolve(map[string]any{"literalBoolean": true}, model); got != true {
		t.Errorf("literalBoolean = %v, want true", got)
	}
}

func TestResolve_LiteralWinsOverPath(t *testing.T) {
	model := map[string]any{"name": "from-model"}
	desc := map[string]any{"literalString": "from-literal", "path": "/name"}

	if got := Resolve(desc, model); got != "from-literal" {
		t.Errorf("Resolve = %v, want literal to take priority", got)
	}
}

func TestResolve_Path(t *testing.T) {
	model := map[string]any{"user": map[string]any{"name": "Ann"}}

	if got := Resolve(map[string]any{"path": "/user/name"}, model); got != "Ann" {
		t.Errorf("path = %v, want Ann", got)
	}
	if got := Resolve(map[string]any{"path": "/user/missing"}, model); got != nil {
		t.Errorf("dangling path = %v, want nil", got)
	}
}

func TestResolve_NonDescriptorPassesThrough(t *testing.T) {
	model := map[string]any{}

	if got := Resolve("plain", model); got != "plain" {
		t.Errorf("plain string = %v, want unchanged", got)
	}
	if got := Resolve(42, model); got != 42 {
		t.Errorf("plain number = %v, want unchanged", got)
	}

	// unknown descriptor shape falls through unchanged
	unknown := map[string]any{"futureField": 1}
	got, ok := Resolve(unknown, model).(map[string]any)
	if !ok || got["futureField"] != 1 {
		t.Errorf("unknown shape = %v, want descriptor unchanged", got)
	}
}

func TestIsDescriptor(t *testing.T) {
	if !IsDescriptor(map[string]any{"path": "/x"}) {
		t.Error("path map should be a descriptor")
	}
	if !IsDescriptor(map[string]any{"literalBoolean": false}) {
		t.Error("literal map should be a descriptor")
	}
	if IsDescriptor(map[string]any{"children": []any{}}) {
		t.Error("property bag should not be a descriptor")
	}
	if IsDescriptor("text") {
		t.Error("scalar should not be a descriptor")
	}
}
