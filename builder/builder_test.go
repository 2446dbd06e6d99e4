package builder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/a2ui-runtime/component"
	"github.com/wippyai/a2ui-runtime/surface"
)

func TestBuild_MessageTriple(t *testing.T) {
	b := New()
	col := b.Column("main")
	col.Add(b.Text("greeting", "Hello", "h3"))

	bundle, err := b.Build(Options{Title: "Demo"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(bundle.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(bundle.Messages))
	}
	if !bundle.Messages[0].IsBegin() {
		t.Error("first message must be beginRendering")
	}
	if bundle.Messages[1].SurfaceUpdate == nil {
		t.Error("second message must be surfaceUpdate")
	}
	if bundle.Messages[2].DataModelUpdate == nil {
		t.Error("third message must be dataModelUpdate")
	}
	if got := bundle.Messages[0].BeginRendering.Root; got != "main" {
		t.Errorf("root = %q, want first container", got)
	}
	if !strings.HasPrefix(bundle.SurfaceID, "surface_") {
		t.Errorf("surface id = %q, want surface_ prefix", bundle.SurfaceID)
	}
	if bundle.Metadata["title"] != "Demo" {
		t.Errorf("metadata title = %v", bundle.Metadata["title"])
	}
}

func TestBuild_GeneratedIDs(t *testing.T) {
	b := New()
	row := b.Row("")
	text := b.Text("", "x", "")
	row.Add(text)

	if !strings.HasPrefix(row.ID(), "row_") || len(row.ID()) != len("row_")+8 {
		t.Errorf("row id = %q, want row_<8 hex>", row.ID())
	}
	if !strings.HasPrefix(text.ID(), "text_") {
		t.Errorf("text id = %q", text.ID())
	}
}

func TestBuild_ButtonWrapsLabel(t *testing.T) {
	b := New()
	col := b.Column("c")
	col.Add(b.Button("go", "Go!", "launch"))

	bundle, err := b.Build(Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	byID := indexComponents(bundle)
	btn, ok := byID["go"]
	if !ok {
		t.Fatal("button missing from surfaceUpdate")
	}
	if diff := cmp.Diff([]string{"go_label"}, component.ChildIDs(btn)); diff != "" {
		t.Errorf("button child mismatch (-want +got):\n%s", diff)
	}
	label, ok := byID["go_label"]
	if !ok {
		t.Fatal("label child missing from surfaceUpdate")
	}
	if got := label.Property("text").(map[string]any)["literalString"]; got != "Go!" {
		t.Errorf("label text = %v", got)
	}
}

func TestBuild_InputsSeedDataModel(t *testing.T) {
	b := New()
	col := b.Column("form")
	col.Add(b.TextField("email", "Email", "", "email"))
	col.Add(b.CheckBox("tos", "Accept terms", true))

	bundle, err := b.Build(Options{})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	contents := bundle.Messages[2].DataModelUpdate.Contents
	want := map[string]any{"/email": "", "/tos": true}
	got := map[string]any{}
	for _, kv := range contents {
		got[kv.Key] = kv.Value
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("seeded data model mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RoundTripThroughProcessor(t *testing.T) {
	bundle, err := Form("reg", "Sign up", []FormField{
		{ID: "username", Label: "Username"},
		{ID: "email", Label: "Email", Type: "email"},
	}, "submitForm")
	if err != nil {
		t.Fatalf("Form error: %v", err)
	}

	proc := surface.NewProcessor()
	proc.Apply(bundle.Messages)

	s, ok := proc.Surface(bundle.SurfaceID)
	if !ok {
		t.Fatal("surface not created from built bundle")
	}
	if s.State() != surface.StateLive {
		t.Errorf("state = %v, want live", s.State())
	}
	if s.RootID() != "reg" {
		t.Errorf("root = %q, want reg", s.RootID())
	}

	root, _ := s.Component("reg")
	children := component.ChildIDs(root)
	want := []string{"reg_title", "username", "email", "reg_submit"}
	if diff := cmp.Diff(want, children); diff != "" {
		t.Errorf("form children mismatch (-want +got):\n%s", diff)
	}

	// seeded value binding resolves through the applied data model
	field, _ := s.Component("username")
	props := s.RenderProps(field)
	if props["value"] != "" {
		t.Errorf("username value = %v, want seeded empty string", props["value"])
	}
}

func TestCardGrid(t *testing.T) {
	bundle, err := CardGrid("stats", "Stats", []CardDef{
		{Title: "Users", Content: "active this week", Value: 1280},
		{Title: "Errors", Content: "last 24h"},
	})
	if err != nil {
		t.Fatalf("CardGrid error: %v", err)
	}

	proc := surface.NewProcessor()
	proc.Apply(bundle.Messages)

	s, _ := proc.Surface(bundle.SurfaceID)
	row, _ := s.Component("stats")
	cards := component.ChildIDs(row)
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}

	// first card: title + content + caption value
	first, _ := s.Component(cards[0])
	if got := len(component.ChildIDs(first)); got != 3 {
		t.Errorf("first card children = %d, want 3", got)
	}
	// second card has no value caption
	second, _ := s.Component(cards[1])
	if got := len(component.ChildIDs(second)); got != 2 {
		t.Errorf("second card children = %d, want 2", got)
	}
}

func indexComponents(bundle *Bundle) map[string]*component.Instance {
	byID := map[string]*component.Instance{}
	for _, inst := range bundle.Messages[1].SurfaceUpdate.Components {
		byID[inst.ID] = inst
	}
	return byID
}
