package builder

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/wippyai/a2ui-runtime/component"
	"github.com/wippyai/a2ui-runtime/surface"
)

// Component is one node under construction. Children are held by
// reference here and flattened to id lists in the wire shape on Build.
type Component struct {
	id          string
	typ         component.Kind
	props       map[string]any
	children    []*Component
	dataContext string
}

// ID returns the component's id.
func (c *Component) ID() string { return c.id }

// Add appends child components and returns the receiver for chaining.
func (c *Component) Add(children ...*Component) *Component {
	c.children = append(c.children, children...)
	return c
}

// DataContext sets the binding scope for this node's descendants.
func (c *Component) DataContext(path string) *Component {
	c.dataContext = path
	return c
}

// Prop sets an extra property value and returns the receiver.
func (c *Component) Prop(key string, value any) *Component {
	c.props[key] = value
	return c
}

// toMap produces the wire shape with type and properties nested under
// a "component" object.
func (c *Component) toMap() map[string]any {
	comp := make(map[string]any, len(c.props)+3)
	comp["type"] = string(c.typ)
	for k, v := range c.props {
		comp[k] = v
	}

	if len(c.children) > 0 {
		switch c.typ {
		case component.KindRow, component.KindColumn, component.KindList:
			comp["children"] = map[string]any{"explicitList": c.childIDs()}
		case component.KindCard:
			if len(c.children) == 1 {
				comp["child"] = c.children[0].id
			} else {
				comp["children"] = map[string]any{"explicitList": c.childIDs()}
			}
		case component.KindButton:
			comp["child"] = c.children[0].id
		}
	}
	if c.dataContext != "" {
		comp["dataContextPath"] = c.dataContext
	}

	return map[string]any{"id": c.id, "component": comp}
}

func (c *Component) childIDs() []any {
	ids := make([]any, len(c.children))
	for i, child := range c.children {
		ids[i] = child.id
	}
	return ids
}

// collect appends this node and its descendants to the flat list.
func (c *Component) collect(out *[]map[string]any) {
	*out = append(*out, c.toMap())
	for _, child := range c.children {
		child.collect(out)
	}
}

// Builder constructs surfaces on the producer side: a flat component
// adjacency list, an initial data model, and the three-message bundle
// a client applies.
type Builder struct {
	components []*Component
	rootID     string
	dataModel  map[string]any
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{dataModel: make(map[string]any)}
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (b *Builder) add(id, prefix string, kind component.Kind, props map[string]any) *Component {
	if id == "" {
		id = prefix + "_" + shortID()
	}
	c := &Component{id: id, typ: kind, props: props}
	b.components = append(b.components, c)
	return c
}

// registerRoot makes the first container the surface root.
func (b *Builder) registerRoot(id string) {
	if b.rootID == "" {
		b.rootID = id
	}
}

// Row creates a Row layout component. An empty id is generated.
func (b *Builder) Row(id string) *Component {
	c := b.add(id, "row", component.KindRow, map[string]any{
		"distribution": "start",
		"alignment":    "center",
		"spacing":      16,
	})
	b.registerRoot(c.id)
	return c
}

// Column creates a Column layout component.
func (b *Builder) Column(id string) *Component {
	c := b.add(id, "col", component.KindColumn, map[string]any{
		"span":   24,
		"offset": 0,
	})
	b.registerRoot(c.id)
	return c
}

// Card creates a Card container component.
func (b *Builder) Card(id string) *Component {
	c := b.add(id, "card", component.KindCard, map[string]any{
		"elevation": "always",
	})
	b.registerRoot(c.id)
	return c
}

// Text creates a Text display component. usageHint defaults to "body".
func (b *Builder) Text(id, text, usageHint string) *Component {
	if usageHint == "" {
		usageHint = "body"
	}
	return b.add(id, "text", component.KindText, map[string]any{
		"text":      map[string]any{"literalString": text},
		"usageHint": usageHint,
	})
}

// Button creates a Button with an auto-created Text label child.
func (b *Builder) Button(id, label, action string) *Component {
	if id == "" {
		id = "btn_" + shortID()
	}
	labelChild := b.Text(id+"_label", label, "")
	c := b.add(id, "btn", component.KindButton, map[string]any{
		"action":  map[string]any{"name": action, "context": []any{}},
		"variant": "default",
	})
	c.Add(labelChild)
	return c
}

// TextField creates a TextField input bound to /<id> in the data
// model. fieldType defaults to "shortText".
func (b *Builder) TextField(id, label, placeholder, fieldType string) *Component {
	if fieldType == "" {
		fieldType = "shortText"
	}
	if id == "" {
		id = "field_" + shortID()
	}
	b.dataModel["/"+id] = ""
	return b.add(id, "field", component.KindTextField, map[string]any{
		"label":       label,
		"placeholder": placeholder,
		"type":        fieldType,
		"value":       map[string]any{"path": "/" + id},
	})
}

// CheckBox creates a CheckBox input seeded with value under /<id>.
func (b *Builder) CheckBox(id, label string, value bool) *Component {
	if id == "" {
		id = "chk_" + shortID()
	}
	b.dataModel["/"+id] = value
	return b.add(id, "chk", component.KindCheckBox, map[string]any{
		"label": label,
		"value": map[string]any{"literalBoolean": value},
	})
}

// Divider creates a Divider component.
func (b *Builder) Divider(id string) *Component {
	return b.add(id, "div", component.KindDivider, map[string]any{
		"axis":      "horizontal",
		"thickness": 1,
	})
}

// Seed writes an initial data model value. Keys may be bare top-level
// names or full pointer paths.
func (b *Builder) Seed(key string, value any) *Builder {
	b.dataModel[key] = value
	return b
}

// Options configure Build.
type Options struct {
	SurfaceID   string // generated as surface_<8 hex> when empty
	RootID      string // defaults to the first container, then the first component
	Title       string
	Description string
	SurfaceType string // "form", "dashboard", "visualization", "custom"
	Layout      string // "vertical", "horizontal", "grid"
}

// Bundle is a built surface: the ordered message triple plus the
// display metadata a transport attaches alongside.
type Bundle struct {
	SurfaceID string
	Messages  []surface.Message
	Metadata  map[string]any
}

// Build flattens the component tree and produces the beginRendering,
// surfaceUpdate, dataModelUpdate message triple.
func (b *Builder) Build(opts Options) (*Bundle, error) {
	surfaceID := opts.SurfaceID
	if surfaceID == "" {
		surfaceID = "surface_" + shortID()
	}
	rootID := opts.RootID
	if rootID == "" {
		rootID = b.rootID
	}
	if rootID == "" && len(b.components) > 0 {
		rootID = b.components[0].id
	}
	if opts.SurfaceType == "" {
		opts.SurfaceType = "custom"
	}
	if opts.Layout == "" {
		opts.Layout = "vertical"
	}

	var flat []map[string]any
	for _, c := range b.components {
		if isChild(b.components, c) {
			continue
		}
		c.collect(&flat)
	}

	instances := make([]*component.Instance, 0, len(flat))
	for _, raw := range flat {
		inst, err := component.FromMap(raw)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}

	contents := make([]surface.KeyValue, 0, len(b.dataModel))
	keys := make([]string, 0, len(b.dataModel))
	for k := range b.dataModel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		contents = append(contents, surface.KeyValue{Key: k, Value: b.dataModel[k]})
	}

	return &Bundle{
		SurfaceID: surfaceID,
		Messages: []surface.Message{
			{BeginRendering: &surface.BeginRendering{
				SurfaceID: surfaceID,
				Root:      rootID,
				Styles:    map[string]any{},
			}},
			{SurfaceUpdate: &surface.SurfaceUpdate{
				SurfaceID:  surfaceID,
				Components: instances,
			}},
			{DataModelUpdate: &surface.DataModelUpdate{
				SurfaceID: surfaceID,
				Contents:  contents,
			}},
		},
		Metadata: map[string]any{
			"title":       opts.Title,
			"description": opts.Description,
			"surfaceType": opts.SurfaceType,
			"interactive": true,
			"layout":      opts.Layout,
		},
	}, nil
}

// isChild reports whether c was parented under another builder node,
// so collect starts only from roots.
func isChild(all []*Component, c *Component) bool {
	for _, other := range all {
		for _, child := range other.children {
			if child == c {
				return true
			}
		}
	}
	return false
}
