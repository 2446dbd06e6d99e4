package component

import (
	"encoding/json"

	"github.com/wippyai/a2ui-runtime/errors"
)

// Kind identifies a component type. The enumeration is open: producers
// may send types this runtime has never seen, which normalize to
// KindCustom and render as leaves.
type Kind string

const (
	KindRow            Kind = "Row"
	KindColumn         Kind = "Column"
	KindCard           Kind = "Card"
	KindList           Kind = "List"
	KindTabs           Kind = "Tabs"
	KindModal          Kind = "Modal"
	KindButton         Kind = "Button"
	KindText           Kind = "Text"
	KindImage          Kind = "Image"
	KindIcon           Kind = "Icon"
	KindDivider        Kind = "Divider"
	KindTextField      Kind = "TextField"
	KindCheckBox       Kind = "CheckBox"
	KindSwitch         Kind = "Switch"
	KindSlider         Kind = "Slider"
	KindDateTimeInput  Kind = "DateTimeInput"
	KindMultipleChoice Kind = "MultipleChoice"
	KindAudioPlayer    Kind = "AudioPlayer"
	KindVideo          Kind = "Video"
	KindCustom         Kind = "Custom"
)

var knownKinds = map[Kind]bool{
	KindRow: true, KindColumn: true, KindCard: true, KindList: true,
	KindTabs: true, KindModal: true, KindButton: true, KindText: true,
	KindImage: true, KindIcon: true, KindDivider: true, KindTextField: true,
	KindCheckBox: true, KindSwitch: true, KindSlider: true,
	KindDateTimeInput: true, KindMultipleChoice: true,
	KindAudioPlayer: true, KindVideo: true, KindCustom: true,
}

// KindOf normalizes a wire type string. Unknown types map to KindCustom.
func KindOf(s string) Kind {
	if knownKinds[Kind(s)] {
		return Kind(s)
	}
	return KindCustom
}

// Instance is one node of a surface's component tree: a typed,
// identified bag of properties plus child references by id.
type Instance struct {
	ID string
	// Type is the raw wire type; Kind() normalizes it.
	Type string
	// Properties is the type-keyed bag. Shapes depend on Type: Row
	// carries children, Card carries child and/or children, Tabs carries
	// tabItems. Values may be binding descriptors.
	Properties map[string]any
	// Weight is an opaque layout hint.
	Weight any
	// DataContextPath establishes a relative binding scope for this
	// node's descendants. Opaque to the processor, interpreted by
	// renderers.
	DataContextPath string
	// SlotName is an opaque placement hint.
	SlotName string
}

// Kind returns the normalized component kind.
func (inst *Instance) Kind() Kind {
	return KindOf(inst.Type)
}

// Property returns a named property value, or nil.
func (inst *Instance) Property(key string) any {
	if inst.Properties == nil {
		return nil
	}
	return inst.Properties[key]
}

// keys lifted out of the nested component object on decode
var liftedKeys = map[string]bool{
	"type":            true,
	"dataContextPath": true,
	"slotName":        true,
	"weight":          true,
}

// MarshalJSON encodes the instance in the producer wire shape, nesting
// the type and properties under a "component" object. The inverse of
// UnmarshalJSON's nested branch, so instances survive a round-trip
// through the transport.
func (inst *Instance) MarshalJSON() ([]byte, error) {
	comp := make(map[string]any, len(inst.Properties)+3)
	for k, v := range inst.Properties {
		comp[k] = v
	}
	comp["type"] = inst.Type
	if inst.DataContextPath != "" {
		comp["dataContextPath"] = inst.DataContextPath
	}
	if inst.SlotName != "" {
		comp["slotName"] = inst.SlotName
	}

	raw := map[string]any{"id": inst.ID, "component": comp}
	if inst.Weight != nil {
		raw["weight"] = inst.Weight
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes either the producer wire shape, where the type
// and properties nest under a "component" object:
//
//	{"id": "c1", "weight": 1, "component": {"type": "Row", "children": {...}}}
//
// or the flat shape with explicit "type" and "properties" keys.
func (inst *Instance) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.InvalidMessage("decode component instance", err)
	}
	return inst.fromRaw(raw)
}

func (inst *Instance) fromRaw(raw map[string]any) error {
	id, _ := raw["id"].(string)
	if id == "" {
		return errors.New(errors.PhaseParse, errors.KindInvalidMessage).
			Detail("component instance has no id").
			Build()
	}
	inst.ID = id
	inst.Weight = raw["weight"]
	if s, ok := raw["slotName"].(string); ok {
		inst.SlotName = s
	}
	if s, ok := raw["dataContextPath"].(string); ok {
		inst.DataContextPath = s
	}

	if comp, ok := raw["component"].(map[string]any); ok {
		props := make(map[string]any, len(comp))
		for k, v := range comp {
			if liftedKeys[k] {
				continue
			}
			props[k] = v
		}
		inst.Type, _ = comp["type"].(string)
		if s, ok := comp["dataContextPath"].(string); ok {
			inst.DataContextPath = s
		}
		if s, ok := comp["slotName"].(string); ok {
			inst.SlotName = s
		}
		if w, ok := comp["weight"]; ok {
			inst.Weight = w
		}
		inst.Properties = props
		return nil
	}

	inst.Type, _ = raw["type"].(string)
	if props, ok := raw["properties"].(map[string]any); ok {
		inst.Properties = props
	} else {
		inst.Properties = map[string]any{}
	}
	return nil
}

// FromMap builds an Instance from an already-decoded JSON object.
func FromMap(raw map[string]any) (*Instance, error) {
	inst := &Instance{}
	if err := inst.fromRaw(raw); err != nil {
		return nil, err
	}
	return inst, nil
}
