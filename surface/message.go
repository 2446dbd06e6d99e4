package surface

import (
	"encoding/json"

	"github.com/wippyai/a2ui-runtime/component"
	"github.com/wippyai/a2ui-runtime/errors"
)

// BeginRendering sets (or replaces) a surface's root component and
// merges display styles into its metadata.
type BeginRendering struct {
	SurfaceID string         `json:"surfaceId"`
	Root      string         `json:"root"`
	Styles    map[string]any `json:"styles,omitempty"`
}

// SurfaceUpdate upserts component instances into a surface's registry.
// Instances replace wholesale by id; components absent from the list
// are left untouched.
type SurfaceUpdate struct {
	SurfaceID  string                `json:"surfaceId"`
	Components []*component.Instance `json:"components"`
}

// KeyValue is one data model entry of a DataModelUpdate.
type KeyValue struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// DataModelUpdate writes keyed values into a surface's data model. A
// key is a top-level name unless it already carries a leading slash, in
// which case it is used as a full pointer path (producers send deep
// updates that way).
type DataModelUpdate struct {
	SurfaceID string     `json:"surfaceId"`
	Contents  []KeyValue `json:"contents"`
}

// Message is one inbound protocol message: a discriminated variant with
// exactly one field populated.
type Message struct {
	BeginRendering  *BeginRendering  `json:"beginRendering,omitempty"`
	SurfaceUpdate   *SurfaceUpdate   `json:"surfaceUpdate,omitempty"`
	DataModelUpdate *DataModelUpdate `json:"dataModelUpdate,omitempty"`
}

// SurfaceID returns the surface the message addresses, or "".
func (m Message) SurfaceID() string {
	switch {
	case m.BeginRendering != nil:
		return m.BeginRendering.SurfaceID
	case m.SurfaceUpdate != nil:
		return m.SurfaceUpdate.SurfaceID
	case m.DataModelUpdate != nil:
		return m.DataModelUpdate.SurfaceID
	}
	return ""
}

// IsBegin reports whether the message is a beginRendering variant.
func (m Message) IsBegin() bool {
	return m.BeginRendering != nil
}

// Valid reports whether exactly one variant is populated.
func (m Message) Valid() bool {
	n := 0
	if m.BeginRendering != nil {
		n++
	}
	if m.SurfaceUpdate != nil {
		n++
	}
	if m.DataModelUpdate != nil {
		n++
	}
	return n == 1
}

// DecodeMessages parses a JSON array of protocol messages.
func DecodeMessages(data []byte) ([]Message, error) {
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, errors.InvalidMessage("decode message list", err)
	}
	return msgs, nil
}
