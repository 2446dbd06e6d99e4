package surface

import (
	"github.com/wippyai/a2ui-runtime/binding"
	"github.com/wippyai/a2ui-runtime/component"
)

// State is a surface's lifecycle state. Unseen surfaces have no Surface
// value at all; Live is the terminal steady state.
type State int

const (
	// StateInitializing: the surface exists but no beginRendering has
	// supplied a root yet. Non-begin messages are queued.
	StateInitializing State = iota
	// StateLive: the root is set and messages apply directly.
	StateLive
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateLive:
		return "live"
	default:
		return "unknown"
	}
}

// Surface is the independent unit of UI state: a root reference, a
// component registry, and a data model, all exclusively owned.
type Surface struct {
	id         string
	rootID     string
	state      State
	components map[string]*component.Instance
	dataModel  map[string]any
	styles     map[string]any

	// messages queued while initializing, flushed on beginRendering
	pending []Message
}

func newSurface(id string) *Surface {
	return &Surface{
		id:         id,
		state:      StateInitializing,
		components: make(map[string]*component.Instance),
		dataModel:  make(map[string]any),
		styles:     make(map[string]any),
	}
}

// ID returns the surface id.
func (s *Surface) ID() string { return s.id }

// RootID returns the root component id, or "" while initializing.
func (s *Surface) RootID() string { return s.rootID }

// State returns the surface's lifecycle state.
func (s *Surface) State() State { return s.state }

// Component returns the instance registered under id.
func (s *Surface) Component(id string) (*component.Instance, bool) {
	inst, ok := s.components[id]
	return inst, ok
}

// Components returns all registered instances in arbitrary order.
func (s *Surface) Components() []*component.Instance {
	result := make([]*component.Instance, 0, len(s.components))
	for _, inst := range s.components {
		result = append(result, inst)
	}
	return result
}

// ComponentCount returns the registry size.
func (s *Surface) ComponentCount() int { return len(s.components) }

// DataModel returns the surface's live data model tree. The caller
// shares the surface's single-writer discipline.
func (s *Surface) DataModel() map[string]any { return s.dataModel }

// Styles returns the accumulated display styles. Opaque to the core.
func (s *Surface) Styles() map[string]any { return s.styles }

// ResolveBinding evaluates a value descriptor against this surface's
// data model. Dangling paths resolve to nil, never an error.
func (s *Surface) ResolveBinding(descriptor any) any {
	return binding.Resolve(descriptor, s.dataModel)
}

// RenderProps resolves inst's properties against this surface's data
// model and applies its kind's prop transform.
func (s *Surface) RenderProps(inst *component.Instance) map[string]any {
	return component.RenderProps(inst, s.dataModel)
}

// UpdateBinding writes value at pointer inside the data model. Input
// widgets use this to push edits back. The error is structured; the
// caller decides whether to log-and-continue or escalate.
func (s *Surface) UpdateBinding(pointer string, value any) error {
	return binding.Set(s.dataModel, pointer, value)
}
