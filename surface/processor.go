package surface

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	a2ui "github.com/wippyai/a2ui-runtime"
	"github.com/wippyai/a2ui-runtime/binding"
	"github.com/wippyai/a2ui-runtime/errors"
)

// maxPending bounds the per-surface queue of messages that arrive
// before beginRendering. On overflow the oldest message is dropped.
const maxPending = 64

// Processor owns the registry of named surfaces and applies inbound
// protocol messages to them.
type Processor struct {
	mu       sync.RWMutex
	surfaces map[string]*Surface
	sink     a2ui.ActionSink
}

// NewProcessor creates an empty processor.
func NewProcessor() *Processor {
	return &Processor{
		surfaces: make(map[string]*Surface),
	}
}

// SetActionSink installs the outbound delivery for user actions.
func (p *Processor) SetActionSink(sink a2ui.ActionSink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink = sink
}

// Surface returns the surface registered under id.
func (p *Processor) Surface(id string) (*Surface, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.surfaces[id]
	return s, ok
}

// SurfaceIDs returns the ids of all known surfaces in arbitrary order.
func (p *Processor) SurfaceIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.surfaces))
	for id := range p.surfaces {
		ids = append(ids, id)
	}
	return ids
}

// DestroySurface removes a surface and its queued messages. Teardown is
// an explicit host operation; no protocol message triggers it.
func (p *Processor) DestroySurface(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.surfaces[id]; !ok {
		return false
	}
	delete(p.surfaces, id)
	return true
}

// ensure returns the surface for id, creating it in the initializing
// state on first reference.
func (p *Processor) ensure(id string) *Surface {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.surfaces[id]
	if !ok {
		s = newSurface(id)
		p.surfaces[id] = s
	}
	return s
}

// Apply processes messages strictly in order. Each message is
// dispatched to its variant's handler on the addressed surface;
// processing one surface's messages never affects another. Failures
// are recovered locally and logged — Apply never panics and never
// surfaces an error for a malformed message, favoring partial
// rendering over failing the stream.
func (p *Processor) Apply(msgs []Message) {
	for _, msg := range msgs {
		p.applyOne(msg)
	}
}

func (p *Processor) applyOne(msg Message) {
	if !msg.Valid() {
		Logger().Warn("dropping protocol message without exactly one variant")
		return
	}
	if msg.SurfaceID() == "" {
		Logger().Warn("dropping protocol message without surface id")
		return
	}

	s := p.ensure(msg.SurfaceID())

	if msg.IsBegin() {
		p.applyBegin(s, msg.BeginRendering)
		return
	}

	// Non-begin messages wait for a root: an update referencing a
	// surface nobody began yet sits in a bounded queue instead of
	// mutating a rootless surface.
	if s.state == StateInitializing {
		p.enqueue(s, msg)
		return
	}

	p.applyLive(s, msg)
}

func (p *Processor) applyBegin(s *Surface, msg *BeginRendering) {
	s.rootID = msg.Root
	for k, v := range msg.Styles {
		s.styles[k] = v
	}

	if s.state == StateInitializing {
		s.state = StateLive
		pending := s.pending
		s.pending = nil
		for _, queued := range pending {
			p.applyLive(s, queued)
		}
		Logger().Debug("surface live",
			zap.String("surface", s.id),
			zap.String("root", s.rootID),
			zap.Int("replayed", len(pending)))
	}
}

func (p *Processor) enqueue(s *Surface, msg Message) {
	if len(s.pending) >= maxPending {
		s.pending = s.pending[1:]
		Logger().Warn("pending queue overflow",
			zap.String("surface", s.id),
			zap.Error(errors.QueueOverflow(s.id, 1)))
	}
	s.pending = append(s.pending, msg)
}

func (p *Processor) applyLive(s *Surface, msg Message) {
	switch {
	case msg.SurfaceUpdate != nil:
		p.applySurfaceUpdate(s, msg.SurfaceUpdate)
	case msg.DataModelUpdate != nil:
		p.applyDataModelUpdate(s, msg.DataModelUpdate)
	}
}

func (p *Processor) applySurfaceUpdate(s *Surface, msg *SurfaceUpdate) {
	for _, inst := range msg.Components {
		if inst == nil || inst.ID == "" {
			Logger().Warn("skipping component without id",
				zap.String("surface", s.id))
			continue
		}
		// whole-instance upsert: a partial update must resend the
		// full instance
		s.components[inst.ID] = inst
	}
}

func (p *Processor) applyDataModelUpdate(s *Surface, msg *DataModelUpdate) {
	for _, kv := range msg.Contents {
		if kv.Key == "" {
			Logger().Warn("skipping data model entry without key",
				zap.String("surface", s.id))
			continue
		}
		pointer := kv.Key
		if !strings.HasPrefix(pointer, "/") {
			pointer = "/" + pointer
		}
		if err := binding.Set(s.dataModel, pointer, kv.Value); err != nil {
			Logger().Warn("data model write failed",
				zap.String("surface", s.id),
				zap.String("pointer", pointer),
				zap.Error(err))
		}
	}
}

// DispatchUserAction packages a user interaction as the outbound event,
// hands it to the registered sink, and returns it. Surface state is
// never mutated by a dispatch.
func (p *Processor) DispatchUserAction(surfaceID, componentID, actionName string, context map[string]any) a2ui.UserAction {
	action := a2ui.UserAction{
		Type:        a2ui.UserActionType,
		SurfaceID:   surfaceID,
		ComponentID: componentID,
		ActionName:  actionName,
		Context:     context,
	}

	p.mu.RLock()
	sink := p.sink
	p.mu.RUnlock()

	if sink != nil {
		if err := sink.SendAction(action); err != nil {
			Logger().Warn("action sink delivery failed",
				zap.String("surface", surfaceID),
				zap.String("component", componentID),
				zap.String("action", actionName),
				zap.Error(err))
		}
	}
	return action
}
