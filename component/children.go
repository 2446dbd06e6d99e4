package component

import "sync"

// ChildrenFunc returns the ordered child component ids for an instance.
type ChildrenFunc func(inst *Instance) []string

var (
	childrenMu  sync.RWMutex
	childrenReg = map[Kind]ChildrenFunc{}
)

// RegisterChildren installs the children accessor for a kind, replacing
// any previous entry. Adding a component kind is a table insertion, not
// a code edit across call sites.
func RegisterChildren(kind Kind, fn ChildrenFunc) {
	childrenMu.Lock()
	defer childrenMu.Unlock()
	childrenReg[kind] = fn
}

// ChildIDs returns the ordered child ids of inst according to its
// kind's registered accessor. Kinds without an accessor are leaves.
func ChildIDs(inst *Instance) []string {
	if inst == nil {
		return nil
	}
	childrenMu.RLock()
	fn := childrenReg[inst.Kind()]
	childrenMu.RUnlock()
	if fn == nil {
		return nil
	}
	return fn(inst)
}

// containerKinds is the fixed classification used for tree walking,
// independent of whether children happen to be populated.
var containerKinds = map[Kind]bool{
	KindRow: true, KindColumn: true, KindList: true,
	KindCard: true, KindTabs: true, KindModal: true,
}

// IsContainer reports whether kind can carry children.
func IsContainer(kind Kind) bool {
	return containerKinds[kind]
}

func init() {
	listChildren := func(inst *Instance) []string {
		return idList(inst.Property("children"))
	}
	RegisterChildren(KindRow, listChildren)
	RegisterChildren(KindColumn, listChildren)
	RegisterChildren(KindList, listChildren)

	RegisterChildren(KindCard, func(inst *Instance) []string {
		if id, ok := childID(inst.Property("child")); ok {
			return []string{id}
		}
		return idList(inst.Property("children"))
	})

	RegisterChildren(KindButton, func(inst *Instance) []string {
		if id, ok := childID(inst.Property("child")); ok {
			return []string{id}
		}
		return nil
	})

	RegisterChildren(KindTabs, func(inst *Instance) []string {
		items, ok := inst.Property("tabItems").([]any)
		if !ok {
			return nil
		}
		var ids []string
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if id, ok := childID(entry["child"]); ok {
				ids = append(ids, id)
			}
		}
		return ids
	})

	RegisterChildren(KindModal, func(inst *Instance) []string {
		var ids []string
		if id, ok := childID(inst.Property("entryPointChild")); ok {
			ids = append(ids, id)
		}
		if id, ok := childID(inst.Property("contentChild")); ok {
			ids = append(ids, id)
		}
		return ids
	})
}

// idList extracts an ordered id list from a children property. The
// producer wraps the list as {"explicitList": [...]}; a bare list of
// ids is accepted too.
func idList(v any) []string {
	switch c := v.(type) {
	case nil:
		return nil
	case []string:
		return c
	case []any:
		ids := make([]string, 0, len(c))
		for _, item := range c {
			if id, ok := item.(string); ok {
				ids = append(ids, id)
			}
		}
		return ids
	case map[string]any:
		return idList(c["explicitList"])
	default:
		return nil
	}
}

func childID(v any) (string, bool) {
	id, ok := v.(string)
	return id, ok && id != ""
}
