package component

import (
	"fmt"
	"sync"

	"github.com/wippyai/a2ui-runtime/binding"
)

// TransformFunc maps resolved properties to host-specific render props.
type TransformFunc func(props map[string]any) map[string]any

var (
	transformMu  sync.RWMutex
	transformReg = map[Kind]TransformFunc{}
)

// RegisterTransform installs the prop transform for a kind, replacing
// any previous entry. Kinds without a transform render their resolved
// properties unchanged.
func RegisterTransform(kind Kind, fn TransformFunc) {
	transformMu.Lock()
	defer transformMu.Unlock()
	transformReg[kind] = fn
}

// structural keys are child references, not renderable props
var structuralKeys = map[string]bool{
	"children":        true,
	"child":           true,
	"tabItems":        true,
	"entryPointChild": true,
	"contentChild":    true,
}

// RenderProps resolves every top-level property descriptor of inst
// against model and applies the kind's registered transform. Structural
// child references are passed through untouched. Resolution never
// fails: dangling paths yield nil values.
func RenderProps(inst *Instance, model map[string]any) map[string]any {
	resolved := make(map[string]any, len(inst.Properties))
	for k, v := range inst.Properties {
		if structuralKeys[k] {
			resolved[k] = v
			continue
		}
		resolved[k] = binding.Resolve(v, model)
	}

	transformMu.RLock()
	fn := transformReg[inst.Kind()]
	transformMu.RUnlock()
	if fn != nil {
		return fn(resolved)
	}
	return resolved
}

// TextValue coerces a resolved property to its display string. Absent
// values render as the empty string.
func TextValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
