package binding

// Literal descriptor fields, checked in priority order.
const (
	FieldLiteralString  = "literalString"
	FieldLiteralNumber  = "literalNumber"
	FieldLiteralBoolean = "literalBoolean"
	FieldPath           = "path"
)

// Resolve evaluates a value descriptor against a data model. A
// descriptor is either a literal (literalString, literalNumber,
// literalBoolean — in that priority order) or a path resolved against
// the model. Anything that is not a descriptor map is already a literal
// and returns unchanged, as does a map carrying neither a literal nor a
// path; the fallback keeps unknown descriptor shapes visible instead of
// erasing them.
func Resolve(descriptor any, model map[string]any) any {
	desc, ok := descriptor.(map[string]any)
	if !ok {
		return descriptor
	}

	if v, ok := desc[FieldLiteralString]; ok {
		return v
	}
	if v, ok := desc[FieldLiteralNumber]; ok {
		return v
	}
	if v, ok := desc[FieldLiteralBoolean]; ok {
		return v
	}
	if p, ok := desc[FieldPath].(string); ok {
		return Get(model, p)
	}
	return descriptor
}

// IsDescriptor reports whether v has the shape of a binding descriptor:
// a map carrying a literal field or a path.
func IsDescriptor(v any) bool {
	desc, ok := v.(map[string]any)
	if !ok {
		return false
	}
	for _, field := range []string{FieldLiteralString, FieldLiteralNumber, FieldLiteralBoolean, FieldPath} {
		if _, ok := desc[field]; ok {
			return true
		}
	}
	return false
}
