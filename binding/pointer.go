package binding

import (
	"strconv"
	"strings"

	"github.com/wippyai/a2ui-runtime/errors"
)

// Parse splits a pointer into its decoded tokens. The empty pointer and
// "/" both denote the tree root and yield no tokens. Any other pointer
// must start with '/'.
func Parse(pointer string) ([]string, error) {
	if pointer == "" || pointer == "/" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, errors.MalformedPointer(errors.PhaseParse, pointer)
	}

	raw := strings.Split(pointer[1:], "/")
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		// ~1 decodes first so "~01" becomes "~1", not "/"
		tok = strings.ReplaceAll(tok, "~1", "/")
		tok = strings.ReplaceAll(tok, "~0", "~")
		tokens[i] = tok
	}
	return tokens, nil
}

// Get walks pointer through tree and returns the addressed value, or
// nil when any step fails. The root pointer returns the whole tree.
// Array containers require base-10 integer tokens; everything else is a
// direct key lookup. Get never returns an error: read failures degrade
// to nil by contract.
func Get(tree any, pointer string) any {
	tokens, err := Parse(pointer)
	if err != nil {
		return nil
	}

	current := tree
	for _, tok := range tokens {
		if current == nil {
			return nil
		}
		switch c := current.(type) {
		case map[string]any:
			current = c[tok]
		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(c) {
				return nil
			}
			current = c[idx]
		default:
			return nil
		}
	}
	return current
}

// Has reports whether pointer resolves to a non-nil value in tree. A
// path whose value is legitimately null is indistinguishable from a
// missing path; see the package doc.
func Has(tree any, pointer string) bool {
	return Get(tree, pointer) != nil
}

// Set assigns value at pointer inside tree, creating intermediate
// containers as needed. Whether a created container is an array or an
// object is decided by lookahead on the following token: an integer
// token means array. The root pointer is rejected; there is no
// whole-tree replacement through Set.
func Set(tree map[string]any, pointer string, value any) error {
	tokens, err := Parse(pointer)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return errors.RootWrite(pointer)
	}

	_, err = assign(tree, tokens, pointer, value)
	return err
}

// assign descends one token and returns the (possibly replaced)
// container so array growth propagates back to the parent.
func assign(container any, tokens []string, pointer string, value any) (any, error) {
	tok := tokens[0]

	switch c := container.(type) {
	case map[string]any:
		if len(tokens) == 1 {
			c[tok] = value
			return c, nil
		}
		child := c[tok]
		if child == nil {
			child = newContainer(tokens[1])
		}
		updated, err := assign(child, tokens[1:], pointer, value)
		if err != nil {
			return c, err
		}
		c[tok] = updated
		return c, nil

	case []any:
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 {
			return c, errors.New(errors.PhaseResolve, errors.KindInvalidData).
				Pointer(pointer).
				Detail("array index %q is not a valid index", tok).
				Build()
		}
		for idx >= len(c) {
			c = append(c, nil)
		}
		if len(tokens) == 1 {
			c[idx] = value
			return c, nil
		}
		child := c[idx]
		if child == nil {
			child = newContainer(tokens[1])
		}
		updated, err := assign(child, tokens[1:], pointer, value)
		if err != nil {
			return c, err
		}
		c[idx] = updated
		return c, nil

	default:
		return container, errors.New(errors.PhaseResolve, errors.KindInvalidData).
			Pointer(pointer).
			Detail("intermediate value at %q is not a container", tok).
			Build()
	}
}

func newContainer(nextToken string) any {
	if _, err := strconv.Atoi(nextToken); err == nil {
		return []any{}
	}
	return map[string]any{}
}
