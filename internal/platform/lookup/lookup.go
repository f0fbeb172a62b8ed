// Package lookup walks loosely-shaped decoded payloads without failing.
//
// Payloads decoded from JSON into `any` are trees of map[string]any, []any
// and scalars. Get chases a path of keys and indices through such a tree and
// returns a caller-supplied default as soon as any step cannot be applied.
package lookup

// Path builds a lookup path. Steps are string mapping keys or int sequence
// indices.
func Path(steps ...any) []any {
	return steps
}

// Get returns the value found by following path from container, or def when
// any step is missing, out of range, or applied to a value of the wrong
// shape. Remaining steps are not applied once a step fails.
func Get(container any, path []any, def any) any {
	current := container
	for _, step := range path {
		next, ok := index(current, step)
		if !ok {
			return def
		}
		current = next
	}
	return current
}

func index(container, step any) (any, bool) {
	switch key := step.(type) {
	case string:
		return field(container, key)
	case int:
		return element(container, key)
	default:
		return nil, false
	}
}

func field(container any, key string) (any, bool) {
	switch typed := container.(type) {
	case map[string]any:
		value, ok := typed[key]
		return value, ok
	case map[string]string:
		value, ok := typed[key]
		return value, ok
	case map[string][]string:
		value, ok := typed[key]
		return value, ok
	default:
		return nil, false
	}
}

func element(container any, i int) (any, bool) {
	if i < 0 {
		return nil, false
	}
	switch typed := container.(type) {
	case []any:
		if i >= len(typed) {
			return nil, false
		}
		return typed[i], true
	case []string:
		if i >= len(typed) {
			return nil, false
		}
		return typed[i], true
	case []map[string]any:
		if i >= len(typed) {
			return nil, false
		}
		return typed[i], true
	default:
		return nil, false
	}
}
