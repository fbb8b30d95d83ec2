package dotpath

import (
	"maps"
	"slices"
)

// Flatten converts nested maps into a single-level map whose keys are the
// delimiter-joined paths of the leaves. Empty nested maps are kept as leaves
// so that [Expand] can restore them.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(data map[string]any, opts ...Option) map[string]any {
	o := newOptions(opts)
	out := make(map[string]any)
	flatten("", data, o.delimiter, out)
	return out
}

func flatten(prefix string, m map[string]any, delimiter string, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + delimiter + k
		}
		if nested, ok := asMap(v); ok && len(nested) > 0 {
			flatten(key, nested, delimiter, out)
			continue
		}
		out[key] = v
	}
}

// Expand is the inverse of [Flatten]: each key is split on the delimiter and
// written with [Set] and [WithAppendMissing].
//
// Keys are applied in sorted order, so when both "a" and "a.b" are present
// the scalar at "a" wins and "a.b" is dropped.
//
//	Expand(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Expand(flat map[string]any, opts ...Option) map[string]any {
	out := make(map[string]any, len(flat))
	setOpts := append(slices.Clip(opts), WithAppendMissing(true))
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		Set(out, flat[key], key, setOpts...)
	}
	return out
}
