package dotpath

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Path operations on map[string]any
//
// Example map:
//
//	m := map[string]any{
//	    "l1": map[string]any{
//	        "l2": map[string]any{"k1": 1, "k2": 2},
//	    },
//	}
//
//	Exists(m, "l1.l2.k1")         → true
//	Set(m, "val1", "l1.l3")       → m.l1.l3 == "val1"
//	Delete(m, "l1.l2.k1")         → m.l1.l2 == {k2: 2}
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether path resolves in data.
//
// A segment that does not resolve does not stop the walk: the remaining
// segments are looked up from the last node that did resolve, and the result
// reflects the final segment only. As a consequence
//
//	Exists(map[string]any{"a": map[string]any{"c": 1}}, "a.b.c") // → true
//
// Use [Get] when every segment must resolve.
func Exists[P Path](data map[string]any, path P, opts ...Option) bool {
	o := newOptions(opts)
	segs := segments(path, o.delimiter)
	if data == nil || len(segs) == 0 {
		return false
	}

	var node any = data
	found := false
	for _, seg := range segs {
		next, ok := child(node, seg)
		if ok {
			node = next
		}
		found = ok
	}
	return found
}

// Set writes value at path in data and returns data.
//
// Every segment but the last must resolve to a map. When one does not, Set
// leaves data untouched, unless [WithAppendMissing] is enabled, in which case
// an empty map is stored at that key (replacing whatever was there) and the
// walk continues into it. A scalar on the way cannot hold a new map, so it
// always ends the walk.
//
//	Set(m, "val1", "l4.l5")                            // m unchanged
//	Set(m, "val1", "l4.l5", WithAppendMissing(true))   // m["l4"] = {"l5": "val1"}
func Set[P Path](data map[string]any, value any, path P, opts ...Option) map[string]any {
	o := newOptions(opts)
	segs := segments(path, o.delimiter)
	if data == nil || len(segs) == 0 {
		return data
	}

	last := len(segs) - 1
	var node any = data
	for _, seg := range segs[:last] {
		if next, ok := child(node, seg); ok {
			node = next
			continue
		}
		m, ok := asMap(node)
		if !o.appendMissing || !ok {
			return data
		}
		created := make(map[string]any)
		m[seg] = created
		node = created
	}

	if m, ok := asMap(node); ok {
		m[segs[last]] = value
	}
	return data
}

// Delete removes the key named by the last segment of path and returns data.
//
// Intermediate segments that do not resolve are skipped, so the key is
// removed from the deepest map that was reached. Deleting a missing key is a
// no-op, which makes Delete idempotent.
func Delete[P Path](data map[string]any, path P, opts ...Option) map[string]any {
	o := newOptions(opts)
	segs := segments(path, o.delimiter)
	if data == nil || len(segs) == 0 {
		return data
	}

	last := len(segs) - 1
	var node any = data
	for _, seg := range segs[:last] {
		if next, ok := child(node, seg); ok {
			node = next
		}
	}

	if m, ok := asMap(node); ok {
		delete(m, segs[last])
	}
	return data
}

// Get returns the value at path and whether every segment resolved.
//
//	Get(m, "l1.l2.k2") // → 2, true
//	Get(m, "l1.zz.k2") // → nil, false
func Get[P Path](data map[string]any, path P, opts ...Option) (any, bool) {
	o := newOptions(opts)
	segs := segments(path, o.delimiter)
	if data == nil || len(segs) == 0 {
		return nil, false
	}

	var node any = data
	for _, seg := range segs {
		next, ok := child(node, seg)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// IsEmpty reports whether obj has no keys. Maps of any key and value type
// are inspected; nil and every non-map value count as empty.
func IsEmpty(obj any) bool {
	switch v := obj.(type) {
	case nil:
		return true
	case map[string]any:
		return len(v) == 0
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Map {
		return rv.Len() == 0
	}
	return true
}
