// Package dotpath provides standalone helpers for testing, writing and
// removing values in nested map[string]any structures addressed by
// delimiter-separated key paths.
//
// # Paths
//
// Every operation accepts a path either as a delimited string or as a
// pre-split []string:
//
//	dotpath.Exists(m, "user.address.city")
//	dotpath.Exists(m, []string{"user", "address", "city"})
//
// The delimiter defaults to "." and can be changed per call with
// [WithDelimiter]. It is only used to split string paths; there is no escape
// syntax, so a key that contains the delimiter must be addressed with the
// []string form. An empty string or an empty slice is a path with zero
// segments and never matches anything.
//
// # Core operations
//
//	m := map[string]any{
//	    "l1": map[string]any{
//	        "l2": map[string]any{"k1": 1, "k2": 2},
//	    },
//	}
//	dotpath.Exists(m, "l1.l2.k1")                              // → true
//	dotpath.Set(m, "val1", "l1.l3")                            // m["l1"]["l3"] = "val1"
//	dotpath.Set(m, "val1", "l4.l5")                            // no-op, l4 is missing
//	dotpath.Set(m, "val1", "l4.l5", dotpath.WithAppendMissing(true))
//	dotpath.Delete(m, "l1.l2.k1")
//	dotpath.IsEmpty(map[string]any{})                          // → true
//
// [Set] and [Delete] mutate the map in place and return the same map, so
// calls can be chained or used inline.
//
// # Walk semantics
//
// The three path operations share one step rule: a segment resolves when it
// is non-empty, the current node is a non-nil map[string]any and the segment
// is a key of that map. They differ in how a failed step is handled:
//
//   - [Exists] keeps walking from the last resolved node and reports only
//     whether the final segment resolved.
//   - [Set] stops at the first unresolved intermediate segment unless
//     [WithAppendMissing] is enabled, in which case an empty map is attached
//     at that key.
//   - [Delete] skips unresolved intermediate segments and removes the final
//     key from the last resolved node.
//
// [Get], [Flatten] and [Expand] complete the set with strict lookup and
// conversion to and from single-level maps.
//
// None of the functions return errors or panic: a nil map, an empty path or a
// scalar where a map is expected degrades to false, a no-op or "empty".
package dotpath
