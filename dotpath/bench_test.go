package dotpath_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-dotpath/dotpath"
)

func deepMap(depth int) (map[string]any, string) {
	root := map[string]any{}
	node := root
	keys := make([]string, depth)
	for i := range depth {
		keys[i] = "k"
		next := map[string]any{}
		node["k"] = next
		node = next
	}
	node["leaf"] = true
	return root, strings.Join(append(keys, "leaf"), ".")
}

func BenchmarkExists(b *testing.B) {
	m, path := deepMap(16)
	for b.Loop() {
		dotpath.Exists(m, path)
	}
}

func BenchmarkSet(b *testing.B) {
	m, path := deepMap(16)
	for b.Loop() {
		dotpath.Set(m, 1, path)
	}
}

func BenchmarkSetAppendMissing(b *testing.B) {
	_, path := deepMap(16)
	for b.Loop() {
		dotpath.Set(map[string]any{}, 1, path, dotpath.WithAppendMissing(true))
	}
}

func BenchmarkFlatten(b *testing.B) {
	m, _ := deepMap(16)
	for b.Loop() {
		dotpath.Flatten(m)
	}
}
