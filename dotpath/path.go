package dotpath

import "strings"

// DefaultDelimiter separates the segments of a string path.
const DefaultDelimiter = "."

// Path is the set of accepted path forms: a delimited string or a slice
// of already split segments.
type Path interface {
	string | []string
}

// Option configures a single path operation.
type Option func(*options)

type options struct {
	delimiter     string
	appendMissing bool
}

func newOptions(opts []Option) options {
	o := options{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDelimiter sets the string used to split string paths.
//
//	dotpath.Exists(m, "user/name", dotpath.WithDelimiter("/"))
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		o.delimiter = delimiter
	}
}

// WithAppendMissing makes [Set] create an empty map for every intermediate
// segment that does not resolve instead of abandoning the write. Other
// operations ignore it.
func WithAppendMissing(enabled bool) Option {
	return func(o *options) {
		o.appendMissing = enabled
	}
}

// Split breaks a string path into segments. An empty path has no segments;
// empty segments produced by leading, trailing or doubled delimiters are kept.
//
//	Split("a.b.c", ".") // → [a b c]
//	Split("a..b", ".")  // → [a  b]
//	Split("", ".")      // → nil
func Split(path, delimiter string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, delimiter)
}

// segments resolves either path form into a segment slice. The caller's
// slice is returned as is and must not be modified.
func segments[P Path](path P, delimiter string) []string {
	switch p := any(path).(type) {
	case string:
		return Split(p, delimiter)
	case []string:
		return p
	}
	return nil
}

// asMap reports whether v is a usable container. A nil map counts as absent.
func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok && m != nil
}

// child performs one walk step from node.
func child(node any, seg string) (any, bool) {
	if seg == "" {
		return nil, false
	}
	m, ok := asMap(node)
	if !ok {
		return nil, false
	}
	v, ok := m[seg]
	return v, ok
}
