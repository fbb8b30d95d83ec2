package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatJSON is RFC 8259 JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML 1.2.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user supplied name into a [Format]. The empty
// string means [FormatAuto].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", string(FormatAuto):
		return FormatAuto, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// DetectFormat returns [FormatJSON] for .json files and [FormatYAML] for
// everything else.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Resolve returns f, or the format detected from path when f is [FormatAuto].
func Resolve(f Format, path string) Format {
	if f == FormatAuto || f == "" {
		return DetectFormat(path)
	}
	return f
}

// Decode reads a whole document from r. Empty input yields an empty mapping.
func Decode(r io.Reader, f Format) (map[string]any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var v any
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("document: decode json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: trailing data after json value", ErrInvalidDocument)
		}
		v = normalizeNumbers(v)
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("document: decode yaml: %w", err)
		}
		v = normalize(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	if v == nil {
		return map[string]any{}, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, v)
	}
	return m, nil
}

// Encode writes data to w. JSON is indented with two spaces and ends with a
// newline.
func Encode(w io.Writer, data map[string]any, f Format) error {
	if data == nil {
		data = map[string]any{}
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("document: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		return encodeYAML(w, data)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// EncodeValue writes any value in format f. It is used to print sub-trees
// and scalars.
func EncodeValue(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("document: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		return encodeYAML(w, v)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("document: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("document: encode yaml: %w", err)
	}
	return nil
}

// ReadFile decodes the document stored at path. A missing file is an error.
func ReadFile(path string, f Format) (map[string]any, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer fh.Close()
	return Decode(fh, Resolve(f, path))
}

// DefaultFileMode is the permission of files created by [WriteFile].
const DefaultFileMode os.FileMode = 0o644

// WriteFile encodes data into a temporary file next to path and renames it
// into place. An existing file keeps its permission bits; a new one gets
// [DefaultFileMode].
func WriteFile(path string, data map[string]any, f Format) (err error) {
	var buf bytes.Buffer
	if err := Encode(&buf, data, Resolve(f, path)); err != nil {
		return err
	}

	mode := DefaultFileMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmp.Name()))
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("document: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("document: chmod %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("document: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	return nil
}

// ParseValue interprets s as a YAML flow value, so "42" is an int, "true" a
// bool, "[a, b]" a list and "{a: 1}" a mapping. Anything YAML cannot parse
// is an error; callers wanting a literal string should skip ParseValue.
func ParseValue(s string) (any, error) {
	if strings.TrimSpace(s) == "" {
		return s, nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("document: parse value %q: %w", s, err)
	}
	return normalize(v), nil
}

// normalize rewrites YAML decoder output so every mapping is map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	}
	return v
}

// normalizeNumbers turns json.Number into int64 when integral and float64
// otherwise.
func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	}
	return v
}
