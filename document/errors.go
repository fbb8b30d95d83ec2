package document

import "errors"

// Sentinel errors returned by document operations.
var (
	// ErrUnsupportedFormat is returned for a [Format] other than json or yaml.
	ErrUnsupportedFormat = errors.New("document: unsupported format")

	// ErrNotMapping is returned when the top level of a document is not a
	// mapping, for example a YAML sequence or a JSON number.
	ErrNotMapping = errors.New("document: top level is not a mapping")

	// ErrInvalidDocument is returned when input holds more than one value.
	ErrInvalidDocument = errors.New("document: invalid document")
)
