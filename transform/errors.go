package transform

import "errors"

// Sentinel errors returned by transform operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := reg.Apply("rot13", value)
//	if errors.Is(err, transform.ErrDriverNotFound) {
//	    // unknown driver name
//	}
var (
	// ErrDriverNotFound is returned by [Registry.Driver] and
	// [Registry.Apply] when no transformer is registered under the name.
	ErrDriverNotFound = errors.New("transform: driver not found")

	// ErrEmptyDriverName is returned by [Registry.Register] when the supplied
	// name is empty.
	ErrEmptyDriverName = errors.New("transform: driver name must not be empty")

	// ErrNilTransformer is returned by [Registry.Register] when a nil
	// [Transformer] is supplied.
	ErrNilTransformer = errors.New("transform: transformer must not be nil")

	// ErrInvalidOption is returned when a constructor receives a parameter
	// outside its allowed range.
	ErrInvalidOption = errors.New("transform: invalid option value")

	// ErrInvalidHash is returned by [Verifier.Verify] when the stored value
	// cannot be parsed by the driver.
	ErrInvalidHash = errors.New("transform: invalid or unrecognised hash string")
)
