package transform

import "encoding/base64"

// DriverName identifies a transform driver.
type DriverName string

const (
	// DriverPlain selects the identity driver.
	DriverPlain DriverName = "plain"
	// DriverBase64 selects standard base64 encoding.
	DriverBase64 DriverName = "base64"
	// DriverBcrypt selects bcrypt hashing.
	DriverBcrypt DriverName = "bcrypt"
	// DriverArgon2id selects Argon2id hashing.
	DriverArgon2id DriverName = "argon2id"
)

// Transformer rewrites a plaintext value into the form that is stored.
//
// Implementations must be safe for concurrent use.
type Transformer interface {
	// Apply returns the stored form of value.
	Apply(value string) (string, error)

	// Driver returns the name the transformer is known by.
	Driver() DriverName
}

// Verifier is implemented by one-way transformers whose output can be checked
// against a plaintext candidate.
type Verifier interface {
	// Verify reports whether value produces stored. It returns
	// [ErrInvalidHash] when stored was not produced by this driver.
	Verify(value, stored string) (bool, error)
}

// Plain is the identity transformer.
type Plain struct{}

// Apply returns value unchanged.
func (Plain) Apply(value string) (string, error) { return value, nil }

// Driver returns [DriverPlain].
func (Plain) Driver() DriverName { return DriverPlain }

// Base64 encodes values with the standard base64 alphabet.
type Base64 struct{}

// Apply returns the padded standard base64 encoding of value.
func (Base64) Apply(value string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(value)), nil
}

// Driver returns [DriverBase64].
func (Base64) Driver() DriverName { return DriverBase64 }
