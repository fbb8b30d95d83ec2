// Package transform converts plaintext values before they are written into a
// document with [github.com/hasbyte1/go-dotpath/dotpath.Set].
//
// # Architecture
//
// The central abstraction is the [Transformer] interface. Four drivers ship
// with this package:
//
//   - [Plain] returns the value unchanged.
//   - [Base64] encodes the value with standard base64.
//   - [BcryptTransformer] replaces the value with a bcrypt hash.
//   - [Argon2idTransformer] replaces the value with a PHC-encoded Argon2id hash.
//
// The [Registry] maps driver names to transformers. [NewDefaultRegistry]
// registers all four; custom drivers can be added with [Registry.Register].
//
//	reg, err := transform.NewDefaultRegistry()
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := reg.Apply(transform.DriverBcrypt, "s3cret")
//	dotpath.Set(cfg, hash, "auth.admin.password", dotpath.WithAppendMissing(true))
//
// Hashing drivers also implement [Verifier], so a stored value can be checked
// against a candidate plaintext.
package transform
