package transform

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Options configures an [Argon2idTransformer]. The parameters are
// encoded into every output, so changing them never invalidates stored values.
type Argon2Options struct {
	// Memory is the memory cost in KiB. Must be at least 8×Threads.
	Memory uint32
	// Time is the number of passes over memory. Must be at least 1.
	Time uint32
	// Threads is the degree of parallelism. Must be at least 1.
	Threads uint8
	// KeyLen is the derived key length in bytes. Must be at least 4.
	KeyLen uint32
	// SaltLen is the random salt length in bytes. Must be at least 8.
	SaltLen uint32
}

// DefaultArgon2Options returns m=64 MiB, t=3, p=2 with a 32-byte key and a
// 16-byte salt.
func DefaultArgon2Options() Argon2Options {
	return Argon2Options{
		Memory:  64 * 1024,
		Time:    3,
		Threads: 2,
		KeyLen:  32,
		SaltLen: 16,
	}
}

func (o Argon2Options) validate() error {
	switch {
	case o.Time < 1:
		return fmt.Errorf("%w: argon2 time must be >= 1, got %d", ErrInvalidOption, o.Time)
	case o.Threads < 1:
		return fmt.Errorf("%w: argon2 threads must be >= 1, got %d", ErrInvalidOption, o.Threads)
	case o.Memory < 8*uint32(o.Threads):
		return fmt.Errorf("%w: argon2 memory %d KiB must be >= 8*threads", ErrInvalidOption, o.Memory)
	case o.KeyLen < 4:
		return fmt.Errorf("%w: argon2 key length must be >= 4, got %d", ErrInvalidOption, o.KeyLen)
	case o.SaltLen < 8:
		return fmt.Errorf("%w: argon2 salt length must be >= 8, got %d", ErrInvalidOption, o.SaltLen)
	}
	return nil
}

// Argon2idTransformer stores values as Argon2id hashes in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
//
// Salt and hash use unpadded standard base64.
type Argon2idTransformer struct {
	opts Argon2Options
}

// NewArgon2idTransformer validates opts and returns an Argon2id driver.
func NewArgon2idTransformer(opts Argon2Options) (*Argon2idTransformer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Argon2idTransformer{opts: opts}, nil
}

// Driver returns [DriverArgon2id].
func (a *Argon2idTransformer) Driver() DriverName { return DriverArgon2id }

// Options returns the parameter set new hashes are produced with.
func (a *Argon2idTransformer) Options() Argon2Options { return a.opts }

// Apply hashes value with a fresh random salt.
func (a *Argon2idTransformer) Apply(value string) (string, error) {
	salt := make([]byte, a.opts.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("transform: argon2id: generating salt: %w", err)
	}
	key := argon2.IDKey([]byte(value), salt, a.opts.Time, a.opts.Memory, a.opts.Threads, a.opts.KeyLen)
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		DriverArgon2id, argon2.Version,
		a.opts.Memory, a.opts.Time, a.opts.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the hash of value with the parameters encoded in stored
// and compares in constant time.
func (a *Argon2idTransformer) Verify(value, stored string) (bool, error) {
	p, err := parsePHC(stored)
	if err != nil {
		return false, err
	}
	key := argon2.IDKey([]byte(value), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(key, p.key) == 1, nil
}

type phc struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

func parsePHC(s string) (*phc, error) {
	parts := strings.Split(s, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != string(DriverArgon2id) {
		return nil, fmt.Errorf("%w: not an argon2id PHC string", ErrInvalidHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, fmt.Errorf("%w: unsupported argon2 version segment %q", ErrInvalidHash, parts[2])
	}

	var p phc
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return nil, fmt.Errorf("%w: parameters %q: %v", ErrInvalidHash, parts[3], err)
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: key: %v", ErrInvalidHash, err)
	}
	if len(p.key) == 0 || p.threads == 0 {
		return nil, fmt.Errorf("%w: empty key or zero threads", ErrInvalidHash)
	}
	return &p, nil
}
