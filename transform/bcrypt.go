package transform

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used by [NewDefaultRegistry].
const DefaultBcryptCost = 12

// BcryptTransformer stores values as bcrypt hashes. Values longer than 72
// bytes are truncated by bcrypt itself.
type BcryptTransformer struct {
	cost int
}

// NewBcryptTransformer returns a bcrypt driver with the given cost.
// Returns [ErrInvalidOption] if cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptTransformer(cost int) (*BcryptTransformer, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptTransformer{cost: cost}, nil
}

// Driver returns [DriverBcrypt].
func (b *BcryptTransformer) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured work factor.
func (b *BcryptTransformer) Cost() int { return b.cost }

// Apply hashes value. Every call uses a fresh salt.
func (b *BcryptTransformer) Apply(value string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(value), b.cost)
	if err != nil {
		return "", fmt.Errorf("transform: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether value matches the bcrypt hash stored.
func (b *BcryptTransformer) Verify(value, stored string) (bool, error) {
	if !isBcrypt(stored) {
		return false, fmt.Errorf("%w: not a bcrypt hash", ErrInvalidHash)
	}
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(value))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return true, nil
}

func isBcrypt(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
