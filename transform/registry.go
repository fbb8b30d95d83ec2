package transform

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is a named set of transformers. All methods are safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	drivers map[DriverName]Transformer
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[DriverName]Transformer)}
}

// NewDefaultRegistry returns a Registry with the plain, base64, bcrypt
// ([DefaultBcryptCost]) and argon2id ([DefaultArgon2Options]) drivers.
func NewDefaultRegistry() (*Registry, error) {
	bc, err := NewBcryptTransformer(DefaultBcryptCost)
	if err != nil {
		return nil, fmt.Errorf("transform: default bcrypt driver: %w", err)
	}
	a2, err := NewArgon2idTransformer(DefaultArgon2Options())
	if err != nil {
		return nil, fmt.Errorf("transform: default argon2id driver: %w", err)
	}

	r := NewRegistry()
	for _, t := range []Transformer{Plain{}, Base64{}, bc, a2} {
		if err := r.Register(t.Driver(), t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds or replaces the transformer known as name.
func (r *Registry) Register(name DriverName, t Transformer) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if t == nil {
		return ErrNilTransformer
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[name] = t
	return nil
}

// Driver returns the transformer registered as name.
func (r *Registry) Driver(name DriverName) (Transformer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return t, nil
}

// Has reports whether a transformer is registered as name.
func (r *Registry) Has(name DriverName) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.drivers[name]
	return ok
}

// Names returns the registered driver names in sorted order.
func (r *Registry) Names() []DriverName {
	r.mu.RLock()
	names := make([]DriverName, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Apply runs value through the transformer registered as name.
func (r *Registry) Apply(name DriverName, value string) (string, error) {
	t, err := r.Driver(name)
	if err != nil {
		return "", err
	}
	return t.Apply(value)
}
