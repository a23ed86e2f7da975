package conditions

import (
	"fmt"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

// Registry is an ordered, immutable catalog of conditions indexed both by
// name and by key character. Serialization iterates in registration order.
type Registry struct {
	ordered []Condition
	byName  map[string]Condition
	byKey   map[byte]Condition
}

// New builds a registry from the given conditions. Duplicate names or key
// characters are configuration errors: a shared key would make token decoding
// ambiguous, so construction fails fast.
func New(conds ...Condition) (*Registry, error) {
	r := &Registry{
		ordered: make([]Condition, 0, len(conds)),
		byName:  make(map[string]Condition, len(conds)),
		byKey:   make(map[byte]Condition, len(conds)),
	}
	for _, c := range conds {
		if _, exists := r.byName[c.Name()]; exists {
			return nil, fmt.Errorf("%w: condition %q registered twice", types.ErrDuplicateKey, c.Name())
		}
		if prev, exists := r.byKey[c.Key()]; exists {
			return nil, fmt.Errorf("%w: %q and %q both use key %q",
				types.ErrDuplicateKey, prev.Name(), c.Name(), string(c.Key()))
		}
		r.ordered = append(r.ordered, c)
		r.byName[c.Name()] = c
		r.byKey[c.Key()] = c
	}
	return r, nil
}

// Default returns a registry holding the stock catalog.
func Default() *Registry {
	r, err := New(All()...)
	if err != nil {
		// The stock catalog is checked by tests; a collision here is a
		// programming error.
		panic(err)
	}
	return r
}

// Conditions returns the conditions in registration order.
func (r *Registry) Conditions() []Condition {
	return r.ordered
}

// Names returns the condition names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.ordered))
	for i, c := range r.ordered {
		names[i] = c.Name()
	}
	return names
}

// ByName returns the condition with the given name.
func (r *Registry) ByName(name string) (Condition, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// ByKey returns the condition with the given key character.
func (r *Registry) ByKey(key byte) (Condition, bool) {
	c, ok := r.byKey[key]
	return c, ok
}

// Lookup resolves a condition by name, or, for single-character references,
// by key character with the name index as fallback.
func (r *Registry) Lookup(ref string) (Condition, bool) {
	if len(ref) == 1 {
		if c, ok := r.byKey[ref[0]]; ok {
			return c, true
		}
	}
	c, ok := r.byName[ref]
	return c, ok
}
