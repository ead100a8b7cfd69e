package decl

import (
	"fmt"
	"sort"
)

// Env[T] holds runtime bindings for identifiers. The language has no lexical
// scoping so the interpreter uses flat, top-level tables (variables share one
// global table across all function bodies, last write wins), but the table
// itself keeps the outer-chain shape so an embedding host can layer read-only
// defaults underneath a run.
type Env[T any] struct {
	store map[string]T
	outer *Env[T]
}

// NewEnv creates a new environment nested within an outer one.
// If outer is nil then returns a fresh top-level environment.
func NewEnv[T any](outer *Env[T]) *Env[T] {
	return &Env[T]{store: make(map[string]T), outer: outer}
}

// Get retrieves a value by name. It checks the current environment first,
// then recursively checks outer environments.
func (e *Env[T]) Get(name string) (out T, found bool) {
	out, found = e.store[name]
	if !found && e.outer != nil {
		return e.outer.Get(name)
	}
	return
}

// Set creates or overwrites the binding in this environment.
func (e *Env[T]) Set(name string, value T) {
	e.store[name] = value
}

// Len returns the number of bindings in this environment (not including
// outer environments).
func (e *Env[T]) Len() int {
	return len(e.store)
}

// Keys returns the sorted keys of this environment (not including outer
// environments).
func (e *Env[T]) Keys() []string {
	keys := make([]string, 0, len(e.store))
	for k := range e.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String representation for debugging
func (e *Env[T]) String() string {
	return fmt.Sprintf("Env{keys: %v, outer: %v}", e.Keys(), e.outer != nil)
}
