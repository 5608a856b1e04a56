// Package lockcell is the intermediate ownership form: one read-write lock
// around a value location the caller may already own. The cell takes no
// position on lifetime; the embedding application decides how the
// underlying storage is shared. The shared signal variant builds its value
// storage on it.
package lockcell

import "sync"

// Cell guards a value location with one RWMutex.
type Cell[T any] struct {
	mu sync.RWMutex
	v  *T
}

// Wrap guards storage the caller supplies and keeps owning.
func Wrap[T any](v *T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Own allocates storage for value and guards it.
func Own[T any](value T) *Cell[T] {
	return &Cell[T]{v: &value}
}

// Load returns a copy of the value.
func (c *Cell[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return *c.v
}

// Store overwrites the value.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	*c.v = v
	c.mu.Unlock()
}

// View runs fn under the read lock. fn must not call back into the cell.
func (c *Cell[T]) View(fn func(*T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.v)
}

// Mutate runs fn under the write lock. fn must not call back into the cell.
func (c *Cell[T]) Mutate(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.v)
}
