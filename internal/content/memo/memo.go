// Package memo provides a process-lifetime, single-slot memoization cell for
// the published content indexes.
//
// # Semantics
//
// The slot is populated by the first successful load and held until
// [Cell.Invalidate] or process exit. Two concurrent cold reads may both run
// the loader; the result is idempotent, so the last write is equivalent to
// any other. A failed load leaves the slot empty and the error is returned
// to that caller only.
package memo

import (
	"context"
	"sync"
)

// Cell is a single mutable slot holding one memoized value.
type Cell[T any] struct {
	mu     sync.RWMutex
	loaded bool
	value  T
}

// Get returns the memoized value, running load to populate the slot on the
// first call. It tries a read lock first; only takes the write lock when a
// load is needed.
func (c *Cell[T]) Get(ctx context.Context, load func(context.Context) (T, error)) (T, error) {
	c.mu.RLock()
	if c.loaded {
		value := c.value
		c.mu.RUnlock()
		return value, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.value, nil
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.value = value
	c.loaded = true
	return value, nil
}

// Invalidate clears the slot so the next read triggers a fresh load.
func (c *Cell[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.value = zero
	c.loaded = false
	c.mu.Unlock()
}
