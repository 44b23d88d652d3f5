package frp

import "sync/atomic"

// cell is the single-slot holder behind a held signal. Store publishes a
// fully written value; Load never blocks, regardless of what the
// propagation traversal is doing.
type cell[T any] struct {
	p atomic.Pointer[T]
}

func (c *cell[T]) Load() T {
	return *c.p.Load()
}

func (c *cell[T]) Store(v T) {
	c.p.Store(&v)
}
