package frp

import (
	"sync"
	"sync/atomic"
	"weak"
)

// Stream is a strong handle to a node that carries discrete occurrences.
// Copies share the node; the node lives as long as any handle to it, or to
// a descendant built from it, survives.
type Stream[T any] struct {
	n *node
}

// Map emits f(x) for every upstream occurrence. Never suppresses.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return FilterMap(s, func(v T) (U, bool) {
		return f(v), true
	})
}

// FilterMap emits y for every upstream occurrence where f(x) = (y, true)
// and emits nothing at all when ok is false.
func FilterMap[T, U any](s Stream[T], f func(T) (U, bool)) Stream[U] {
	down := newNode(s.n)
	attach(s.n, down, f)
	return Stream[U]{n: down}
}

// Filter passes the occurrence through unchanged iff pred holds.
func (s Stream[T]) Filter(pred func(T) bool) Stream[T] {
	return FilterMap(s, func(v T) (T, bool) {
		return v, pred(v)
	})
}

// Fold accumulates upstream occurrences, emitting the updated accumulator
// for each one. Chain into Hold to expose the accumulator as a signal.
func Fold[T, A any](s Stream[T], init A, f func(A, T) A) Stream[A] {
	down := newNode(s.n)
	var mu sync.Mutex
	acc := init
	attach(s.n, down, func(v T) (A, bool) {
		mu.Lock()
		defer mu.Unlock()
		acc = f(acc, v)
		return acc, true
	})
	return Stream[A]{n: down}
}

// Scan is Fold under its stream-of-accumulators name.
func Scan[T, A any](s Stream[T], init A, f func(A, T) A) Stream[A] {
	return Fold(s, init, f)
}

// Merge emits every occurrence from both streams, preserving arrival order.
// When both upstreams fire within one propagation pass the two occurrences
// are delivered as two invocations in work-list order, never coalesced.
func (s Stream[T]) Merge(other Stream[T]) Stream[T] {
	down := newNode(s.n, other.n)
	forward := func(v T) (T, bool) { return v, true }
	attach(s.n, down, forward)
	attach(other.n, down, forward)
	return Stream[T]{n: down}
}

// Inspect runs f as a side-effecting pass-through on every occurrence.
// Diagnostics only; it neither alters the value nor suppresses propagation,
// and a panic inside f surfaces at the Send caller like any other.
func (s Stream[T]) Inspect(f func(T)) Stream[T] {
	s.n.addSub(&entry{
		deliver: func(tc *traversal, v any) bool {
			f(v.(T))
			return true
		},
	})
	return s
}

// Split routes occurrences matching pred to the first stream and the rest
// to the second. The single upstream edge stays alive while either side
// does.
func (s Stream[T]) Split(pred func(T) bool) (Stream[T], Stream[T]) {
	yes := newNode(s.n)
	no := newNode(s.n)
	wy := weak.Make(yes)
	wn := weak.Make(no)
	s.n.addSub(&entry{
		deliver: func(tc *traversal, v any) bool {
			y, n := wy.Value(), wn.Value()
			if y == nil && n == nil {
				return false
			}
			if x := v.(T); pred(x) {
				if y != nil && !y.dead.Load() {
					tc.push(y, x)
				}
			} else {
				if n != nil && !n.dead.Load() {
					tc.push(n, x)
				}
			}
			return true
		},
	})
	return Stream[T]{n: yes}, Stream[T]{n: no}
}

// MapN maps each occurrence to zero or more outputs: f emits by sending
// through the provided sink. The sink may be retained by f and fed later
// from another goroutine, which makes MapN the hook for asynchronous
// completions. f must not feed a sink upstream of its own stream.
func MapN[T, U any](s Stream[T], f func(T, Sink[U])) Stream[U] {
	down := newNode(s.n)
	w := weak.Make(down)
	s.n.addSub(&entry{
		target: down.id,
		deliver: func(tc *traversal, v any) bool {
			d := w.Value()
			if d == nil || d.dead.Load() {
				return false
			}
			f(v.(T), Sink[U]{n: d})
			return true
		},
	})
	return Stream[U]{n: down}
}

// Switch listens to the most recently received inner stream, dropping the
// subscription to any previous one.
func Switch[T any](s Stream[Stream[T]]) Stream[T] {
	down := newNode(s.n)
	w := weak.Make(down)
	var current atomic.Uint64
	s.n.addSub(&entry{
		target: down.id,
		deliver: func(tc *traversal, v any) bool {
			if w.Value() == nil {
				return false
			}
			inner := v.(Stream[T])
			id := current.Add(1)
			inner.n.addSub(&entry{
				deliver: func(tc *traversal, iv any) bool {
					if current.Load() != id {
						return false
					}
					d := w.Value()
					if d == nil || d.dead.Load() {
						return false
					}
					tc.push(d, iv)
					return true
				},
			})
			return true
		},
	})
	return Stream[T]{n: down}
}

// Drop eagerly detaches the stream's node from its upstreams; subsequent
// sends perform no work for this subtree. All handle copies share the node,
// so dropping one drops them all. Simply discarding every handle has the
// same effect once the GC notices; Drop is the deterministic form.
func (s Stream[T]) Drop() {
	s.n.drop()
}
