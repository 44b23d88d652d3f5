package frp

import "weak"

// Signal is a value that is always available by sampling. Sample is total:
// it returns the current value, never blocks and never fails.
type Signal[T any] interface {
	Sample() T
}

type constSignal[T any] struct {
	v T
}

func (c constSignal[T]) Sample() T { return c.v }

// Const returns a signal that always samples to v.
func Const[T any](v T) Signal[T] {
	return constSignal[T]{v: v}
}

type funcSignal[T any] func() T

func (f funcSignal[T]) Sample() T { return f() }

// SignalFunc derives a signal from a function, computed lazily on Sample.
func SignalFunc[T any](f func() T) Signal[T] {
	return funcSignal[T](f)
}

// MapSignal derives a signal that samples to f of the source's value.
func MapSignal[T, U any](s Signal[T], f func(T) U) Signal[U] {
	return SignalFunc(func() U {
		return f(s.Sample())
	})
}

// heldSignal pairs a value cell with a strong reference to the stream node
// feeding it, keeping the chain back to the root alive for as long as the
// signal handle exists.
type heldSignal[T any] struct {
	cell   cell[T]
	source *node
}

func (h *heldSignal[T]) Sample() T {
	return h.cell.Load()
}

// Hold converts the stream into a signal holding the most recently
// delivered occurrence, starting at init.
func (s Stream[T]) Hold(init T) Signal[T] {
	return s.HoldIf(init, func(T) bool { return true })
}

// HoldIf holds the last occurrence for which pred is true.
func (s Stream[T]) HoldIf(init T, pred func(T) bool) Signal[T] {
	h := &heldSignal[T]{source: s.n}
	h.cell.Store(init)
	w := weak.Make(h)
	s.n.addSub(&entry{
		deliver: func(tc *traversal, v any) bool {
			hh := w.Value()
			if hh == nil {
				return false
			}
			if x := v.(T); pred(x) {
				hh.cell.Store(x)
			}
			return true
		},
	})
	return h
}

// Snapshot samples sig every time the trigger stream fires, emitting
// f(sampled, occurrence).
func Snapshot[T, S, R any](sig Signal[T], trigger Stream[S], f func(T, S) R) Stream[R] {
	return Map(trigger, func(v S) R {
		return f(sig.Sample(), v)
	})
}
