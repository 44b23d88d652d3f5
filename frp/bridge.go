package frp

import (
	"context"
	"sync/atomic"
)

// Next returns a channel that resolves with the next occurrence on the
// stream and is then closed; the subscription detaches after that single
// delivery. If the stream's root is dropped before anything arrives the
// channel never resolves; timeouts and cancellation are the caller's
// business, typically a select against a context.
func (s Stream[T]) Next() <-chan T {
	ch := make(chan T, 1)
	var done atomic.Bool
	s.n.addSub(&entry{
		deliver: func(tc *traversal, v any) bool {
			if !done.CompareAndSwap(false, true) {
				return false
			}
			ch <- v.(T)
			close(ch)
			return false
		},
	})
	return ch
}

// Channel forwards occurrences into a buffered channel of the given size.
// The subscription detaches once ctx is done. Delivery never blocks the
// propagation pass: an occurrence arriving while the buffer is full is
// dropped.
func (s Stream[T]) Channel(ctx context.Context, size int) <-chan T {
	ch := make(chan T, size)
	s.n.addSub(&entry{
		deliver: func(tc *traversal, v any) bool {
			if ctx.Err() != nil {
				return false
			}
			select {
			case ch <- v.(T):
			default:
			}
			return true
		},
	})
	return ch
}
