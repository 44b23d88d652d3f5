package frp

import "sync/atomic"

var genIDs atomic.Uint64

// Generations reports how many propagation passes have run so far across
// all sinks. Diagnostics only.
func Generations() uint64 {
	return genIDs.Load()
}

// traversal is the per-pass context: one generation id and a FIFO work
// list. It is owned by the sending goroutine, never shared.
type traversal struct {
	gen   uint64
	queue []delivery
}

type delivery struct {
	n *node
	v any
}

func newTraversal() *traversal {
	return &traversal{gen: genIDs.Add(1)}
}

func (tc *traversal) push(n *node, v any) {
	tc.queue = append(tc.queue, delivery{n: n, v: v})
}

// run processes the work list iteratively in dependency order. A panic from
// a caller-supplied combinator function unwinds through here to the Send
// caller; the abandoned remainder of the queue is the aborted subtree.
func (tc *traversal) run() {
	for len(tc.queue) > 0 {
		d := tc.queue[0]
		tc.queue = tc.queue[1:]
		d.n.emit(tc, d.v)
	}
}
