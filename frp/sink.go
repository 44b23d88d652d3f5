package frp

import "iter"

// Sink is the entry point of a graph: it owns a root node with no upstream
// and injects occurrences into it. Copies share the root node, so a Sink
// can be handed to any number of producing goroutines.
type Sink[T any] struct {
	n *node
}

func NewSink[T any]() Sink[T] {
	return Sink[T]{n: newNode()}
}

// Stream returns a strong handle to the root node. Every call returns a
// handle to the same node; a Sink is a single-producer broadcast point.
func (s Sink[T]) Stream() Stream[T] {
	return Stream[T]{n: s.n}
}

// Send pushes one occurrence and runs the full propagation pass for it,
// returning once every live descendant has been notified. Sends on the same
// Sink serialize; sends on sinks with disjoint subgraphs run in parallel.
func (s Sink[T]) Send(v T) {
	s.n.passMu.Lock()
	defer s.n.passMu.Unlock()
	tc := newTraversal()
	tc.push(s.n, v)
	tc.run()
}

// Feed sends each value in order. Each value gets its own complete
// propagation pass; nothing is batched.
func (s Sink[T]) Feed(values iter.Seq[T]) {
	for v := range values {
		s.Send(v)
	}
}
