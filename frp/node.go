package frp

import (
	"sync"
	"sync/atomic"
	"weak"

	mapset "github.com/deckarep/golang-set/v2"
)

var nodeIDs atomic.Uint64

// node is one vertex of the propagation graph. Handles (Sink, Stream, held
// signals) own nodes strongly; subscription entries only ever hold weak
// references, so a subtree with no surviving handle is reclaimed by the GC
// and pruned from its upstreams on the next traversal that touches them.
type node struct {
	id   uint64
	dead atomic.Bool

	// sources are the direct upstreams, referenced strongly so a retained
	// terminal handle keeps its whole chain alive. Immutable after
	// construction.
	sources []*node

	mu   sync.Mutex // guards subs
	subs []*entry

	// visitMu serializes this node's delivery loop across overlapping
	// generations. Never held together with another node's visitMu.
	visitMu sync.Mutex

	// passMu serializes whole propagation passes originating at this node.
	// Only locked by Sink.Send.
	passMu sync.Mutex
}

// entry is a weak edge from a node to one subscriber. deliver reports
// whether the subscriber is still alive; dead entries are pruned by emit.
type entry struct {
	target  uint64 // downstream node id, 0 for anonymous taps
	deliver func(tc *traversal, v any) bool
}

func newNode(sources ...*node) *node {
	return &node{id: nodeIDs.Add(1), sources: sources}
}

func (n *node) addSub(e *entry) {
	n.mu.Lock()
	n.subs = append(n.subs, e)
	n.mu.Unlock()
}

func (n *node) removeSubs(target uint64) {
	n.mu.Lock()
	live := n.subs[:0]
	for _, e := range n.subs {
		if e.target != target {
			live = append(live, e)
		}
	}
	n.subs = live
	n.mu.Unlock()
}

// drop eagerly detaches the node from its upstreams. Entries that still
// reference it from stale traversal snapshots check the dead flag.
func (n *node) drop() {
	if !n.dead.CompareAndSwap(false, true) {
		return
	}
	for _, src := range n.sources {
		src.removeSubs(n.id)
	}
}

// emit delivers v to every live subscriber in registration order and prunes
// the entries whose downstream is gone. The snapshot taken under mu keeps
// concurrent subscribe/drop from tearing the list mid-walk. A node reached
// through two upstream edges in one generation emits once per delivery;
// occurrences are never coalesced.
func (n *node) emit(tc *traversal, v any) {
	if n.dead.Load() {
		return
	}

	n.visitMu.Lock()
	defer n.visitMu.Unlock()

	n.mu.Lock()
	snapshot := make([]*entry, len(n.subs))
	copy(snapshot, n.subs)
	n.mu.Unlock()

	var gone mapset.Set[*entry]
	for _, e := range snapshot {
		if !e.deliver(tc, v) {
			if gone == nil {
				gone = mapset.NewThreadUnsafeSet[*entry]()
			}
			gone.Add(e)
		}
	}

	if gone == nil {
		return
	}
	n.mu.Lock()
	live := n.subs[:0]
	for _, e := range n.subs {
		if !gone.Contains(e) {
			live = append(live, e)
		}
	}
	n.subs = live
	n.mu.Unlock()
}

// attach wires down as a weak subscriber of up. apply computes down's output
// for one occurrence; ok=false suppresses propagation along this edge.
func attach[T, U any](up, down *node, apply func(T) (U, bool)) {
	w := weak.Make(down)
	up.addSub(&entry{
		target: down.id,
		deliver: func(tc *traversal, v any) bool {
			d := w.Value()
			if d == nil || d.dead.Load() {
				return false
			}
			out, ok := apply(v.(T))
			if ok {
				tc.push(d, out)
			}
			return true
		},
	})
}
