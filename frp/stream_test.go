package frp_test

import (
	"slices"
	"testing"

	"github.com/delaneyj/streamparty/frp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder taps a stream and retains its handle, so the recorded subtree
// stays reachable for as long as the test still reads got.
type recorder[T any] struct {
	s   frp.Stream[T]
	got []T
}

func record[T any](s frp.Stream[T]) *recorder[T] {
	r := &recorder[T]{s: s}
	s.Inspect(func(v T) {
		r.got = append(r.got, v)
	})
	return r
}

func TestMap(t *testing.T) {
	sink := frp.NewSink[int]()
	doubled := record(frp.Map(sink.Stream(), func(v int) int { return v * 2 }))

	sink.Send(1)
	sink.Send(2)
	sink.Send(3)
	assert.Equal(t, []int{2, 4, 6}, doubled.got)
}

func TestFilterSuppressesWithoutNotifying(t *testing.T) {
	sink := frp.NewSink[int]()
	evens := sink.Stream().Filter(func(v int) bool { return v%2 == 0 })

	downstreamCalls := 0
	mapped := record(frp.Map(evens, func(v int) int {
		downstreamCalls++
		return v
	}))

	sink.Feed(slices.Values([]int{1, 2, 3, 4}))
	assert.Equal(t, []int{2, 4}, mapped.got)
	assert.Equal(t, 2, downstreamCalls)
}

func TestFilterMap(t *testing.T) {
	sink := frp.NewSink[string]()
	lens := record(frp.FilterMap(sink.Stream(), func(v string) (int, bool) {
		if v == "" {
			return 0, false
		}
		return len(v), true
	}))

	sink.Feed(slices.Values([]string{"a", "", "abc"}))
	assert.Equal(t, []int{1, 3}, lens.got)
}

func TestFoldEmitsAccumulator(t *testing.T) {
	sink := frp.NewSink[int]()
	sums := record(frp.Fold(sink.Stream(), 0, func(acc, v int) int { return acc + v }))

	sink.Feed(slices.Values([]int{6, 42, -1}))
	assert.Equal(t, []int{6, 48, 47}, sums.got)
}

func TestScanIsFold(t *testing.T) {
	sink := frp.NewSink[int]()
	diffs := record(frp.Scan(sink.Stream(), 10, func(acc, v int) int { return acc - v }))

	sink.Send(1)
	sink.Send(2)
	assert.Equal(t, []int{9, 7}, diffs.got)
}

func TestMergePreservesArrivalOrder(t *testing.T) {
	left := frp.NewSink[int]()
	right := frp.NewSink[int]()
	merged := record(left.Stream().Merge(right.Stream()))

	left.Send(1)
	right.Send(2)
	left.Send(3)
	right.Send(4)
	assert.Equal(t, []int{1, 2, 3, 4}, merged.got)
}

func TestMergeDiamondDeliversBothInDependencyOrder(t *testing.T) {
	// Both branches fire in one pass; the merge delivers both
	// occurrences, branch subscription order first.
	//     A
	//   /   \
	//  B     C
	//   \   /
	//     M
	sink := frp.NewSink[int]()
	b := frp.Map(sink.Stream(), func(v int) int { return v + 1 })
	c := frp.Map(sink.Stream(), func(v int) int { return v * 10 })
	m := record(b.Merge(c))

	sink.Send(5)
	assert.Equal(t, []int{6, 50}, m.got)
}

func TestSelfMergeNeverCoalesces(t *testing.T) {
	sink := frp.NewSink[int]()
	s := sink.Stream()
	m := record(s.Merge(s))

	sink.Send(7)
	assert.Equal(t, []int{7, 7}, m.got)
}

func TestInspectPassesThroughUnchanged(t *testing.T) {
	sink := frp.NewSink[int]()
	seen := 0
	taps := record(sink.Stream().Inspect(func(int) { seen++ }))

	sink.Send(9)
	assert.Equal(t, 1, seen)
	assert.Equal(t, []int{9}, taps.got)
}

func TestSplit(t *testing.T) {
	sink := frp.NewSink[int]()
	evens, odds := sink.Stream().Split(func(v int) bool { return v%2 == 0 })
	gotEvens := record(evens)
	gotOdds := record(odds)

	sink.Feed(slices.Values([]int{1, 2, 3, 4, 5}))
	assert.Equal(t, []int{2, 4}, gotEvens.got)
	assert.Equal(t, []int{1, 3, 5}, gotOdds.got)
}

func TestMapNEmitsZeroToMany(t *testing.T) {
	sink := frp.NewSink[int]()
	repeated := record(frp.MapN(sink.Stream(), func(v int, out frp.Sink[int]) {
		for i := 0; i < v; i++ {
			out.Send(v)
		}
	}))

	sink.Send(0)
	sink.Send(2)
	sink.Send(1)
	assert.Equal(t, []int{2, 2, 1}, repeated.got)
}

func TestMapNRetainedSink(t *testing.T) {
	// The sink handed to f is a live handle into the output stream and
	// may be fed after the originating pass finished.
	sink := frp.NewSink[int]()
	var later frp.Sink[int]
	outputs := record(frp.MapN(sink.Stream(), func(v int, out frp.Sink[int]) {
		later = out
	}))

	sink.Send(1)
	require.Empty(t, outputs.got)
	later.Send(42)
	assert.Equal(t, []int{42}, outputs.got)
}

func TestSwitchFollowsLatestInnerStream(t *testing.T) {
	a := frp.NewSink[int]()
	b := frp.NewSink[int]()
	outer := frp.NewSink[frp.Stream[int]]()
	switched := record(frp.Switch(outer.Stream()))

	outer.Send(a.Stream())
	a.Send(1)
	outer.Send(b.Stream())
	a.Send(2) // stale inner stream, ignored
	b.Send(3)
	assert.Equal(t, []int{1, 3}, switched.got)
}

func TestEndToEndPipeline(t *testing.T) {
	// ints -> filter even -> map(x/2) -> fold into a growing sequence.
	sink := frp.NewSink[int]()
	halves := frp.Map(
		sink.Stream().Filter(func(v int) bool { return v%2 == 0 }),
		func(v int) int { return v / 2 },
	)
	seq := frp.Fold(halves, []int(nil), func(acc []int, v int) []int {
		return append(acc, v)
	}).Hold(nil)

	sink.Feed(slices.Values([]int{6, 42, -1}))
	assert.Equal(t, []int{3, 21}, seq.Sample())
}

func TestFeedRunsIndependentPasses(t *testing.T) {
	sink := frp.NewSink[int]()
	held := sink.Stream().Hold(0)
	passes := 0
	sink.Stream().Inspect(func(int) { passes++ })

	sink.Feed(slices.Values([]int{10, 20, 30}))
	assert.Equal(t, 3, passes)
	assert.Equal(t, 30, held.Sample())
}
