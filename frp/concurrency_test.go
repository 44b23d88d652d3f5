package frp_test

import (
	"sync"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/streamparty/frp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentSendsOnDisjointGraphs(t *testing.T) {
	const n = 10_000

	a := frp.NewSink[int]()
	b := frp.NewSink[int]()
	sumA := frp.Fold(a.Stream(), 0, func(acc, v int) int { return acc + v }).Hold(0)
	sumB := frp.Fold(b.Stream(), 0, func(acc, v int) int { return acc + v }).Hold(0)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= n; i++ {
			a.Send(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 1; i <= n; i++ {
			b.Send(i)
		}
	}()
	wg.Wait()

	want := n * (n + 1) / 2
	assert.Equal(t, want, sumA.Sample())
	assert.Equal(t, want, sumB.Sample())
}

type pair struct {
	a, b int64
}

func TestValueCellIsNeverTorn(t *testing.T) {
	const n = 50_000

	sink := frp.NewSink[pair]()
	held := sink.Stream().Hold(pair{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := int64(1); i <= n; i++ {
			sink.Send(pair{a: i, b: i})
		}
	}()

	for {
		p := held.Sample()
		require.Equal(t, p.a, p.b, "sampled a half-written value")
		select {
		case <-done:
			p = held.Sample()
			assert.Equal(t, int64(n), p.a)
			assert.Equal(t, p.a, p.b)
			return
		default:
		}
	}
}

func TestConcurrentMergeLosesAndDuplicatesNothing(t *testing.T) {
	const n = 5_000

	left := frp.NewSink[int]()
	right := frp.NewSink[int]()
	merged := left.Stream().Merge(right.Stream())

	var mu sync.Mutex
	var got []int
	merged.Inspect(func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			left.Send(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := n; i < 2*n; i++ {
			right.Send(i)
		}
	}()
	wg.Wait()

	require.Len(t, got, 2*n)
	distinct := mapset.NewSet(got...)
	assert.Equal(t, 2*n, distinct.Cardinality())
	merged.Drop()
}

func TestConcurrentSendsIntoSharedFold(t *testing.T) {
	// Two producers hammer one stateful node; the accumulator must see
	// every occurrence exactly once.
	const n = 5_000

	left := frp.NewSink[int]()
	right := frp.NewSink[int]()
	count := frp.Fold(left.Stream().Merge(right.Stream()), 0,
		func(acc, v int) int { return acc + 1 },
	).Hold(0)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			left.Send(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			right.Send(i)
		}
	}()
	wg.Wait()

	assert.Equal(t, 2*n, count.Sample())
}
