package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/streamparty/frp"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkChains(true)
	benchmarkFolds(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

// w parallel map chains of depth h off a single sink, each held at the end.
func benchmarkChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Stream Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sink := frp.NewSink[int]()
			held := make([]frp.Signal[int], 0, w)
			for i := 0; i < w; i++ {
				last := sink.Stream()
				for j := 0; j < h; j++ {
					last = frp.Map(last, func(v int) int { return v + 1 })
				}
				held = append(held, last.Hold(0))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				sink.Send(i)
				tach.AddTime(time.Since(start))
			}
			if got, want := held[0].Sample(), iters-1+h; got != want {
				log.Fatalf("bad propagation result: got %d want %d", got, want)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// One fold per chain so every pass carries state updates, not just maps.
func benchmarkFolds(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Fold Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sink := frp.NewSink[int]()
		held := make([]frp.Signal[int], 0, w)
		for i := 0; i < w; i++ {
			sum := frp.Fold(sink.Stream(), 0, func(acc, v int) int { return acc + v })
			held = append(held, sum.Hold(0))
		}

		total := 0
		for i := 0; i < iters; i++ {
			start := time.Now()
			sink.Send(i)
			tach.AddTime(time.Since(start))
			total += i
		}
		if got := held[0].Sample(); got != total {
			log.Fatalf("bad fold result: got %d want %d", got, total)
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("fold: %d folds", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
