package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/streamparty/frp"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type fanoutConfig struct {
	name       string
	taps       int    // inspect taps hanging off the merged stream
	iterations int64  // occurrences pushed through the graph
	repeats    int    // best-of runs
	checksum   uint64 // expected digest of the merged output, 0 to skip
}

func main() {
	log.Print("Starting fanout benchmark, please wait...")
	defer log.Print("Finished fanout benchmark")

	cfgs := []fanoutConfig{
		{name: "narrow", taps: 1, iterations: 1_000_000, repeats: 5},
		{name: "wide", taps: 100, iterations: 100_000, repeats: 5},
		{name: "very wide", taps: 1_000, iterations: 10_000, repeats: 5},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "taps", "nTimes", "time", "updateRate", "digest", "generations",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		best := time.Hour
		var digest uint64
		for i := 0; i < cfg.repeats; i++ {
			d, dur := runOnce(cfg)
			if digest != 0 && d != digest {
				log.Fatalf("%s: digest changed between runs: %x vs %x", cfg.name, d, digest)
			}
			digest = d
			if dur < best {
				best = dur
			}
		}
		if cfg.checksum != 0 && digest != cfg.checksum {
			log.Fatalf("%s: digest mismatch: got %x want %x", cfg.name, digest, cfg.checksum)
		}

		updateRate := float64(cfg.iterations) * float64(cfg.taps) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.taps)),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best),
			humanize.Comma(int64(updateRate)),
			fmt.Sprintf("%016x", digest),
			humanize.Comma(int64(frp.Generations())),
		})
	}
	table.Render()
}

// runOnce builds a split/merge diamond with cfg.taps observers on the
// merged stream, pushes cfg.iterations values through it and digests
// everything the first tap observed.
func runOnce(cfg fanoutConfig) (digest uint64, duration time.Duration) {
	sink := frp.NewSink[int64]()
	evens, odds := sink.Stream().Split(func(v int64) bool { return v%2 == 0 })
	halved := frp.Map(evens, func(v int64) int64 { return v / 2 })
	negated := frp.Map(odds, func(v int64) int64 { return -v })
	merged := halved.Merge(negated)

	hasher := xxhash.New()
	var buf [8]byte
	merged = merged.Inspect(func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		hasher.Write(buf[:])
	})
	for i := 1; i < cfg.taps; i++ {
		merged = merged.Inspect(func(v int64) {})
	}

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		sink.Send(i)
	}
	return hasher.Sum64(), time.Since(start)
}
