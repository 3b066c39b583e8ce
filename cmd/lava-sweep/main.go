package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"volcano/internal/app"
	"volcano/internal/terrain"
)

type seedResult struct {
	seed         int64
	peak         float32
	craterRadius float32
	lavaVertices int
	flows        int
	elapsed      time.Duration
	err          error
}

func (r seedResult) String() string {
	return fmt.Sprintf("seed=%d peak=%.1f crater=%.1f lava=%d flows=%d (%s)",
		r.seed, r.peak, r.craterRadius, r.lavaVertices, r.flows, r.elapsed.Round(time.Millisecond))
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	seeds := flag.Int("seeds", 32, "number of seeds to generate")
	start := flag.Int64("start", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to list")
	var overrides app.KVList
	flag.Var(&overrides, "set", "terrain parameter override in key=value form (repeatable)")
	flag.Parse()

	base := terrain.FromMap(overrides.Map())
	if _, err := terrain.New(base); err != nil {
		log.Fatalf("terrain: %v", err)
	}
	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Sweeping %d seeds on a %d grid (%d workers)\n", *seeds, base.GridSize, *workers)

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *start + int64(i)
		}
		close(jobs)
	}()

	began := time.Now()
	var all []seedResult
	var failed int
	var lavaTotal int
	for res := range results {
		if res.err != nil {
			failed++
			log.Printf("seed %d: %v", res.seed, res.err)
			continue
		}
		all = append(all, res)
		lavaTotal += res.lavaVertices
		if res.lavaVertices == 0 {
			fmt.Printf("No lava for seed %d, emitters fall back to the ash point\n", res.seed)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].peak > all[j].peak })

	fmt.Printf("\nTop %d by peak height (elapsed %s):\n", *top, time.Since(began).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
	if len(all) > 0 {
		fmt.Printf("\nLowest: %s\n", all[len(all)-1])
		fmt.Printf("Mean lava vertices: %.1f over %d seeds", float64(lavaTotal)/float64(len(all)), len(all))
		if failed > 0 {
			fmt.Printf(", %d failed", failed)
		}
		fmt.Println()
	}
}

func runSeed(base terrain.Config, seed int64) seedResult {
	cfg := base
	cfg.Seed = seed
	res := seedResult{seed: seed}

	began := time.Now()
	g, err := terrain.NewWithConfig(cfg)
	if err != nil {
		res.err = err
		return res
	}
	g.SetLogger(nil)
	g.AutoComplete()
	res.elapsed = time.Since(began)

	_, _, res.peak = g.Field().MaxTarget()
	if c := g.Crater(); c != nil {
		res.craterRadius = c.Radius
	}
	res.lavaVertices = len(g.Lava())
	res.flows = g.FlowsCarved()
	return res
}
