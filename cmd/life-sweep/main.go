package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"lifegrid/internal/app"
	"lifegrid/pkg/sims/life"
)

type scenario struct {
	pattern string
	policy  life.EdgePolicy
}

func main() {
	steps := flag.Int("steps", 500, "maximum generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides app.Overrides
	flag.Var(&overrides, "set", "simulation override in key=value form (repeatable)")
	flag.Parse()

	cfg := life.FromMap(overrides.Map())
	catalog := life.DefaultCatalog()

	var scenarios []scenario
	for _, name := range catalog.Names() {
		for _, policy := range []life.EdgePolicy{life.Bounded, life.Toroidal} {
			scenarios = append(scenarios, scenario{pattern: name, policy: policy})
		}
	}

	fmt.Printf("Sweeping %d scenarios on a %dx%d grid (%d workers, up to %d steps)\n", len(scenarios), cfg.Size, cfg.Size, *workers, *steps)

	results := make([]life.CensusResult, len(scenarios))
	var mu sync.Mutex
	done := 0

	var g errgroup.Group
	g.SetLimit(max(*workers, 1))
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := life.Census(cfg, catalog, sc.pattern, sc.policy, *steps)
			if err != nil {
				return fmt.Errorf("%s/%s: %w", sc.pattern, sc.policy, err)
			}
			results[i] = res
			mu.Lock()
			done++
			if done%4 == 0 || done == len(scenarios) {
				fmt.Printf("  processed %d/%d\n", done, len(scenarios))
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		fmt.Println(res)
	}
}
