package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"falling-sand/internal/sims/sand"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type scenario struct {
	width int
	seed  int64
}

func (s scenario) String() string {
	return fmt.Sprintf("w=%d seed=%d", s.width, s.seed)
}

type scenarioResult struct {
	scenario scenario
	result   sand.PourResult
	err      error
}

func main() {
	pour := flag.Int("pour", 400, "ticks to pour one grain per tick")
	steps := flag.Int("steps", 2000, "ticks to wait for the pile to settle")
	seeds := flag.Int("seeds", 8, "seeds to run per width")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	widths := flag.String("widths", "40,80,160", "comma-separated grid widths")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	raw := sand.DefaultConfig().Map()
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring malformed override %q", kv)
			continue
		}
		raw[parts[0]] = parts[1]
	}
	baseCfg := sand.FromMap(raw)

	var sets []scenario
	for _, field := range strings.Split(*widths, ",") {
		var w int
		if _, err := fmt.Sscanf(strings.TrimSpace(field), "%d", &w); err != nil || w <= 0 {
			log.Fatalf("bad width %q", field)
		}
		for s := 0; s < *seeds; s++ {
			sets = append(sets, scenario{width: w, seed: baseCfg.Seed + int64(s)})
		}
	}

	fmt.Printf("Running %d pours (%d workers, %d pour ticks, %d settle ticks, height %d)\n",
		len(sets), *workers, *pour, *steps, baseCfg.Height)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				cfg := baseCfg
				cfg.Width = sc.width
				cfg.Seed = sc.seed
				res, err := sand.PourAndSettle(cfg, *pour, *steps)
				results <- scenarioResult{scenario: sc, result: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.scenario, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].scenario.width != all[j].scenario.width {
			return all[i].scenario.width < all[j].scenario.width
		}
		return all[i].scenario.seed < all[j].scenario.seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		r := res.result
		settle := "unsettled"
		if r.SettleStep >= 0 {
			settle = fmt.Sprintf("settled+%d", r.SettleStep)
		}
		fmt.Printf("%-18s poured=%d grains=%d peak=%d footprint=%d %s\n",
			res.scenario, r.Poured, r.Grains, r.PeakHeight, r.Footprint, settle)
	}
}
