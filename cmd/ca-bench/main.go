package main

import (
	"flag"
	"fmt"
	"log"
	"reflect"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/MdMxMyr/Automata-engine/internal/app"
	"github.com/MdMxMyr/Automata-engine/internal/core"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/briansbrain"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/elementary"
	_ "github.com/MdMxMyr/Automata-engine/internal/sims/life"
)

type scenarioResult struct {
	workers int
	elapsed time.Duration
	census  core.Census
	err     error
}

func main() {
	cfg := app.NewConfig()
	cfg.Seed = 1337
	cfg.Generations = 100
	cfg.Bind(flag.CommandLine)
	parallel := flag.Int("parallel", 1, "scenarios run at the same time")
	flag.Parse()
	*parallel = poolSize(*parallel)

	plan, err := cfg.ResolvePlan()
	if err != nil {
		log.Fatalf("plan: %v", err)
	}

	var counts []int
	for w := 1; w <= runtime.NumCPU(); w *= 2 {
		counts = append(counts, w)
	}

	fmt.Printf("Running %d scenarios of %d generations on a %dx%d canvas at %dpx\n",
		len(counts), cfg.Generations, cfg.Height, cfg.Width, cfg.Resolution)

	jobs := make(chan int)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for workers := range jobs {
				results <- runScenario(*cfg, plan, workers)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, w := range counts {
			jobs <- w
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("workers=%d: %v", res.workers, res.err)
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].workers < all[j].workers })
	reference := all[0]
	for _, res := range all[1:] {
		if !reflect.DeepEqual(res.census, reference.census) {
			log.Fatalf("workers=%d diverged from the sequential run", res.workers)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].elapsed < all[j].elapsed })
	fmt.Printf("\nResults (fastest first):\n")
	for i, res := range all {
		perGen := res.elapsed / time.Duration(max(res.census.Generation, 1))
		fmt.Printf("%2d) workers=%-3d total=%-10s per-gen=%s\n",
			i+1, res.workers, res.elapsed.Round(time.Millisecond), perGen.Round(time.Microsecond))
	}

	fmt.Printf("\nFinal census:\n")
	for _, group := range reference.census.Parameters().Groups {
		fmt.Printf("  %s\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("    %-14s %s\n", p.Label, p.Value)
		}
	}
}

// poolSize clamps the scenario pool to at least one worker.
func poolSize(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func runScenario(cfg app.Config, plan app.Plan, workers int) scenarioResult {
	cfg.Workers = workers
	res := scenarioResult{workers: workers}
	sim, err := app.NewSimulation(cfg, plan)
	if err != nil {
		res.err = err
		return res
	}
	start := time.Now()
	for !sim.Done() {
		if _, err := sim.Step(); err != nil {
			res.err = err
			return res
		}
	}
	res.elapsed = time.Since(start)
	res.census = sim.Census()
	return res
}
