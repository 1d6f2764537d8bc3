package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"mad-life/internal/logging"
	"mad-life/pkg/core"
	"mad-life/pkg/life"
)

type scenario struct {
	mode    life.Mode
	rule    string
	size    int
	workers int
}

func (s scenario) String() string {
	label := s.mode.String()
	if s.mode == life.RuleBased {
		label = "RULE(" + s.rule + ")"
	}
	return fmt.Sprintf("%-14s %4dx%-4d workers=%d", label, s.size, s.size, s.workers)
}

type result struct {
	scenario   scenario
	elapsed    time.Duration
	population int
	err        error
}

func (r result) gensPerSecond(gens int) float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(gens) / r.elapsed.Seconds()
}

func main() {
	gens := flag.Int("gens", 200, "generations to run per scenario")
	sizes := flag.String("sizes", "64,256", "comma-separated square grid sizes")
	workerList := flag.String("workers", "1,2,4,"+strconv.Itoa(runtime.NumCPU()), "comma-separated worker counts per grid")
	parallel := flag.Int("parallel", 1, "scenarios run at once (values above 1 skew timings)")
	density := flag.Float64("density", 0.35, "initial fraction of live cells")
	seed := flag.Int64("seed", 1337, "random soup seed")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := logging.New(os.Stderr, *level, "life-bench")
	sizeValues, err := parseInts(*sizes)
	if err != nil {
		logger.Fatal("parse -sizes", "err", err)
	}
	workerValues, err := parseInts(*workerList)
	if err != nil {
		logger.Fatal("parse -workers", "err", err)
	}

	var scenarios []scenario
	for _, mode := range []life.Mode{life.Basic, life.Aging, life.RuleBased, life.Custom} {
		for _, size := range sizeValues {
			for _, w := range workerValues {
				scenarios = append(scenarios, scenario{mode: mode, rule: "B36/S23", size: size, workers: w})
			}
		}
	}

	describeHost(logger)
	fmt.Printf("Running %d scenarios (%d generations, %d at once)\n", len(scenarios), *gens, *parallel)

	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < max(*parallel, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *gens, *density, *seed)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		if res.err != nil {
			logger.Error("scenario failed", "scenario", res.scenario, "err", res.err)
			continue
		}
		logger.Debug("scenario done", "scenario", res.scenario, "elapsed", res.elapsed)
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].scenario, all[j].scenario
		if a.mode != b.mode {
			return a.mode < b.mode
		}
		if a.size != b.size {
			return a.size < b.size
		}
		return a.workers < b.workers
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%s  %10s  %9.1f gen/s  population=%d\n",
			res.scenario, res.elapsed.Round(time.Microsecond), res.gensPerSecond(*gens), res.population)
	}
}

func runScenario(sc scenario, gens int, density float64, seed int64) result {
	res := result{scenario: sc}
	g, err := life.New(life.Config{Rows: sc.size, Cols: sc.size, Mode: sc.mode, Rule: sc.rule, Workers: sc.workers})
	if err != nil {
		res.err = err
		return res
	}
	if err := g.Initialize(core.RandomSeeds(seed, sc.size, sc.size, sc.mode, density)); err != nil {
		res.err = err
		return res
	}
	start := time.Now()
	for i := 0; i < gens; i++ {
		g.Update()
	}
	res.elapsed = time.Since(start)
	res.population = g.Population()
	return res
}

func describeHost(logger *log.Logger) {
	logical, err := cpu.Counts(true)
	if err != nil {
		logger.Warn("cpu count", "err", err)
	}
	model := "unknown"
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		model = infos[0].ModelName
	}
	var total uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		total = vm.Total
	}
	logger.Info("host", "cpu", model, "logical", logical, "memory_mib", total>>20, "gomaxprocs", runtime.GOMAXPROCS(0))
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("value %d must be positive", n)
		}
		out = append(out, n)
	}
	return out, nil
}
