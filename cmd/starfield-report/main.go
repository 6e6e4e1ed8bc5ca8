package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/starfield/internal/config"
	"github.com/iburimskiy/starfield/internal/starfield"
)

type runStats struct {
	runIndex int
	seed     int64

	population []float64
	peak       int
	final      int
	spawned    int
	removed    int
	bounces    int
	violations int
	overLimit  int
	tailErrors int
}

type options struct {
	runs     int
	frames   int
	seedBase int64
	seedStep int64
	width    float64
	height   float64
	pointer  bool
	params   starfield.Params
}

func main() {
	opts := options{params: starfield.DefaultParams()}
	var logLevel string

	flag.IntVar(&opts.runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&opts.frames, "frames", 3600, "frames per run")
	flag.Int64Var(&opts.seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&opts.width, "width", config.WindowWidth, "canvas width")
	flag.Float64Var(&opts.height, "height", config.WindowHeight, "canvas height")
	flag.BoolVar(&opts.pointer, "pointer", false, "hold the pointer at the canvas centre")
	flag.IntVar(&opts.params.ParticleLimit, "limit", opts.params.ParticleLimit, "population target")
	flag.IntVar(&opts.params.TailLength, "tail", opts.params.TailLength, "trail length")
	flag.BoolVar(&opts.params.Decay, "decay", opts.params.Decay, "enable the decay sub-step")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Parse()

	log, err := config.NewLogger(logLevel, os.Stderr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if opts.runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if opts.frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	fmt.Printf("=== Headless Starfield Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d canvas=%.0fx%.0f pointer=%t\n",
		opts.runs, opts.frames, opts.seedBase, opts.seedStep, opts.width, opts.height, opts.pointer)
	fmt.Printf("settings: %s\n\n", config.Describe(opts.params))

	all := make([]runStats, 0, opts.runs)
	for i := 0; i < opts.runs; i++ {
		seed := opts.seedBase + int64(i)*opts.seedStep
		rs := runOnce(i+1, seed, opts)
		log.WithFields(logrus.Fields{"run": rs.runIndex, "seed": seed, "final": rs.final}).Debug("run complete")
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all, opts.params.ParticleLimit)
	fmt.Println()
	fmt.Println(asciigraph.Plot(all[0].population,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("population, run 1 (seed=%d)", all[0].seed))))
}

func runOnce(runIndex int, seed int64, opts options) runStats {
	sim := starfield.NewSimulation(opts.width, opts.height, opts.params, starfield.NewSeededRNG(seed))
	if opts.pointer {
		sim.ObservePointer(opts.width/2, opts.height/2)
	}

	rs := runStats{
		runIndex:   runIndex,
		seed:       seed,
		population: make([]float64, 0, opts.frames),
	}
	for i := 0; i < opts.frames; i++ {
		f := sim.Tick()
		rs.record(f.Stats, sim, opts.params)
	}
	return rs
}

// record folds one frame into the run totals and checks the invariants.
func (rs *runStats) record(st starfield.Stats, sim *starfield.Simulation, p starfield.Params) {
	rs.population = append(rs.population, float64(st.Population))
	rs.final = st.Population
	if st.Population > rs.peak {
		rs.peak = st.Population
	}
	if st.Population > p.ParticleLimit {
		rs.overLimit++
	}
	rs.spawned += st.Spawned
	rs.removed += st.Removed
	rs.bounces += st.Bounces

	canvas := sim.Canvas()
	for _, q := range sim.Particles() {
		if !starfield.InBounds(q, canvas) {
			rs.violations++
		}
		if len(q.History) > p.TailLength {
			rs.tailErrors++
		}
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("population: peak=%d final=%d first_full=%d\n", rs.peak, rs.final, firstFrameAt(rs.population, rs.peak))
	fmt.Printf("totals: spawned=%d removed=%d bounces=%d\n", rs.spawned, rs.removed, rs.bounces)
	fmt.Printf("invariants: bounds_violations=%d over_limit_frames=%d tail_overflows=%d\n\n",
		rs.violations, rs.overLimit, rs.tailErrors)
}

func printAggregate(all []runStats, limit int) {
	if len(all) == 0 {
		return
	}
	var spawned, removed, bounces, broken int
	for _, rs := range all {
		spawned += rs.spawned
		removed += rs.removed
		bounces += rs.bounces
		if rs.violations > 0 || rs.overLimit > 0 || rs.tailErrors > 0 {
			broken++
		}
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate (%d runs, limit=%d) ===\n", len(all), limit)
	fmt.Printf("mean: spawned=%.1f removed=%.1f bounces=%.1f\n",
		float64(spawned)/n, float64(removed)/n, float64(bounces)/n)
	fmt.Printf("runs_with_invariant_breaks=%d\n", broken)
}

// firstFrameAt returns the 1-based frame where the series first reaches v,
// or -1.
func firstFrameAt(series []float64, v int) int {
	for i, x := range series {
		if int(x) >= v {
			return i + 1
		}
	}
	return -1
}
