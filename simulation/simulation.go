// Package simulation runs the textbook's Monte Carlo experiments: coin flips, dice, binomial and Poisson draws, and
// sampling outcomes of a finite space to estimate an event's probability.
//
// A run is a pipeline. Generate emits trial indices, a pooled Map stage runs one trial per index and Reduce counts the
// outcomes into a Histogram. Every trial draws from its own generator seeded by (Seed, index), so a run's histogram
// depends only on its Config and not on the number of workers or their scheduling.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hananather/probability/pipelines"
	"github.com/hananather/probability/tsync"
)

var (
	ErrNoTrials      = errors.New("simulation: number of trials must be positive")
	ErrIncompleteRun = errors.New("simulation: run ended before all trials completed")
)

// Trial performs one random experiment and reports its integer outcome.
type Trial func(r *rand.Rand) int

// Config controls a run.
type Config struct {
	// Trials is the number of times the experiment is repeated.
	Trials int
	// Workers is the size of the worker pool. Zero means runtime.GOMAXPROCS(0).
	Workers int
	// Seed selects the random stream. Equal seeds give equal histograms.
	Seed uint64
	// Logger receives a debug entry per run. Nil discards.
	Logger logrus.FieldLogger
}

type generator struct {
	src *rand.PCG
	r   *rand.Rand
}

var generators = tsync.NewPool(func() *generator {
	src := rand.NewPCG(0, 0)
	return &generator{src: src, r: rand.New(src)}
})

// Run repeats trial cfg.Trials times and returns the histogram of outcomes. If ctx is cancelled first, Run returns
// the context's error.
func Run(ctx context.Context, cfg Config, trial Trial) (Histogram, error) {
	if cfg.Trials <= 0 {
		return Histogram{}, fmt.Errorf("%w: got %d", ErrNoTrials, cfg.Trials)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	// Stage goroutines have all exited by the time Run returns.
	var stages sync.WaitGroup
	defer stages.Wait()
	defer cancel()

	indices := pipelines.Generate(ctx, cfg.Trials, pipelines.WithBuffer(workers), pipelines.WithWaitGroup(&stages))
	outcomes := pipelines.Map(ctx, indices, func(i int) int {
		g := generators.Get()
		defer generators.Put(g)
		g.src.Seed(cfg.Seed, uint64(i))
		return trial(g.r)
	}, pipelines.WithPool(workers), pipelines.WithBuffer(workers), pipelines.WithWaitGroup(&stages))

	h, err := pipelines.Reduce(ctx, outcomes, newHistogram(), Histogram.add)
	if err == nil && h.total != cfg.Trials {
		// Map stops on cancellation and closes its output, which Reduce sees as a normal end.
		err = ctx.Err()
		if err == nil {
			err = ErrIncompleteRun
		}
	}
	if err != nil {
		return Histogram{}, err
	}

	log.WithFields(logrus.Fields{
		"trials":   cfg.Trials,
		"workers":  workers,
		"seed":     cfg.Seed,
		"outcomes": len(h.counts),
		"elapsed":  time.Since(start),
	}).Debug("simulation finished")
	return h, nil
}

// Histogram counts how often each outcome occurred.
type Histogram struct {
	counts map[int]int
	total  int
}

func newHistogram() Histogram {
	return Histogram{counts: make(map[int]int)}
}

func (h Histogram) add(outcome int) Histogram {
	h.counts[outcome]++
	h.total++
	return h
}

// Count returns how many trials produced outcome k.
func (h Histogram) Count(k int) int { return h.counts[k] }

// Total returns the number of trials.
func (h Histogram) Total() int { return h.total }

// Relative returns the fraction of trials which produced outcome k.
func (h Histogram) Relative(k int) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.counts[k]) / float64(h.total)
}

// Keys returns the observed outcomes in ascending order.
func (h Histogram) Keys() []int {
	keys := make([]int, 0, len(h.counts))
	for k := range h.counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Mean returns the sample mean of the outcomes. Outcomes are summed in ascending order so equal histograms give
// identical means.
func (h Histogram) Mean() float64 {
	if h.total == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, k := range h.Keys() {
		sum += float64(k) * float64(h.counts[k])
	}
	return sum / float64(h.total)
}

// Variance returns the population variance of the outcomes.
func (h Histogram) Variance() float64 {
	if h.total == 0 {
		return math.NaN()
	}
	mean := h.Mean()
	sum := 0.0
	for _, k := range h.Keys() {
		d := float64(k) - mean
		sum += d * d * float64(h.counts[k])
	}
	return sum / float64(h.total)
}
