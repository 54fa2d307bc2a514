package simulation_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hananather/probability/distributions"
	"github.com/hananather/probability/samplespace"
	"github.com/hananather/probability/simulation"
)

func TestRunRejectsNoTrials(t *testing.T) {
	for _, trials := range []int{0, -5} {
		t.Run(fmt.Sprint(trials), func(t *testing.T) {
			is := is.New(t)
			_, err := simulation.Run(context.Background(), simulation.Config{Trials: trials}, simulation.CoinFlips(1))
			is.True(errors.Is(err, simulation.ErrNoTrials))
		})
	}
}

func TestRunIsDeterministic(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	trial := simulation.DiceSum(2, 6)

	var want simulation.Histogram
	for i, workers := range []int{1, 2, 7, 16} {
		h, err := simulation.Run(ctx, simulation.Config{Trials: 2000, Workers: workers, Seed: 42}, trial)
		is.NoErr(err)
		is.Equal(h.Total(), 2000)
		if i == 0 {
			want = h
			continue
		}
		is.Equal(h.Keys(), want.Keys())
		for _, k := range want.Keys() {
			is.Equal(h.Count(k), want.Count(k)) // same seed, same counts
		}
		is.Equal(h.Mean(), want.Mean())
	}

	other, err := simulation.Run(ctx, simulation.Config{Trials: 2000, Workers: 4, Seed: 43}, trial)
	is.NoErr(err)
	differs := false
	for _, k := range want.Keys() {
		differs = differs || other.Count(k) != want.Count(k)
	}
	is.True(differs) // a different seed gives a different stream
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := simulation.Run(ctx, simulation.Config{Trials: 10000, Workers: 4}, simulation.CoinFlips(10))
	is.True(errors.Is(err, context.Canceled))
}

func TestRunWaitsForTrials(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var started, running atomic.Int64
	trial := func(*rand.Rand) int {
		running.Add(1)
		defer running.Add(-1)
		if started.Add(1) == 50 {
			cancel()
		}
		time.Sleep(time.Millisecond)
		return 0
	}
	_, err := simulation.Run(ctx, simulation.Config{Trials: 100000, Workers: 8}, trial)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(running.Load(), int64(0)) // no trial is still running once Run returns
}

func TestRunLogs(t *testing.T) {
	is := is.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := simulation.Run(context.Background(), simulation.Config{Trials: 10, Workers: 2, Logger: logger},
		simulation.CoinFlips(3))
	is.NoErr(err)
	entry := hook.LastEntry()
	is.True(entry != nil)
	is.Equal(entry.Message, "simulation finished")
	is.Equal(entry.Data["trials"], 10)
	is.Equal(entry.Data["workers"], 2)
}

func TestRunUsesEveryTrial(t *testing.T) {
	is := is.New(t)
	h, err := simulation.Run(context.Background(), simulation.Config{Trials: 500, Workers: 3},
		func(*rand.Rand) int { return 7 })
	is.NoErr(err)
	is.Equal(h.Keys(), []int{7})
	is.Equal(h.Count(7), 500)
	is.Equal(h.Relative(7), 1.0)
	is.Equal(h.Relative(8), 0.0)
	is.Equal(h.Variance(), 0.0)
}

func TestExperiments(t *testing.T) {
	const trials = 20000
	cfg := simulation.Config{Trials: trials, Seed: 7}
	ctx := context.Background()

	t.Run("coin flips", func(t *testing.T) {
		h, err := simulation.Run(ctx, cfg, simulation.CoinFlips(10))
		require.NoError(t, err)
		assert.InDelta(t, 5.0, h.Mean(), 0.1)
		assert.InDelta(t, 2.5, h.Variance(), 0.15)
		for _, k := range h.Keys() {
			assert.True(t, k >= 0 && k <= 10)
		}
	})

	t.Run("binomial matches its pmf", func(t *testing.T) {
		b, err := distributions.NewBinomial(8, 0.3)
		require.NoError(t, err)
		h, err := simulation.Run(ctx, cfg, simulation.BinomialDraws(b))
		require.NoError(t, err)
		assert.InDelta(t, b.Mean(), h.Mean(), 0.05)
		assert.Less(t, h.MaxDeviation(b, 0, 8), 0.02)
	})

	t.Run("poisson matches its pmf", func(t *testing.T) {
		p, err := distributions.NewPoisson(3)
		require.NoError(t, err)
		h, err := simulation.Run(ctx, cfg, simulation.PoissonDraws(p))
		require.NoError(t, err)
		assert.InDelta(t, 3.0, h.Mean(), 0.08)
		assert.InDelta(t, 3.0, h.Variance(), 0.2)
		assert.Less(t, h.MaxDeviation(p, 0, 15), 0.02)
	})

	t.Run("dice sum", func(t *testing.T) {
		h, err := simulation.Run(ctx, cfg, simulation.DiceSum(2, 6))
		require.NoError(t, err)
		keys := h.Keys()
		assert.Equal(t, 2, keys[0])
		assert.Equal(t, 12, keys[len(keys)-1])
		assert.InDelta(t, 7.0, h.Mean(), 0.1)
		assert.InDelta(t, 6.0/36, h.Relative(7), 0.015)
	})

	t.Run("event frequency", func(t *testing.T) {
		space := samplespace.Standard()
		a, _ := space.Event('A')
		h, err := simulation.Run(ctx, cfg, simulation.EventFrequency(space, a))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, h.Keys())
		assert.InDelta(t, space.Probability(a), h.Relative(1), 0.02)

		empty, _ := space.Event(samplespace.EmptySetSymbol)
		h, err = simulation.Run(ctx, cfg, simulation.EventFrequency(space, empty))
		require.NoError(t, err)
		assert.Equal(t, trials, h.Count(0))
	})
}

func TestEmptyHistogram(t *testing.T) {
	var h simulation.Histogram
	assert.True(t, math.IsNaN(h.Mean()))
	assert.True(t, math.IsNaN(h.Variance()))
	assert.Equal(t, 0.0, h.Relative(1))
	assert.Empty(t, h.Keys())
}

func ExampleRun() {
	h, err := simulation.Run(context.Background(), simulation.Config{Trials: 1000, Seed: 1},
		func(*rand.Rand) int { return 1 })
	if err != nil {
		panic(err)
	}
	fmt.Println(h.Keys(), h.Count(1), h.Mean())
	// Output: [1] 1000 1
}
