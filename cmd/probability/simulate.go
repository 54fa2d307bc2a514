package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hananather/probability"
	"github.com/hananather/probability/distributions"
	"github.com/hananather/probability/samplespace"
	"github.com/hananather/probability/setexpr"
	"github.com/hananather/probability/simulation"
)

const (
	barWidth = 40

	// maxDraws bounds the coins, dice or Bernoulli trials in a single trial.
	maxDraws = 1_000_000

	// maxLambda keeps e^-λ, the stopping point of Poisson sampling, above zero.
	maxLambda = 700
)

func simulateCommand(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	sim := app.Command("simulate", "Run a Monte Carlo experiment and print the histogram of outcomes.")
	trials := sim.Flag("trials", "number of trials").Default("10000").Envar("PROBABILITY_TRIALS").Int()
	workers := sim.Flag("workers", "worker pool size; 0 uses every CPU").Default("0").Int()
	seed := sim.Flag("seed", "random seed").Default("1").Uint64()

	coins := sim.Command("coins", "count heads in repeated fair coin flips")
	flips := coins.Flag("flips", "coins flipped per trial").Default("10").Int()

	dice := sim.Command("dice", "sum repeated dice rolls")
	diceCount := dice.Flag("dice", "dice rolled per trial").Default("2").Int()
	sides := dice.Flag("sides", "sides per die").Default("6").Int()

	binomial := sim.Command("binomial", "count successes in Bernoulli trials")
	n := binomial.Flag("n", "Bernoulli trials per draw").Required().Int()
	p := binomial.Flag("p", "success probability").Required().Float64()

	poisson := sim.Command("poisson", "draw Poisson counts")
	lambda := poisson.Flag("lambda", "rate").Required().Float64()

	event := sim.Command("event", "estimate the probability of an event by sampling outcomes of U={1..8}")
	expr := event.Arg("expr", "set expression naming the event").Required().String()

	return sim, func(input string) int {
		var (
			label string
			trial simulation.Trial
			exact distributions.Discrete
		)
		switch input {
		case coins.FullCommand():
			if *flips < 0 || *flips > maxDraws {
				e.log.Errorf("flips must be between 0 and %d, got %d", maxDraws, *flips)
				return 1
			}
			label = fmt.Sprintf("%d coin flips", *flips)
			trial = simulation.CoinFlips(*flips)
			exact = distributions.Binomial{N: *flips, P: 0.5}
		case dice.FullCommand():
			if *diceCount < 1 || *diceCount > maxDraws || *sides < 1 {
				e.log.Errorf("dice must be between 1 and %d with at least one side each, got %d dice with %d sides",
					maxDraws, *diceCount, *sides)
				return 1
			}
			label = fmt.Sprintf("sum of %d d%d", *diceCount, *sides)
			trial = simulation.DiceSum(*diceCount, *sides)
		case binomial.FullCommand():
			if *n > maxDraws {
				e.log.Errorf("n must be at most %d, got %d", maxDraws, *n)
				return 1
			}
			b, err := distributions.NewBinomial(*n, *p)
			if err != nil {
				e.log.Error(err)
				return 1
			}
			label, trial, exact = b.String(), simulation.BinomialDraws(b), b
		case poisson.FullCommand():
			if *lambda > maxLambda {
				e.log.Errorf("lambda must be at most %d, got %g", maxLambda, *lambda)
				return 1
			}
			d, err := distributions.NewPoisson(*lambda)
			if err != nil {
				e.log.Error(err)
				return 1
			}
			label, trial, exact = d.String(), simulation.PoissonDraws(d), d
		case event.FullCommand():
			ev := setexpr.NewEvaluator(samplespace.Standard())
			s, err := ev.Eval(*expr)
			if err != nil {
				e.log.WithField("expr", *expr).Error(err)
				return 1
			}
			label = fmt.Sprintf("%s = %v (exact P = %.4g)", *expr, s, ev.Space().Probability(s))
			trial = simulation.EventFrequency(ev.Space(), s)
		default:
			e.log.Errorf("unknown experiment %q", input)
			return 2
		}

		cfg := simulation.Config{Trials: *trials, Workers: *workers, Seed: *seed, Logger: e.log}
		h, err := simulation.Run(context.Background(), cfg, trial)
		if err != nil {
			e.log.Error(err)
			return 1
		}
		fmt.Fprintf(e.out, "%s trials of %s, seed %d\n", humanize.Comma(int64(h.Total())), label, *seed)
		printHistogram(e, h)
		if exact != nil {
			keys := h.Keys()
			fmt.Fprintf(e.out, "max deviation from exact pmf %.4f\n", h.MaxDeviation(exact, keys[0], keys[len(keys)-1]))
		}
		return 0
	}
}

func printHistogram(e *env, h simulation.Histogram) {
	most := 0
	for _, k := range h.Keys() {
		most = probability.Max(most, h.Count(k))
	}
	for _, k := range h.Keys() {
		c := h.Count(k)
		bar := strings.Repeat("#", c*barWidth/most)
		fmt.Fprintf(e.out, "%6d %10s %7.4f %s\n", k, humanize.Comma(int64(c)), h.Relative(k), bar)
	}
	fmt.Fprintf(e.out, "mean %.4f  variance %.4f\n", h.Mean(), h.Variance())
}
