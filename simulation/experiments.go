package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/hananather/probability/distributions"
	"github.com/hananather/probability/samplespace"
	"github.com/hananather/probability/sets"
)

// CoinFlips counts heads in n fair coin flips.
func CoinFlips(n int) Trial {
	return BinomialDraws(distributions.Binomial{N: n, P: 0.5})
}

// BinomialDraws counts successes in b.N Bernoulli(b.P) trials.
func BinomialDraws(b distributions.Binomial) Trial {
	return func(r *rand.Rand) int {
		successes := 0
		for i := 0; i < b.N; i++ {
			if r.Float64() < b.P {
				successes++
			}
		}
		return successes
	}
}

// PoissonDraws samples a Poisson count by multiplying uniforms until the product drops below e^-λ.
// It is meant for the small rates used in lessons.
func PoissonDraws(p distributions.Poisson) Trial {
	limit := math.Exp(-p.Lambda)
	return func(r *rand.Rand) int {
		k := 0
		prod := r.Float64()
		for prod > limit {
			k++
			prod *= r.Float64()
		}
		return k
	}
}

// DiceSum rolls k dice with the given number of sides and returns the total.
func DiceSum(k, sides int) Trial {
	return func(r *rand.Rand) int {
		total := 0
		for i := 0; i < k; i++ {
			total += 1 + r.IntN(sides)
		}
		return total
	}
}

// EventFrequency draws one outcome of space uniformly and returns 1 if it lies in event, 0 otherwise. The relative
// frequency of 1 estimates the event's probability.
func EventFrequency(space *samplespace.Space, event sets.Set[int]) Trial {
	outcomes := space.Universe().Elems()
	return func(r *rand.Rand) int {
		if event.Contains(outcomes[r.IntN(len(outcomes))]) {
			return 1
		}
		return 0
	}
}

// MaxDeviation returns the largest absolute difference between the histogram's relative frequencies and d's mass
// function over the outcomes in [lo, hi].
func (h Histogram) MaxDeviation(d distributions.Discrete, lo, hi int) float64 {
	worst := 0.0
	for k := lo; k <= hi; k++ {
		worst = math.Max(worst, math.Abs(h.Relative(k)-d.PMF(k)))
	}
	return worst
}
