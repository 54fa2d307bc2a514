package distributions

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Binomial counts successes in N independent trials with success probability P.
type Binomial struct {
	N int
	P float64
}

// NewBinomial validates n ≥ 0 and 0 ≤ p ≤ 1.
func NewBinomial(n int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, fmt.Errorf("%w: n = %d must be non-negative", ErrInvalidParameter, n)
	}
	if !(p >= 0 && p <= 1) {
		return Binomial{}, fmt.Errorf("%w: p = %v must lie in [0, 1]", ErrInvalidParameter, p)
	}
	return Binomial{N: n, P: p}, nil
}

func (b Binomial) PMF(k int) float64 {
	if k < 0 || k > b.N {
		return 0
	}
	switch b.P {
	case 0:
		return indicator(k == 0)
	case 1:
		return indicator(k == b.N)
	}
	logp := lchoose(b.N, k) + float64(k)*math.Log(b.P) + float64(b.N-k)*math.Log1p(-b.P)
	return math.Exp(logp)
}

// CDF uses P(X ≤ k) = I_{1-p}(n-k, k+1).
func (b Binomial) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= b.N {
		return 1
	}
	if b.P == 0 {
		return 1
	}
	if b.P == 1 {
		return 0
	}
	return mathext.RegIncBeta(float64(b.N-k), float64(k+1), 1-b.P)
}

func (b Binomial) Mean() float64     { return float64(b.N) * b.P }
func (b Binomial) Variance() float64 { return float64(b.N) * b.P * (1 - b.P) }
func (b Binomial) String() string    { return fmt.Sprintf("Binomial(n=%d, p=%g)", b.N, b.P) }

// Poisson counts events occurring at rate Lambda per interval.
type Poisson struct {
	Lambda float64
}

// NewPoisson validates lambda > 0.
func NewPoisson(lambda float64) (Poisson, error) {
	if !(lambda > 0) || math.IsInf(lambda, 1) {
		return Poisson{}, fmt.Errorf("%w: lambda = %v must be positive and finite", ErrInvalidParameter, lambda)
	}
	return Poisson{Lambda: lambda}, nil
}

func (p Poisson) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	lg, _ := math.Lgamma(float64(k + 1))
	return math.Exp(float64(k)*math.Log(p.Lambda) - p.Lambda - lg)
}

// CDF uses P(X ≤ k) = Q(k+1, λ), the upper regularised incomplete gamma function.
func (p Poisson) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return mathext.GammaIncRegComp(float64(k+1), p.Lambda)
}

func (p Poisson) Mean() float64     { return p.Lambda }
func (p Poisson) Variance() float64 { return p.Lambda }
func (p Poisson) String() string    { return fmt.Sprintf("Poisson(lambda=%g)", p.Lambda) }

func lchoose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
