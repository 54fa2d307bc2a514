package distributions

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Normal is the Gaussian distribution with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// StandardNormal is N(0, 1).
var StandardNormal = Normal{Mu: 0, Sigma: 1}

// NewNormal validates a finite mu and sigma > 0.
func NewNormal(mu, sigma float64) (Normal, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Normal{}, fmt.Errorf("%w: mu = %v must be finite", ErrInvalidParameter, mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return Normal{}, fmt.Errorf("%w: sigma = %v must be positive and finite", ErrInvalidParameter, sigma)
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

func (n Normal) PDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return math.Exp(-z*z/2) / (n.Sigma * math.Sqrt(2*math.Pi))
}

func (n Normal) CDF(x float64) float64 {
	return 0.5 * math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2))
}

// Quantile is the inverse of CDF. It returns -Inf for p = 0, +Inf for p = 1 and NaN outside [0, 1].
func (n Normal) Quantile(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	return n.Mu + n.Sigma*math.Sqrt2*math.Erfinv(2*p-1)
}

func (n Normal) Mean() float64     { return n.Mu }
func (n Normal) Variance() float64 { return n.Sigma * n.Sigma }
func (n Normal) String() string    { return fmt.Sprintf("Normal(mu=%g, sigma=%g)", n.Mu, n.Sigma) }

// Gamma is the gamma distribution in the shape/rate parameterisation. Shape 1 gives the exponential distribution.
type Gamma struct {
	Shape float64
	Rate  float64
}

// NewGamma validates shape > 0 and rate > 0.
func NewGamma(shape, rate float64) (Gamma, error) {
	if !(shape > 0) || math.IsInf(shape, 1) {
		return Gamma{}, fmt.Errorf("%w: shape = %v must be positive and finite", ErrInvalidParameter, shape)
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Gamma{}, fmt.Errorf("%w: rate = %v must be positive and finite", ErrInvalidParameter, rate)
	}
	return Gamma{Shape: shape, Rate: rate}, nil
}

func (g Gamma) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case g.Shape < 1:
			return math.Inf(1)
		case g.Shape == 1:
			return g.Rate
		}
		return 0
	}
	lg, _ := math.Lgamma(g.Shape)
	return math.Exp(g.Shape*math.Log(g.Rate) + (g.Shape-1)*math.Log(x) - g.Rate*x - lg)
}

func (g Gamma) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(g.Shape, g.Rate*x)
}

func (g Gamma) Mean() float64     { return g.Shape / g.Rate }
func (g Gamma) Variance() float64 { return g.Shape / (g.Rate * g.Rate) }
func (g Gamma) String() string    { return fmt.Sprintf("Gamma(shape=%g, rate=%g)", g.Shape, g.Rate) }

// StudentT is Student's t distribution with DF degrees of freedom.
type StudentT struct {
	DF float64
}

// NewStudentT validates df > 0.
func NewStudentT(df float64) (StudentT, error) {
	if !(df > 0) || math.IsInf(df, 1) {
		return StudentT{}, fmt.Errorf("%w: df = %v must be positive and finite", ErrInvalidParameter, df)
	}
	return StudentT{DF: df}, nil
}

func (t StudentT) PDF(x float64) float64 {
	nu := t.DF
	a, _ := math.Lgamma((nu + 1) / 2)
	b, _ := math.Lgamma(nu / 2)
	return math.Exp(a - b - 0.5*math.Log(nu*math.Pi) - (nu+1)/2*math.Log1p(x*x/nu))
}

// CDF uses the tail 0.5·I_{ν/(ν+x²)}(ν/2, 1/2).
func (t StudentT) CDF(x float64) float64 {
	nu := t.DF
	tail := 0.5 * mathext.RegIncBeta(nu/2, 0.5, nu/(nu+x*x))
	if x > 0 {
		return 1 - tail
	}
	return tail
}

// Mean is 0 for DF > 1 and undefined (NaN) otherwise.
func (t StudentT) Mean() float64 {
	if t.DF > 1 {
		return 0
	}
	return math.NaN()
}

// Variance is DF/(DF-2) for DF > 2, infinite for 1 < DF ≤ 2 and undefined (NaN) otherwise.
func (t StudentT) Variance() float64 {
	switch {
	case t.DF > 2:
		return t.DF / (t.DF - 2)
	case t.DF > 1:
		return math.Inf(1)
	}
	return math.NaN()
}

func (t StudentT) String() string { return fmt.Sprintf("StudentT(df=%g)", t.DF) }

// ZScore standardises x against a normal with the given mean and standard deviation.
func ZScore(x, mu, sigma float64) float64 {
	return (x - mu) / sigma
}
