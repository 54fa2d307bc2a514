package distributions

// Distribution is implemented by every distribution in this package.
type Distribution interface {
	Mean() float64
	Variance() float64
	String() string
}

// Discrete is a distribution over the integers.
type Discrete interface {
	Distribution
	// PMF returns P(X = k).
	PMF(k int) float64
	// CDF returns P(X ≤ k).
	CDF(k int) float64
}

// Continuous is a distribution over the reals.
type Continuous interface {
	Distribution
	// PDF returns the density at x.
	PDF(x float64) float64
	// CDF returns P(X ≤ x).
	CDF(x float64) float64
}

// Point is one sample of a curve.
type Point struct {
	X float64
	Y float64
}
