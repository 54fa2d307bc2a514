package distributions

import (
	"fmt"
	"math"
)

// MaxPoints bounds the number of points Sample, PMFPoints and CDFPoints return.
const MaxPoints = 1 << 20

// Sample evaluates f at n evenly spaced points from lo to hi inclusive.
func Sample(f func(float64) float64, lo, hi float64, n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	if n > MaxPoints {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyPoints, n, MaxPoints)
	}
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	step := (hi - lo) / float64(n-1)
	points := make([]Point, n)
	for i := range points {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi // avoid accumulated rounding at the right edge
		}
		points[i] = Point{X: x, Y: f(x)}
	}
	return points, nil
}

// Points samples the density of d at n evenly spaced points from lo to hi inclusive.
func Points(d Continuous, lo, hi float64, n int) ([]Point, error) {
	return Sample(d.PDF, lo, hi, n)
}

// PMFPoints returns P(X = k) for every integer k from lo to hi inclusive.
func PMFPoints(d Discrete, lo, hi int) ([]Point, error) {
	if err := checkIntRange(lo, hi); err != nil {
		return nil, err
	}
	points := make([]Point, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		points = append(points, Point{X: float64(k), Y: d.PMF(k)})
	}
	return points, nil
}

// CDFPoints returns P(X ≤ k) for every integer k from lo to hi inclusive.
func CDFPoints(d Discrete, lo, hi int) ([]Point, error) {
	if err := checkIntRange(lo, hi); err != nil {
		return nil, err
	}
	points := make([]Point, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		points = append(points, Point{X: float64(k), Y: d.CDF(k)})
	}
	return points, nil
}

// checkIntRange rejects reversed ranges and ranges of more than MaxPoints integers. hi-lo overflows to a negative
// number only when the range is far wider than MaxPoints.
func checkIntRange(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	if width := hi - lo; width < 0 || width >= MaxPoints {
		return fmt.Errorf("%w: [%d, %d] spans more than %d integers", ErrTooManyPoints, lo, hi, MaxPoints)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
