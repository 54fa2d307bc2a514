// Package probability holds the computational core of an interactive probability textbook: the set-expression
// language behind the Venn-diagram tools (setexpr, samplespace), the distributions evaluated for plots
// (distributions), Monte Carlo experiments (simulation), the chapter route table (catalog) and the section navigation
// controller (journey).
//
// This package itself only carries small numeric helpers shared by the others.
package probability

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~byte
}

func Min[T Number](x, y T) T {
	if x < y {
		return x
	}
	return y
}

func Max[T Number](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp limits x to the closed interval [lo, hi]. If lo > hi, lo wins.
func Clamp[T Number](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}
