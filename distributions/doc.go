// Package distributions implements the closed-form probability distributions plotted throughout the textbook:
// binomial and Poisson (discrete), normal, gamma and Student's t (continuous).
//
// Every distribution is a small value type built by a validating constructor:
//
//	b, err := distributions.NewBinomial(10, 0.5)
//	p := b.PMF(5) // 0.2461
//
// Densities and mass functions are total: arguments outside the support yield 0 rather than an error. CDFs of the
// continuous distributions use the regularised incomplete beta and gamma functions from gonum's mathext package.
//
// Points and PMFPoints sample a distribution on a grid, which is what the charts draw.
package distributions
