package distributions

import "errors"

// Every message is prefixed with "distributions:"; callers match with errors.Is.
var (
	// ErrInvalidParameter is returned by constructors when a parameter lies outside its domain.
	// The returned error names the parameter.
	ErrInvalidParameter = errors.New("distributions: invalid parameter")

	// ErrInvalidRange is returned when a sampling interval is empty, reversed or not finite.
	ErrInvalidRange = errors.New("distributions: invalid range")

	// ErrTooFewPoints is returned when fewer than two sample points are requested.
	ErrTooFewPoints = errors.New("distributions: at least two points are required")

	// ErrTooManyPoints is returned when a table would have more than MaxPoints rows.
	ErrTooManyPoints = errors.New("distributions: too many points")

	// ErrUnknownDistribution is returned by Lookup for names it does not know.
	ErrUnknownDistribution = errors.New("distributions: unknown distribution")
)
