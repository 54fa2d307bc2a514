package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hananather/probability/distributions"
)

func distCommand(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	names := distributions.Names()
	cmd := app.Command("dist", "Tabulate the mass, density or cumulative function of a distribution.")
	name := cmd.Arg("name", "one of "+strings.Join(names, ", ")).Required().Enum(names...)
	params := cmd.Flag("param", "parameter as key=value, e.g. -p n=10 -p p=0.3").Short('p').StringMap()
	from := cmd.Flag("from", "left end of the table; defaults to about four standard deviations below the mean").String()
	to := cmd.Flag("to", "right end of the table").String()
	points := cmd.Flag("points", fmt.Sprintf("number of rows for continuous distributions, at most %d", distributions.MaxPoints)).
		Default("11").
		Int()
	cdf := cmd.Flag("cdf", "tabulate the cumulative distribution function").Bool()

	return cmd, func(string) int {
		values, err := parseParams(*params)
		if err != nil {
			e.log.Error(err)
			return 1
		}
		d, err := distributions.Lookup(*name, values)
		if err != nil {
			e.log.Error(err)
			return 1
		}
		lo, hi := defaultRange(d)
		if lo, err = parseBound(*from, lo); err != nil {
			e.log.Error(err)
			return 1
		}
		if hi, err = parseBound(*to, hi); err != nil {
			e.log.Error(err)
			return 1
		}

		table, err := tabulate(d, lo, hi, *points, *cdf)
		if err != nil {
			e.log.Error(err)
			return 1
		}
		e.log.WithField("rows", len(table)).Debugf("tabulated %v on [%g, %g]", d, lo, hi)

		fmt.Fprintf(e.out, "%v  mean %.4g  variance %.4g\n", d, d.Mean(), d.Variance())
		for _, p := range table {
			fmt.Fprintf(e.out, "%10.4g  %.6f\n", p.X, p.Y)
		}
		return 0
	}
}

// parseParams converts key=value flags to numbers.
func parseParams(params map[string]string) (map[string]float64, error) {
	result := make(map[string]float64, len(params))
	for k, v := range params {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %q is not a number", k, v)
		}
		result[strings.ToLower(strings.TrimSpace(k))] = f
	}
	return result, nil
}

func parseBound(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bound %q is not a number", s)
	}
	return f, nil
}

// defaultRange covers the bulk of d's mass. Undefined moments fall back to [-5, 5].
func defaultRange(d distributions.Distribution) (float64, float64) {
	mean, sd := d.Mean(), math.Sqrt(d.Variance())
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		mean = 0
	}
	if math.IsNaN(sd) || math.IsInf(sd, 0) {
		sd = 1.25
	}
	lo, hi := mean-4*sd, mean+4*sd
	switch d := d.(type) {
	case distributions.Binomial:
		lo, hi = math.Max(0, math.Floor(lo)), math.Min(float64(d.N), math.Ceil(hi))
	case distributions.Poisson:
		lo, hi = math.Max(0, math.Floor(lo)), math.Ceil(hi)
	case distributions.Gamma:
		lo = math.Max(0, lo)
	}
	return lo, hi
}

// maxBound keeps discrete table bounds well inside the int range.
const maxBound = 1 << 53

func tabulate(d distributions.Distribution, lo, hi float64, n int, cdf bool) ([]distributions.Point, error) {
	switch d := d.(type) {
	case distributions.Discrete:
		if math.IsNaN(lo) || math.IsNaN(hi) || math.Abs(lo) > maxBound || math.Abs(hi) > maxBound {
			return nil, fmt.Errorf("%w: [%g, %g] must lie within ±%g", distributions.ErrInvalidRange, lo, hi, float64(maxBound))
		}
		if cdf {
			return distributions.CDFPoints(d, int(math.Ceil(lo)), int(math.Floor(hi)))
		}
		return distributions.PMFPoints(d, int(math.Ceil(lo)), int(math.Floor(hi)))
	case distributions.Continuous:
		if cdf {
			return distributions.Sample(d.CDF, lo, hi, n)
		}
		return distributions.Points(d, lo, hi, n)
	}
	return nil, fmt.Errorf("%v is neither discrete nor continuous", d)
}
