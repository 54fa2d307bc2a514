package distributions

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type paramSpec struct {
	name     string
	def      float64
	required bool
}

var catalog = map[string][]paramSpec{
	"binomial": {{name: "n", required: true}, {name: "p", required: true}},
	"poisson":  {{name: "lambda", required: true}},
	"normal":   {{name: "mu", def: 0}, {name: "sigma", def: 1}},
	"gamma":    {{name: "shape", required: true}, {name: "rate", def: 1}},
	"t":        {{name: "df", required: true}},
}

// Names lists the names accepted by Lookup.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds a distribution from its name and parameters:
//
//	binomial  n, p
//	poisson   lambda
//	normal    mu (default 0), sigma (default 1)
//	gamma     shape, rate (default 1)
//	t         df
//
// Names are case-insensitive. Missing required or unknown parameters are ErrInvalidParameter.
func Lookup(name string, params map[string]float64) (Distribution, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	specs, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownDistribution, name, strings.Join(Names(), ", "))
	}
	values := make(map[string]float64, len(specs))
	for _, spec := range specs {
		v, ok := params[spec.name]
		switch {
		case ok:
			values[spec.name] = v
		case spec.required:
			return nil, fmt.Errorf("%w: %s requires %q", ErrInvalidParameter, name, spec.name)
		default:
			values[spec.name] = spec.def
		}
	}
	for key := range params {
		if _, ok := values[key]; !ok {
			return nil, fmt.Errorf("%w: %s does not take %q", ErrInvalidParameter, name, key)
		}
	}

	var (
		d   Distribution
		err error
	)
	switch name {
	case "binomial":
		n := values["n"]
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("%w: n = %v must be an integer", ErrInvalidParameter, n)
		}
		d, err = NewBinomial(int(n), values["p"])
	case "poisson":
		d, err = NewPoisson(values["lambda"])
	case "normal":
		d, err = NewNormal(values["mu"], values["sigma"])
	case "gamma":
		d, err = NewGamma(values["shape"], values["rate"])
	default:
		d, err = NewStudentT(values["df"])
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
