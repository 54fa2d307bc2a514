package main

import (
	"fmt"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hananather/probability/samplespace"
	"github.com/hananather/probability/setexpr"
)

func evalCommand(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	cmd := app.Command("eval", "Evaluate set expressions over the sample space U={1..8} with events A, B and C.")
	exprs := cmd.Arg("expr", "expressions such as \"(A∪B)∩C'\"").Required().Strings()
	strict := cmd.Flag("strict", "report syntax errors instead of printing the empty set").Bool()

	return cmd, func(string) int {
		ev := setexpr.NewEvaluator(samplespace.Standard())
		failed := false
		for _, expr := range *exprs {
			s := ev.EvaluateSet(expr)
			if *strict {
				var err error
				if s, err = ev.Eval(expr); err != nil {
					e.log.WithField("expr", expr).Error(err)
					failed = true
					continue
				}
			}
			fmt.Fprintf(e.out, "%s = %v  P = %.4g\n", expr, s, ev.Space().Probability(s))
		}
		if failed {
			return 1
		}
		return 0
	}
}

func regionsCommand(app *kingpin.Application, e *env) (*kingpin.CmdClause, handler) {
	cmd := app.Command("regions", "List the Venn diagram regions an expression highlights.")
	expr := cmd.Arg("expr", "set expression").Required().String()

	return cmd, func(string) int {
		ev := setexpr.NewEvaluator(samplespace.Standard())
		s, err := ev.Eval(*expr)
		if err != nil {
			e.log.WithField("expr", *expr).Error(err)
			return 1
		}
		regions := ev.Space().Regions(s)
		if len(regions) == 0 {
			fmt.Fprintln(e.out, string(samplespace.EmptySetSymbol))
			return 0
		}
		for _, r := range regions {
			fmt.Fprintf(e.out, "%d\t%s\n", r.Element, r.Label)
		}
		return 0
	}
}
