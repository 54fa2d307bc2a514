// Package setexpr parses and evaluates set expressions such as "(A∪B)∩C'" over a samplespace.Space. It drives the
// highlighting of Venn-diagram regions.
//
// The alphabet is the event names of the space, U (universe), ∅ (empty set), ∪ (union), ∩ (intersection), the postfix
// complement ' and parentheses. Whitespace is ignored. Complement binds to the operand or group right before it and
// may be repeated: A'' is A.
//
// There is no operator precedence. Union and intersection take the whole remaining expression as their right operand,
// so A∪B∩C means A∪(B∩C) and A∩B∪C means A∩(B∪C). Use parentheses to group otherwise.
//
// Inputs are limited to 65536 runes and to 1000 levels of groups and ∪/∩ operands. Longer or deeper input is a
// syntax error. A run of primes is folded into one operator, so A'''' costs no more than A''.
//
// Parse and Evaluator.Eval report syntax errors. Evaluate never does: any malformed input evaluates to the empty set,
// which is what a diagram should show while the learner is still typing.
package setexpr

import (
	"sync/atomic"

	"github.com/hananather/probability/samplespace"
	"github.com/hananather/probability/sets"
	"github.com/hananather/probability/tsync"
)

const (
	// maxCached bounds the number of distinct expressions an Evaluator remembers.
	maxCached = 4096
	// maxCachedLen is the longest expression, in bytes, kept in the cache.
	maxCachedLen = 256
)

// Evaluator evaluates expressions against one space and caches parse results. It is safe for concurrent use.
type Evaluator struct {
	space  *samplespace.Space
	cache  tsync.Map[string, parsed]
	cached atomic.Int64
}

type parsed struct {
	node *Node
	err  error
}

// NewEvaluator returns an Evaluator over space.
func NewEvaluator(space *samplespace.Space) *Evaluator {
	return &Evaluator{space: space}
}

// Space returns the space expressions are evaluated against.
func (e *Evaluator) Space() *samplespace.Space {
	return e.space
}

// Parse parses expr into its syntax tree. Errors are *SyntaxError values wrapping one of the package's sentinels.
// Trees of short expressions are cached and shared between callers, so they must not be modified.
func (e *Evaluator) Parse(expr string) (*Node, error) {
	if p, ok := e.cache.Load(expr); ok {
		return p.node, p.err
	}
	node, err := parse(e.space, expr)
	if len(expr) <= maxCachedLen && e.cached.Load() < maxCached {
		if _, loaded := e.cache.LoadOrStore(expr, parsed{node: node, err: err}); !loaded {
			e.cached.Add(1)
		}
	}
	return node, err
}

// Eval parses and evaluates expr.
func (e *Evaluator) Eval(expr string) (sets.Set[int], error) {
	node, err := e.Parse(expr)
	if err != nil {
		return sets.Set[int]{}, err
	}
	return Eval(e.space, node)
}

// Evaluate returns the outcomes denoted by expr in ascending order. Any error yields an empty, non-nil slice.
func (e *Evaluator) Evaluate(expr string) []int {
	return e.EvaluateSet(expr).Elems()
}

// EvaluateSet is Evaluate returning a set. Any error yields the empty set.
func (e *Evaluator) EvaluateSet(expr string) sets.Set[int] {
	s, err := e.Eval(expr)
	if err != nil {
		return sets.New[int]()
	}
	return s
}

// Equivalent reports whether two expressions denote the same set. Practice questions use it to accept any correct
// rewriting of the expected answer.
func (e *Evaluator) Equivalent(a, b string) (bool, error) {
	sa, err := e.Eval(a)
	if err != nil {
		return false, err
	}
	sb, err := e.Eval(b)
	if err != nil {
		return false, err
	}
	return sa.Equals(sb), nil
}

// Eval evaluates a parsed tree. It fails only if the tree names an event which space does not define.
func Eval(space *samplespace.Space, n *Node) (sets.Set[int], error) {
	var base sets.Set[int]
	switch n.Kind {
	case EventNode:
		s, ok := space.Event(n.Symbol)
		if !ok {
			return sets.Set[int]{}, &SyntaxError{Symbol: n.Symbol, Err: ErrUnknownSymbol}
		}
		base = s
	case GroupNode:
		s, err := Eval(space, n.Inner)
		if err != nil {
			return sets.Set[int]{}, err
		}
		base = s
	}
	return apply(space, base, n.Op)
}

func apply(space *samplespace.Space, base sets.Set[int], op *Operator) (sets.Set[int], error) {
	for ; op != nil; op = op.Next {
		switch op.Kind {
		case Union, Intersect:
			right, err := Eval(space, op.Right)
			if err != nil {
				return sets.Set[int]{}, err
			}
			if op.Kind == Union {
				return sets.Union(base, right), nil
			}
			return sets.Intersect(base, right), nil
		case Complement:
			if op.Count%2 == 1 {
				base = space.Complement(base)
			}
		}
	}
	return base, nil
}

var standard = NewEvaluator(samplespace.Standard())

// Parse parses expr against the standard space.
func Parse(expr string) (*Node, error) {
	return standard.Parse(expr)
}

// Evaluate evaluates expr against the standard space. Any error yields an empty, non-nil slice.
func Evaluate(expr string) []int {
	return standard.Evaluate(expr)
}

// EvaluateSet evaluates expr against the standard space. Any error yields the empty set.
func EvaluateSet(expr string) sets.Set[int] {
	return standard.EvaluateSet(expr)
}

// Equivalent reports whether a and b denote the same subset of the standard space.
func Equivalent(a, b string) (bool, error) {
	return standard.Equivalent(a, b)
}
