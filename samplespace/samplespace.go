// Package samplespace models a finite sample space of equally likely outcomes, the named events defined over it, and
// the Venn-diagram regions those events partition it into.
//
// The textbook's set-operations tool uses the Standard space: the universe U = {1, ..., 8} and three events
//
//	A = {1, 4, 5, 7}
//	B = {2, 5, 6, 7}
//	C = {3, 4, 6, 7}
//
// chosen so that each outcome lies in exactly one of the eight regions of a three-circle Venn diagram.
package samplespace

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/hananather/probability/sets"
)

// Symbols with a fixed meaning in set expressions. They can never name an event.
const (
	UniverseSymbol   = 'U'
	EmptySetSymbol   = '∅'
	UnionSymbol      = '∪'
	IntersectSymbol  = '∩'
	ComplementSymbol = '\''
	OpenParen        = '('
	CloseParen       = ')'
)

var (
	ErrEmptyUniverse   = errors.New("samplespace: universe is empty")
	ErrNotSubset       = errors.New("samplespace: event is not a subset of the universe")
	ErrReservedName    = errors.New("samplespace: event name is reserved")
	ErrZeroProbability = errors.New("samplespace: conditioning event has zero probability")
)

// Space is an immutable finite sample space with named events. All accessors return copies.
type Space struct {
	universe sets.Set[int]
	names    []rune
	events   map[rune]sets.Set[int]
}

var standard = mustSpace(sets.New(1, 2, 3, 4, 5, 6, 7, 8), map[rune]sets.Set[int]{
	'A': sets.New(1, 4, 5, 7),
	'B': sets.New(2, 5, 6, 7),
	'C': sets.New(3, 4, 6, 7),
})

// Standard returns the fixed eight-outcome space with events A, B and C.
func Standard() *Space {
	return standard
}

// NewSpace builds a space from a universe and events keyed by their single-rune names. Every event must be a subset
// of the universe and no name may be a reserved symbol or whitespace.
func NewSpace(universe sets.Set[int], events map[rune]sets.Set[int]) (*Space, error) {
	if universe.IsEmpty() {
		return nil, ErrEmptyUniverse
	}
	s := &Space{
		universe: universe.Clone(),
		events:   make(map[rune]sets.Set[int], len(events)),
	}
	for name, event := range events {
		if IsReserved(name) {
			return nil, fmt.Errorf("%w: %q", ErrReservedName, name)
		}
		if !event.SubsetOf(universe) {
			return nil, fmt.Errorf("%w: %c = %v", ErrNotSubset, name, event)
		}
		s.names = append(s.names, name)
		s.events[name] = event.Clone()
	}
	slices.Sort(s.names)
	return s, nil
}

func mustSpace(universe sets.Set[int], events map[rune]sets.Set[int]) *Space {
	s, err := NewSpace(universe, events)
	if err != nil {
		panic(err)
	}
	return s
}

// IsReserved reports whether r has a fixed meaning in set expressions or is whitespace.
func IsReserved(r rune) bool {
	switch r {
	case UniverseSymbol, EmptySetSymbol, UnionSymbol, IntersectSymbol, ComplementSymbol, OpenParen, CloseParen:
		return true
	}
	return unicode.IsSpace(r)
}

// Universe returns the set of all outcomes.
func (s *Space) Universe() sets.Set[int] {
	return s.universe.Clone()
}

// Names returns the event names in ascending order.
func (s *Space) Names() []rune {
	return slices.Clone(s.names)
}

// Event resolves a symbol to its set: a named event, U for the universe or ∅ for the empty set.
func (s *Space) Event(name rune) (sets.Set[int], bool) {
	switch name {
	case UniverseSymbol:
		return s.Universe(), true
	case EmptySetSymbol:
		return sets.New[int](), true
	}
	e, ok := s.events[name]
	if !ok {
		return sets.Set[int]{}, false
	}
	return e.Clone(), true
}

// Complement returns the outcomes of the universe which are not in e.
func (s *Space) Complement(e sets.Set[int]) sets.Set[int] {
	return sets.Complement(s.universe, e)
}

// Probability returns P(e) = |e ∩ U| / |U| under equally likely outcomes.
func (s *Space) Probability(e sets.Set[int]) float64 {
	return float64(sets.Intersect(e, s.universe).Len()) / float64(s.universe.Len())
}

// Conditional returns P(a | b) = P(a ∩ b) / P(b).
func (s *Space) Conditional(a, b sets.Set[int]) (float64, error) {
	pb := s.Probability(b)
	if pb == 0 {
		return 0, ErrZeroProbability
	}
	return s.Probability(sets.Intersect(a, b)) / pb, nil
}

// Independent reports whether P(a ∩ b) = P(a) P(b). Outcome counts are compared exactly, so no tolerance is needed.
func (s *Space) Independent(a, b sets.Set[int]) bool {
	n := s.universe.Len()
	ab := sets.Intersect(sets.Intersect(a, b), s.universe).Len()
	na := sets.Intersect(a, s.universe).Len()
	nb := sets.Intersect(b, s.universe).Len()
	return ab*n == na*nb
}

// Region is one cell of the Venn diagram: the outcomes lying inside exactly the events named in In.
type Region struct {
	Element int
	In      []rune
	Label   string
}

// Region returns the Venn region containing elem. The label lists every event, complemented when elem lies outside
// it, e.g. "A∩B'∩C'" for outcome 1 of the standard space.
func (s *Space) Region(elem int) (Region, bool) {
	if !s.universe.Contains(elem) {
		return Region{}, false
	}
	r := Region{Element: elem, In: []rune{}}
	parts := make([]string, 0, len(s.names))
	for _, name := range s.names {
		if s.events[name].Contains(elem) {
			r.In = append(r.In, name)
			parts = append(parts, string(name))
		} else {
			parts = append(parts, string(name)+string(ComplementSymbol))
		}
	}
	if len(parts) == 0 {
		r.Label = string(UniverseSymbol)
	} else {
		r.Label = strings.Join(parts, string(IntersectSymbol))
	}
	return r, true
}

// Regions returns the regions of every outcome in subset which lies in the universe, ordered by outcome. These are the
// diagram cells to highlight for subset.
func (s *Space) Regions(subset sets.Set[int]) []Region {
	result := make([]Region, 0, subset.Len())
	for _, elem := range subset.Elems() {
		if r, ok := s.Region(elem); ok {
			result = append(result, r)
		}
	}
	return result
}
