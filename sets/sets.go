// Package sets contains a generic finite set and the operations of elementary set theory used to describe events in a
// sample space.
package sets

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set represents a finite set (in the sense of Discrete mathematics) of ordered elements. It supports the standard set
// operations such as union, intersection and complement. Binary operations never modify their arguments.
//
// The zero Set is empty and may be read from, but must be created with New before elements are added.
type Set[T cmp.Ordered] struct {
	items map[T]struct{}
}

// New constructs a new set with the provided elements. Duplicate elements are collapsed.
func New[T cmp.Ordered](elems ...T) Set[T] {
	result := Set[T]{items: make(map[T]struct{}, len(elems))}
	for _, elem := range elems {
		result.items[elem] = struct{}{}
	}
	return result
}

// Add adds the provided elements to this set, modifying it in place.
func (s Set[T]) Add(elems ...T) {
	for _, elem := range elems {
		s.items[elem] = struct{}{}
	}
}

// Remove removes the provided elements from this set, if present.
func (s Set[T]) Remove(elems ...T) {
	for _, elem := range elems {
		delete(s.items, elem)
	}
}

// Contains returns true if and only if this set contains the provided element.
func (s Set[T]) Contains(elem T) bool {
	_, ok := s.items[elem]
	return ok
}

// ContainsSet returns true if and only if every element of other is also an element of this set.
func (s Set[T]) ContainsSet(other Set[T]) bool {
	for b := range other.items {
		if !s.Contains(b) {
			return false
		}
	}
	return true
}

// SubsetOf returns true if and only if this set is a subset of other.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	return other.ContainsSet(s)
}

// Equals returns true if and only if this set is equal to other.
func (s Set[T]) Equals(other Set[T]) bool {
	return len(s.items) == len(other.items) && s.ContainsSet(other)
}

// Len returns the cardinality of this set.
func (s Set[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns true if this set has no elements.
func (s Set[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Elems returns the elements of this set in ascending order. The result is never nil.
func (s Set[T]) Elems() []T {
	result := make([]T, 0, len(s.items))
	for elem := range s.items {
		result = append(result, elem)
	}
	slices.Sort(result)
	return result
}

// Clone returns a copy of this set which shares no storage with it.
func (s Set[T]) Clone() Set[T] {
	return Union(s)
}

// String formats the set in roster notation, e.g. "{1, 4, 5, 7}". The empty set is formatted as "∅".
func (s Set[T]) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	parts := make([]string, 0, len(s.items))
	for _, elem := range s.Elems() {
		parts = append(parts, fmt.Sprint(elem))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Union returns the union of all provided sets. The union of no sets is the empty set.
func Union[T cmp.Ordered](all ...Set[T]) Set[T] {
	size := 0
	for _, s := range all {
		size += len(s.items)
	}
	result := Set[T]{items: make(map[T]struct{}, size)}
	for _, s := range all {
		for elem := range s.items {
			result.items[elem] = struct{}{}
		}
	}
	return result
}

// Intersect returns the intersection of sets A and B. The result contains all elements of A which are also in B.
func Intersect[T cmp.Ordered](A, B Set[T]) Set[T] {
	if len(B.items) < len(A.items) {
		A, B = B, A
	}
	result := Set[T]{items: make(map[T]struct{})}
	for a := range A.items {
		if _, ok := B.items[a]; ok {
			result.items[a] = struct{}{}
		}
	}
	return result
}

// Difference returns the set difference of sets A and B. The result contains all elements of A which cannot be found
// in B.
func Difference[T cmp.Ordered](A, B Set[T]) Set[T] {
	result := Set[T]{items: make(map[T]struct{})}
	for a := range A.items {
		if _, ok := B.items[a]; !ok {
			result.items[a] = struct{}{}
		}
	}
	return result
}

// Complement returns the complement of s relative to universe. Elements of s outside universe are ignored.
func Complement[T cmp.Ordered](universe, s Set[T]) Set[T] {
	return Difference(universe, s)
}

// SymmetricDiff returns the symmetric difference of sets A and B. The result contains all elements of A and B, except
// those elements which are found in both A and B.
func SymmetricDiff[T cmp.Ordered](A, B Set[T]) Set[T] {
	return Union(Difference(A, B), Difference(B, A))
}
