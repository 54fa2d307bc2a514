package sets_test

import (
	"cmp"
	"fmt"
	"testing"

	"github.com/hananather/probability/sets"
	"github.com/matryer/is"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("[int]", func(t *testing.T) {
		is := is.New(t)
		got := sets.New(3, 4, 6, 4, 4, 4, 4, 4, 1, 2, 2)
		is.Equal(got.Elems(), []int{1, 2, 3, 4, 6})
		is.Equal(got.Len(), 5)
	})
	t.Run("[string]", func(t *testing.T) {
		is := is.New(t)
		got := sets.New("a", "xyc", "b", "zuw", "b", "a", "c")
		is.True(got.Equals(sets.New("a", "b", "c", "xyc", "zuw")))
	})
	t.Run("no elements", func(t *testing.T) {
		is := is.New(t)
		got := sets.New[int]()
		is.True(got.IsEmpty())
		is.Equal(got.Elems(), []int{}) // never nil
	})
}

func TestZeroSet(t *testing.T) {
	is := is.New(t)
	var zero sets.Set[int]
	is.True(zero.IsEmpty())
	is.True(!zero.Contains(1))
	is.True(zero.Equals(sets.New[int]()))
	is.Equal(zero.String(), "∅")
	is.True(sets.Union(zero, sets.New(1)).Equals(sets.New(1)))
}

func TestAddRemove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		set    sets.Set[string]
		add    []string
		remove []string
		want   sets.Set[string]
	}{
		{
			name: "add to empty",
			set:  sets.New[string](),
			add:  []string{"a", "b", "c"},
			want: sets.New("a", "b", "c"),
		},
		{
			name: "add to existing",
			set:  sets.New("a", "b"),
			add:  []string{"a", "b", "c", "d"},
			want: sets.New("a", "b", "c", "d"),
		},
		{
			name:   "remove missing is a no-op",
			set:    sets.New("a", "b"),
			remove: []string{"z"},
			want:   sets.New("a", "b"),
		},
		{
			name:   "add then remove",
			set:    sets.New("a"),
			add:    []string{"b", "c"},
			remove: []string{"a", "c"},
			want:   sets.New("b"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			tt.set.Add(tt.add...)
			tt.set.Remove(tt.remove...)
			is.True(tt.set.Equals(tt.want))
		})
	}
}

func TestContains(t *testing.T) {
	is := is.New(t)
	s := sets.New(1, 4, 5, 7)
	for elem, want := range map[int]bool{1: true, 2: false, 7: true, 8: false} {
		is.Equal(s.Contains(elem), want)
	}
}

type relationTest[T cmp.Ordered] struct {
	name     string
	setA     sets.Set[T]
	setB     sets.Set[T]
	equal    bool
	aSuperB  bool
	aSubsetB bool
}

func TestRelations(t *testing.T) {
	t.Parallel()
	testRelations(t, []relationTest[byte]{
		{
			name:     "empty and empty",
			setA:     sets.New[byte](),
			setB:     sets.New[byte](),
			equal:    true,
			aSuperB:  true,
			aSubsetB: true,
		},
		{
			name:    "full and empty",
			setA:    sets.New[byte](5, 8, 2),
			setB:    sets.New[byte](),
			aSuperB: true,
		},
		{
			name:     "empty and full",
			setA:     sets.New[byte](),
			setB:     sets.New[byte](255, 3, 4),
			aSubsetB: true,
		},
		{
			name:    "full and subset",
			setA:    sets.New[byte](255, 8, 3, 4, 6, 1),
			setB:    sets.New[byte](255, 3, 4),
			aSuperB: true,
		},
		{
			name:     "same elements in another order",
			setA:     sets.New[byte](1, 2, 6, 7),
			setB:     sets.New[byte](7, 2, 1, 6),
			equal:    true,
			aSuperB:  true,
			aSubsetB: true,
		},
		{
			name: "overlapping",
			setA: sets.New[byte](1, 2, 3),
			setB: sets.New[byte](3, 4),
		},
	})
}

func testRelations[T cmp.Ordered](t *testing.T, tests []relationTest[T]) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(tt.setA.Equals(tt.setB), tt.equal)
			is.Equal(tt.setB.Equals(tt.setA), tt.equal)
			is.Equal(tt.setA.ContainsSet(tt.setB), tt.aSuperB)
			is.Equal(tt.setA.SubsetOf(tt.setB), tt.aSubsetB)
		})
	}
}

type binaryOpTest[T cmp.Ordered] struct {
	name          string
	setA          sets.Set[T]
	setB          sets.Set[T]
	union         sets.Set[T]
	intersection  sets.Set[T]
	difference    sets.Set[T]
	symmetricDiff sets.Set[T]
}

func TestBinaryOps(t *testing.T) {
	t.Parallel()
	testBinaryOps(t, []binaryOpTest[int]{
		{
			name:          "empty full",
			setA:          sets.New[int](),
			setB:          sets.New(3, 7, 4, 2, 1),
			union:         sets.New(3, 7, 4, 2, 1),
			intersection:  sets.New[int](),
			difference:    sets.New[int](),
			symmetricDiff: sets.New(3, 7, 4, 2, 1),
		},
		{
			name:          "subset",
			setA:          sets.New(1, 4, 7, 100, 130),
			setB:          sets.New(1, 7, 130),
			union:         sets.New(1, 4, 7, 100, 130),
			intersection:  sets.New(1, 7, 130),
			difference:    sets.New(4, 100),
			symmetricDiff: sets.New(4, 100),
		},
		{
			name:          "events A and B",
			setA:          sets.New(1, 4, 5, 7),
			setB:          sets.New(2, 5, 6, 7),
			union:         sets.New(1, 2, 4, 5, 6, 7),
			intersection:  sets.New(5, 7),
			difference:    sets.New(1, 4),
			symmetricDiff: sets.New(1, 2, 4, 6),
		},
	})
}

func testBinaryOps[T cmp.Ordered](t *testing.T, tests []binaryOpTest[T]) {
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s union", tt.name), func(t *testing.T) {
			is := is.New(t)
			is.True(sets.Union(tt.setA, tt.setB).Equals(tt.union))
			is.True(sets.Union(tt.setB, tt.setA).Equals(tt.union))
		})
		t.Run(fmt.Sprintf("%s intersect", tt.name), func(t *testing.T) {
			is := is.New(t)
			is.True(sets.Intersect(tt.setA, tt.setB).Equals(tt.intersection))
			is.True(sets.Intersect(tt.setB, tt.setA).Equals(tt.intersection))
		})
		t.Run(fmt.Sprintf("%s difference", tt.name), func(t *testing.T) {
			is := is.New(t)
			is.True(sets.Difference(tt.setA, tt.setB).Equals(tt.difference))
		})
		t.Run(fmt.Sprintf("%s symmetric difference", tt.name), func(t *testing.T) {
			is := is.New(t)
			is.True(sets.SymmetricDiff(tt.setA, tt.setB).Equals(tt.symmetricDiff))
			is.True(sets.SymmetricDiff(tt.setB, tt.setA).Equals(tt.symmetricDiff))
		})
	}
}

func TestComplement(t *testing.T) {
	is := is.New(t)
	universe := sets.New(1, 2, 3, 4, 5, 6, 7, 8)
	a := sets.New(1, 4, 5, 7)
	is.Equal(sets.Complement(universe, a).Elems(), []int{2, 3, 6, 8})
	is.True(sets.Complement(universe, sets.Complement(universe, a)).Equals(a))
	is.True(sets.Complement(universe, universe).IsEmpty())
	is.Equal(sets.Complement(universe, sets.New(9)).Len(), 8) // elements outside the universe are ignored
}

func TestOperationsDoNotModifyInputs(t *testing.T) {
	is := is.New(t)
	a, b := sets.New(1, 2), sets.New(2, 3)
	u := sets.Union(a, b)
	u.Add(99)
	c := a.Clone()
	c.Remove(1)
	is.Equal(a.Elems(), []int{1, 2})
	is.Equal(b.Elems(), []int{2, 3})
}

func TestString(t *testing.T) {
	is := is.New(t)
	is.Equal(sets.New(7, 1, 5, 4).String(), "{1, 4, 5, 7}")
	is.Equal(sets.New[int]().String(), "∅")
	is.Equal(sets.New("b", "a").String(), "{a, b}")
}

func ExampleUnion() {
	a := sets.New(1, 4, 5, 7)
	b := sets.New(2, 5, 6, 7)
	fmt.Println(sets.Union(a, b))
	fmt.Println(sets.Intersect(a, b))
	// Output:
	// {1, 2, 4, 5, 6, 7}
	// {5, 7}
}
