package setexpr

import (
	"strings"

	"github.com/hananather/probability/samplespace"
)

// NodeKind distinguishes the two kinds of operand.
type NodeKind int

const (
	// EventNode is a single symbol: a named event, U or ∅.
	EventNode NodeKind = iota
	// GroupNode is a parenthesized sub-expression.
	GroupNode
)

// OpKind is the operator which follows an operand.
type OpKind int

const (
	Identity OpKind = iota
	Union
	Intersect
	Complement
)

func (k OpKind) String() string {
	switch k {
	case Identity:
		return "identity"
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case Complement:
		return "complement"
	}
	return "unknown"
}

// Node is an operand followed by its operator chain. Exactly one of Symbol (EventNode) or Inner (GroupNode) is set.
// Op is never nil for a parsed node.
type Node struct {
	Kind   NodeKind
	Symbol rune
	Inner  *Node
	Op     *Operator
}

// Operator applies to the value of the operand before it. Union and Intersect combine that value with the whole
// expression in Right. Complement stands for a run of Count consecutive primes: it complements the value when Count
// is odd and continues with Next.
type Operator struct {
	Kind  OpKind
	Right *Node
	Next  *Operator
	Count int
}

// String renders the expression without whitespace. Parsing the result yields an equal tree.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Kind {
	case EventNode:
		b.WriteRune(n.Symbol)
	case GroupNode:
		b.WriteRune(samplespace.OpenParen)
		n.Inner.write(b)
		b.WriteRune(samplespace.CloseParen)
	}
	for op := n.Op; op != nil; op = op.Next {
		switch op.Kind {
		case Union:
			b.WriteRune(samplespace.UnionSymbol)
			op.Right.write(b)
		case Intersect:
			b.WriteRune(samplespace.IntersectSymbol)
			op.Right.write(b)
		case Complement:
			b.WriteString(strings.Repeat(string(samplespace.ComplementSymbol), op.Count))
		}
	}
}
