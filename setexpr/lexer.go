package setexpr

import (
	"unicode"

	"github.com/hananather/probability/samplespace"
)

type tokenKind int

const (
	tokEvent tokenKind = iota
	tokUnion
	tokIntersect
	tokComplement
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	sym  rune
	pos  int // rune offset in the input
}

// lex splits expr into tokens, dropping whitespace. Event symbols are checked against space so that unknown names are
// reported at their position.
func lex(space *samplespace.Space, expr string) ([]token, error) {
	var tokens []token
	pos := 0
	for _, r := range expr {
		switch {
		case unicode.IsSpace(r):
		case r == samplespace.UnionSymbol:
			tokens = append(tokens, token{kind: tokUnion, sym: r, pos: pos})
		case r == samplespace.IntersectSymbol:
			tokens = append(tokens, token{kind: tokIntersect, sym: r, pos: pos})
		case r == samplespace.ComplementSymbol:
			tokens = append(tokens, token{kind: tokComplement, sym: r, pos: pos})
		case r == samplespace.OpenParen:
			tokens = append(tokens, token{kind: tokOpen, sym: r, pos: pos})
		case r == samplespace.CloseParen:
			tokens = append(tokens, token{kind: tokClose, sym: r, pos: pos})
		default:
			if _, ok := space.Event(r); !ok {
				return nil, &SyntaxError{Pos: pos, Symbol: r, Err: ErrUnknownSymbol}
			}
			tokens = append(tokens, token{kind: tokEvent, sym: r, pos: pos})
		}
		pos++
	}
	return tokens, nil
}
