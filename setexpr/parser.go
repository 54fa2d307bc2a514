package setexpr

import (
	"unicode/utf8"

	"github.com/hananather/probability/samplespace"
)

// parser is a recursive-descent parser over the grammar
//
//	expr     := atom operator
//	atom     := EVENT | '(' expr ')'
//	operator := '∪' expr | '∩' expr | '\'' operator | ε
//
// Union and intersection are right-recursive, so A∪B∩C groups as A∪(B∩C). Every group and every ∪ or ∩ adds one
// level of recursion, bounded by maxDepth.
type parser struct {
	tokens []token
	pos    int
	end    int // rune length of the input, reported for early ends
	depth  int
}

const (
	// maxLength bounds the input in runes.
	maxLength = 1 << 16
	// maxDepth bounds the nesting of groups plus the length of ∪/∩ chains.
	maxDepth = 1000
)

func parse(space *samplespace.Space, expr string) (*Node, error) {
	if n := utf8.RuneCountInString(expr); n > maxLength {
		return nil, &SyntaxError{Pos: maxLength, Err: ErrTooLong}
	}
	tokens, err := lex(space, expr)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, end: utf8.RuneCountInString(expr)}
	// Tokens after the first complete expression are ignored.
	return p.parseExpr()
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseExpr() (*Node, error) {
	if p.depth >= maxDepth {
		pos := p.end
		if tok, ok := p.peek(); ok {
			pos = tok.pos
		}
		return nil, &SyntaxError{Pos: pos, Err: ErrTooDeep}
	}
	p.depth++
	defer func() { p.depth-- }()

	n, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	n.Op, err = p.parseOperator()
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseAtom() (*Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &SyntaxError{Pos: p.end, Err: ErrUnexpectedEnd}
	}
	switch tok.kind {
	case tokEvent:
		p.pos++
		return &Node{Kind: EventNode, Symbol: tok.sym}, nil
	case tokOpen:
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok {
			return nil, &SyntaxError{Pos: tok.pos, Symbol: tok.sym, Err: ErrUnmatchedParen}
		}
		if closing.kind != tokClose {
			return nil, &SyntaxError{Pos: closing.pos, Symbol: closing.sym, Err: ErrUnexpectedToken}
		}
		p.pos++
		return &Node{Kind: GroupNode, Inner: inner}, nil
	}
	return nil, &SyntaxError{Pos: tok.pos, Symbol: tok.sym, Err: ErrUnexpectedToken}
}

func (p *parser) parseOperator() (*Operator, error) {
	tok, ok := p.peek()
	if !ok {
		return &Operator{Kind: Identity}, nil
	}
	switch tok.kind {
	case tokUnion, tokIntersect:
		p.pos++
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		kind := Union
		if tok.kind == tokIntersect {
			kind = Intersect
		}
		return &Operator{Kind: kind, Right: right}, nil
	case tokComplement:
		count := 0
		for ; ok && tok.kind == tokComplement; tok, ok = p.peek() {
			p.pos++
			count++
		}
		next, err := p.parseOperator()
		if err != nil {
			return nil, err
		}
		return &Operator{Kind: Complement, Count: count, Next: next}, nil
	}
	// ')' closes an enclosing group; anything else is left for the caller.
	return &Operator{Kind: Identity}, nil
}
