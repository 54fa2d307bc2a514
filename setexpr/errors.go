package setexpr

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSymbol   = errors.New("setexpr: unknown symbol")
	ErrUnexpectedToken = errors.New("setexpr: unexpected token")
	ErrUnexpectedEnd   = errors.New("setexpr: unexpected end of expression")
	ErrUnmatchedParen  = errors.New("setexpr: unmatched parenthesis")
	ErrTooDeep         = errors.New("setexpr: expression nested too deeply")
	ErrTooLong         = errors.New("setexpr: expression too long")
)

// SyntaxError locates a parse failure. Pos is a rune offset into the input, whitespace included. Symbol is zero when
// the input ended early.
type SyntaxError struct {
	Pos    int
	Symbol rune
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Symbol == 0 {
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("%v %q at position %d", e.Err, e.Symbol, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
