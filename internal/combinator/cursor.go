package combinator

import (
	"graft/internal/source"
	"graft/internal/token"
)

// Cursor is an immutable read position inside a token stream. Cursors are
// plain values: advancing produces a new cursor and never touches the old
// one, which is what makes rewind-on-failure free: a failing parser simply
// returns the cursor it was given.
type Cursor struct {
	toks []token.Token
	pos  int
	// pending holds the synthesized remainder of a composite token that was
	// split by CloseAngle ('>>' consumed as '>' leaves a pending '>').
	// It shadows toks[pos] until consumed and copies with the cursor, so
	// splits rewind like everything else.
	pending *token.Token
}

// NewCursor wraps a token stream. The stream must be EOF-terminated, which
// lexer.Tokenize guarantees.
func NewCursor(toks []token.Token) Cursor {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		panic("combinator: token stream must end with EOF")
	}
	return Cursor{toks: toks}
}

// Peek returns the current token without consuming it.
func (c Cursor) Peek() token.Token {
	if c.pending != nil {
		return *c.pending
	}
	if c.pos >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[c.pos]
}

// PeekN returns the token n positions ahead of the current one.
func (c Cursor) PeekN(n int) token.Token {
	if c.pending != nil {
		if n == 0 {
			return *c.pending
		}
		n--
		c = Cursor{toks: c.toks, pos: c.pos + 1}
	}
	idx := c.pos + n
	if idx >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[idx]
}

// Advance returns a cursor past the current token.
func (c Cursor) Advance() Cursor {
	if c.pending != nil {
		return Cursor{toks: c.toks, pos: c.pos + 1}
	}
	if c.pos >= len(c.toks)-1 {
		return Cursor{toks: c.toks, pos: len(c.toks) - 1}
	}
	return Cursor{toks: c.toks, pos: c.pos + 1}
}

// EOF reports whether the cursor sits on the end-of-input token.
func (c Cursor) EOF() bool {
	return c.Peek().Kind == token.EOF
}

// Pos is a monotonic progress measure, used to pick the furthest of several
// failures. Split tokens count as half steps.
func (c Cursor) Pos() int {
	p := c.pos * 2
	if c.pending != nil {
		p++
	}
	return p
}

// Span returns the span of the current token.
func (c Cursor) Span() source.Span {
	return c.Peek().Span
}

// CloseAngle consumes one '>' at the cursor, splitting the composite tokens
// '>>', '>=' and '>>=' so that nested generic argument lists can close.
// The remainder travels in the returned cursor.
func CloseAngle(c Cursor) (token.Token, Cursor, error) {
	tok := c.Peek()
	gt := token.Token{
		Kind: token.Gt,
		Span: source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1},
		Text: ">",
	}
	remainder := func(kind token.Kind, text string) *token.Token {
		return &token.Token{
			Kind: kind,
			Span: source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End},
			Text: text,
		}
	}
	switch tok.Kind {
	case token.Gt:
		return tok, c.Advance(), nil
	case token.Shr:
		return gt, Cursor{toks: c.toks, pos: c.pos, pending: remainder(token.Gt, ">")}, nil
	case token.GtEq:
		return gt, Cursor{toks: c.toks, pos: c.pos, pending: remainder(token.Assign, "=")}, nil
	case token.ShrAssign:
		return gt, Cursor{toks: c.toks, pos: c.pos, pending: remainder(token.GtEq, ">=")}, nil
	default:
		return token.Token{}, c, Expected(c, "'>'")
	}
}
