package combinator

import (
	"graft/internal/ast"
	"graft/internal/token"
)

// Parser consumes tokens starting at a cursor and produces a value plus the
// cursor past everything it matched. On failure it returns a non-nil error
// and the entry cursor unchanged, the no-partial-consumption contract that
// alternation depends on. Parsers are pure functions of the stream and the
// cursor; independent parses may run concurrently.
type Parser[T any] func(Cursor) (T, Cursor, error)

// One consumes exactly one token satisfying pred.
func One(pred func(token.Token) bool, expected string) Parser[token.Token] {
	return func(c Cursor) (token.Token, Cursor, error) {
		tok := c.Peek()
		if !pred(tok) {
			return token.Token{}, c, Expected(c, expected)
		}
		return tok, c.Advance(), nil
	}
}

// Kind consumes exactly one token of kind k.
func Kind(k token.Kind) Parser[token.Token] {
	return func(c Cursor) (token.Token, Cursor, error) {
		tok := c.Peek()
		if tok.Kind != k {
			return token.Token{}, c, Expected(c, k.String())
		}
		return tok, c.Advance(), nil
	}
}

// Map transforms a parser's result.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) (U, Cursor, error) {
		v, rest, err := p(c)
		if err != nil {
			var zero U
			return zero, c, err
		}
		return f(v), rest, nil
	}
}

// Alt tries the alternatives left to right, once each, and returns the first
// success. When all fail the entry cursor is returned along with the failure
// that progressed furthest.
func Alt[T any](ps ...Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var deepest error
		for _, p := range ps {
			v, rest, err := p(c)
			if err == nil {
				return v, rest, nil
			}
			deepest = furthest(deepest, err)
		}
		var zero T
		return zero, c, deepest
	}
}

// Opt never fails: a miss reports ok=false at the entry cursor.
func Opt[T any](p Parser[T]) func(Cursor) (T, bool, Cursor) {
	return func(c Cursor) (T, bool, Cursor) {
		v, rest, err := p(c)
		if err != nil {
			var zero T
			return zero, false, c
		}
		return v, true, rest
	}
}

// Many0 applies p greedily zero or more times. The final failing attempt
// does not advance the cursor. An iteration that succeeds without consuming
// anything stops the loop, so a nullable p cannot spin forever.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) ([]T, Cursor, error) {
		var out []T
		for {
			v, rest, err := p(c)
			if err != nil {
				return out, c, nil
			}
			if rest.Pos() == c.Pos() {
				return out, c, nil
			}
			out = append(out, v)
			c = rest
		}
	}
}

// Many1 is Many0 requiring at least one match.
func Many1[T any](p Parser[T]) Parser[[]T] {
	many := Many0(p)
	return func(c Cursor) ([]T, Cursor, error) {
		if _, _, err := p(c); err != nil {
			return nil, c, err
		}
		return many(c)
	}
}

// Pair and Triple carry the results of the sequence combinators.
type Pair[A, B any] struct {
	A A
	B B
}

type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// Seq2 runs two parsers in order; any failure rewinds to the entry cursor.
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(c Cursor) (Pair[A, B], Cursor, error) {
		a, afterA, err := pa(c)
		if err != nil {
			return Pair[A, B]{}, c, err
		}
		b, afterB, err := pb(afterA)
		if err != nil {
			return Pair[A, B]{}, c, err
		}
		return Pair[A, B]{A: a, B: b}, afterB, nil
	}
}

// Seq3 runs three parsers in order; any failure rewinds to the entry cursor.
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Triple[A, B, C]] {
	return func(c Cursor) (Triple[A, B, C], Cursor, error) {
		a, afterA, err := pa(c)
		if err != nil {
			return Triple[A, B, C]{}, c, err
		}
		b, afterB, err := pb(afterA)
		if err != nil {
			return Triple[A, B, C]{}, c, err
		}
		cc, afterC, err := pc(afterB)
		if err != nil {
			return Triple[A, B, C]{}, c, err
		}
		return Triple[A, B, C]{A: a, B: b, C: cc}, afterC, nil
	}
}

// Delimited matches open, inner, close and yields inner's result.
func Delimited[T any](open, close token.Kind, inner Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		var zero T
		_, afterOpen, err := Kind(open)(c)
		if err != nil {
			return zero, c, err
		}
		v, afterInner, err := inner(afterOpen)
		if err != nil {
			return zero, c, err
		}
		_, afterClose, err := Kind(close)(afterInner)
		if err != nil {
			return zero, c, err
		}
		return v, afterClose, nil
	}
}

// Punctuated parses item (sep item)* with an optional trailing separator.
// It stops as soon as a separator is absent, or (when trailing separators
// are allowed) as soon as no item follows one; the closing delimiter is the
// caller's business. An empty sequence succeeds without consuming anything.
func Punctuated[T any](item Parser[T], sep token.Kind, allowTrailing bool) Parser[ast.Punctuated[T]] {
	return func(c Cursor) (ast.Punctuated[T], Cursor, error) {
		var out ast.Punctuated[T]

		first, rest, err := item(c)
		if err != nil {
			return out, c, nil
		}
		out.Push(first)
		c = rest

		for {
			sepTok, afterSep, err := Kind(sep)(c)
			if err != nil {
				return out, c, nil
			}
			next, afterItem, err := item(afterSep)
			if err != nil {
				if allowTrailing {
					out.PushSep(sepTok)
					return out, afterSep, nil
				}
				return out, c, nil
			}
			out.PushSep(sepTok)
			out.Push(next)
			c = afterItem
		}
	}
}
