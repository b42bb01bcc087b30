package combinator

import (
	"fmt"

	"graft/internal/diag"
	"graft/internal/source"
	"graft/internal/token"
)

// Error is the terminal syntactic failure (the ParseError): the position
// where no grammar alternative matched plus a description of what was
// expected there. No partial tree accompanies it.
type Error struct {
	Span     source.Span
	Expected string
	Found    token.Token
	pos      int
}

func (e *Error) Error() string {
	found := e.Found.Kind.String()
	if e.Found.Kind != token.EOF && e.Found.Text != "" && !e.Found.IsPunct() {
		found = fmt.Sprintf("%s %q", found, e.Found.Text)
	}
	return fmt.Sprintf("expected %s, found %s", e.Expected, found)
}

// Diagnostic converts the error for CLI rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	code := diag.SynUnexpectedToken
	if e.Found.Kind == token.EOF {
		code = diag.SynUnexpectedEOF
	}
	return diag.New(code, e.Span, e.Error())
}

// Expected builds an error at the cursor's current token.
func Expected(c Cursor, what string) *Error {
	return &Error{
		Span:     c.Span(),
		Expected: what,
		Found:    c.Peek(),
		pos:      c.Pos(),
	}
}

// furthest picks the error whose failure position is deepest in the stream,
// which is almost always the most useful one to show. Non-combinator errors
// win outright; they already carry better context.
func furthest(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ae, aok := a.(*Error)
	be, bok := b.(*Error)
	if !aok {
		return a
	}
	if !bok {
		return b
	}
	if be.pos > ae.pos {
		return b
	}
	return a
}
