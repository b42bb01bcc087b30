package lexer

import (
	"fmt"

	"graft/internal/diag"
	"graft/internal/source"
)

// Error is the terminal lexical failure (the LexError). Span.Start is the
// byte offset of the offending construct's first byte, never end-of-input:
// an unterminated string points at its opening quote.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Span.Start, e.Msg)
}

// Offset returns the byte offset of the offending construct.
func (e *Error) Offset() uint32 {
	return e.Span.Start
}

// Diagnostic converts the error for CLI rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.New(e.Code, e.Span, e.Msg)
}

func errAt(code diag.Code, span source.Span, msg string) *Error {
	return &Error{Code: code, Span: span, Msg: msg}
}
