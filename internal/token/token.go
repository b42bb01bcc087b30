package token

import (
	"strings"

	"graft/internal/source"
)

// Token represents a single source token with its location.
// Text is the exact source slice, including prefixes and quotes for literals.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a literal of any subkind.
// `true` and `false` count as boolean literals.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StrLit, ByteStrLit, CharLit, ByteLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	_, ok := keywordNames[t.Kind]
	return ok
}

// IsPunct reports whether the token is punctuation or an operator.
func (t Token) IsPunct() bool {
	return t.Kind >= Plus && t.Kind <= RBrace
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IdentName returns the identifier's name with any raw prefix stripped,
// so `r#type` and a hypothetical plain `type` identifier compare equal.
func (t Token) IdentName() string {
	return strings.TrimPrefix(t.Text, "r#")
}

// IsRawIdent reports whether the identifier uses the keyword escape prefix.
func (t Token) IsRawIdent() bool {
	return t.Kind == Ident && strings.HasPrefix(t.Text, "r#")
}

// IsInnerDoc reports whether a DocComment token documents its enclosing
// construct (`//!` or `/*! */`) rather than the following one.
func (t Token) IsInnerDoc() bool {
	return strings.HasPrefix(t.Text, "//!") || strings.HasPrefix(t.Text, "/*!")
}

// DocText returns the comment body with the doc markers stripped.
func (t Token) DocText() string {
	switch {
	case strings.HasPrefix(t.Text, "///"), strings.HasPrefix(t.Text, "//!"):
		return strings.TrimPrefix(t.Text[3:], " ")
	case strings.HasPrefix(t.Text, "/**"), strings.HasPrefix(t.Text, "/*!"):
		body := strings.TrimSuffix(t.Text[3:], "*/")
		return strings.TrimSpace(body)
	default:
		return t.Text
	}
}
