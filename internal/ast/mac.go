package ast

import (
	"graft/internal/token"
)

// DelimKind is the delimiter of a macro invocation's token group.
type DelimKind uint8

const (
	DelimParen DelimKind = iota
	DelimBracket
	DelimBrace
)

// Open and Close return the delimiter's token kinds.
func (d DelimKind) Open() token.Kind {
	switch d {
	case DelimBracket:
		return token.LBracket
	case DelimBrace:
		return token.LBrace
	default:
		return token.LParen
	}
}

func (d DelimKind) Close() token.Kind {
	switch d {
	case DelimBracket:
		return token.RBracket
	case DelimBrace:
		return token.RBrace
	default:
		return token.RParen
	}
}

// Macro is a macro invocation: a path plus a delimited token group. The
// group's contents are deliberately opaque; macro bodies obey no grammar
// at parse time, so the tokens are stored as scanned, delimiters excluded,
// and never interpreted here.
type Macro struct {
	Info
	Path   Path
	Delim  DelimKind
	Tokens []token.Token
}
