package parser

import (
	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/token"
)

// parseMacroBody parses the delimited token group of a macro invocation,
// with c sitting just past the '!'. The group's contents stay opaque.
func (p *parser) parseMacroBody(c cur, path ast.Path) (ast.Macro, cur, error) {
	open := c.Peek()
	var delim ast.DelimKind
	var close token.Kind
	switch open.Kind {
	case token.LParen:
		delim, close = ast.DelimParen, token.RParen
	case token.LBracket:
		delim, close = ast.DelimBracket, token.RBracket
	case token.LBrace:
		delim, close = ast.DelimBrace, token.RBrace
	default:
		return ast.Macro{}, c, combinator.Expected(c, "'(', '[' or '{'")
	}
	toks, closeTok, rest, err := collectBalanced(c.Advance(), open, close)
	if err != nil {
		return ast.Macro{}, c, err
	}
	m := ast.Macro{Path: path, Delim: delim, Tokens: toks}
	m.Span = path.Span.Cover(closeTok.Span)
	return m, rest, nil
}
