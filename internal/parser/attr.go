package parser

import (
	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/token"
)

// parseOuterAttrs collects the `#[...]` attributes and outer doc comments
// preceding a construct.
func (p *parser) parseOuterAttrs(c cur) ([]ast.Attr, cur, error) {
	var attrs []ast.Attr
	for {
		tok := c.Peek()
		switch {
		case tok.Kind == token.DocComment && !tok.IsInnerDoc():
			a := ast.Attr{Style: ast.AttrOuter, IsDoc: true, DocText: tok.DocText()}
			a.Span = tok.Span
			attrs = append(attrs, a)
			c = c.Advance()
		case tok.Kind == token.Pound && c.PeekN(1).Kind == token.LBracket:
			a, rest, err := p.parseAttrBody(c.Advance(), ast.AttrOuter, tok)
			if err != nil {
				return nil, c, err
			}
			attrs = append(attrs, a)
			c = rest
		default:
			return attrs, c, nil
		}
	}
}

// parseInnerAttrs collects `#![...]` attributes and inner doc comments at
// the top of a file or module body.
func (p *parser) parseInnerAttrs(c cur) ([]ast.Attr, cur, error) {
	var attrs []ast.Attr
	for {
		tok := c.Peek()
		switch {
		case tok.Kind == token.DocComment && tok.IsInnerDoc():
			a := ast.Attr{Style: ast.AttrInner, IsDoc: true, DocText: tok.DocText()}
			a.Span = tok.Span
			attrs = append(attrs, a)
			c = c.Advance()
		case tok.Kind == token.Pound && c.PeekN(1).Kind == token.Bang && c.PeekN(2).Kind == token.LBracket:
			a, rest, err := p.parseAttrBody(c.Advance().Advance(), ast.AttrInner, tok)
			if err != nil {
				return nil, c, err
			}
			attrs = append(attrs, a)
			c = rest
		default:
			return attrs, c, nil
		}
	}
}

// parseAttrBody parses `[ path tokens* ]` with c sitting on the bracket.
// The tokens after the path stay opaque, delimiters balanced but otherwise
// uninterpreted.
func (p *parser) parseAttrBody(c cur, style ast.AttrStyle, pound token.Token) (ast.Attr, cur, error) {
	open, c, err := expect(c, token.LBracket)
	if err != nil {
		return ast.Attr{}, c, err
	}
	path, c, err := p.parsePath(c, pathMod)
	if err != nil {
		return ast.Attr{}, c, err
	}
	toks, closeTok, c, err := collectBalanced(c, open, token.RBracket)
	if err != nil {
		return ast.Attr{}, c, err
	}
	a := ast.Attr{Style: style, Path: path, Tokens: toks}
	a.Span = pound.Span.Cover(closeTok.Span)
	return a, c, nil
}

// collectBalanced gathers raw tokens until the closer matching open, keeping
// nested delimiter groups of every bracket flavor intact. The closer itself
// is consumed but not included.
func collectBalanced(c cur, open token.Token, close token.Kind) ([]token.Token, token.Token, cur, error) {
	var out []token.Token
	depth := 0
	for {
		tok := c.Peek()
		switch tok.Kind {
		case token.EOF:
			return nil, token.Token{}, c, &UnclosedError{Span: open.Span, Open: open.Kind}
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth == 0 {
				if tok.Kind != close {
					return nil, token.Token{}, c, combinator.Expected(c, close.String())
				}
				return out, tok, c.Advance(), nil
			}
			depth--
		}
		out = append(out, tok)
		c = c.Advance()
	}
}
