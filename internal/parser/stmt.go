package parser

import (
	"graft/internal/ast"
	"graft/internal/source"
	"graft/internal/combinator"
	"graft/internal/token"
)

func (p *parser) parseBlock(c cur) (*ast.Block, cur, error) {
	open, c, err := expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	b := &ast.Block{}
	for {
		// Stray semicolons are empty statements; they leave no node.
		for {
			if _, rest, ok := eat(c, token.Semicolon); ok {
				c = rest
				continue
			}
			break
		}
		if c.Peek().Kind == token.RBrace || c.EOF() {
			break
		}
		s, rest, err := p.parseStmt(c)
		if err != nil {
			return nil, c, err
		}
		b.Stmts = append(b.Stmts, s)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	b.Span = open.Span.Cover(closeTok.Span)
	return b, c, nil
}

func (p *parser) parseStmt(c cur) (ast.Stmt, cur, error) {
	attrs, afterAttrs, err := p.parseOuterAttrs(c)
	if err != nil {
		return nil, c, err
	}
	tok := afterAttrs.Peek()

	if tok.Kind == token.KwLet {
		return p.parseStmtLet(afterAttrs, attrs, c.Span())
	}
	if startsItem(afterAttrs) {
		// Reparse from the top so the item owns its attributes.
		it, rest, err := p.parseItem(c)
		if err != nil {
			return nil, c, err
		}
		s := &ast.StmtItem{Item: it}
		s.Span = it.NodeSpan()
		return s, rest, nil
	}

	e, afterExpr, err := p.parseExpr(afterAttrs, false)
	if err != nil {
		return nil, c, err
	}
	s := &ast.StmtExpr{Attrs: attrs, Expr: e}
	s.Span = c.Span().Cover(e.NodeSpan())
	if semi, rest, ok := eat(afterExpr, token.Semicolon); ok {
		s.Semi = true
		s.Span = s.Span.Cover(semi.Span)
		return s, rest, nil
	}
	// Without a semicolon the expression is either the block's tail value
	// or a block-shaped statement followed by more statements.
	if afterExpr.Peek().Kind != token.RBrace && !isBlockExpr(e) {
		return nil, c, combinator.Expected(afterExpr, "';'")
	}
	return s, afterExpr, nil
}

func (p *parser) parseStmtLet(c cur, attrs []ast.Attr, start source.Span) (ast.Stmt, cur, error) {
	_, c, err := expect(c, token.KwLet)
	if err != nil {
		return nil, c, err
	}
	s := &ast.StmtLet{Attrs: attrs}
	pat, c, err := p.parsePat(c)
	if err != nil {
		return nil, c, err
	}
	s.Pat = pat
	if _, rest, ok := eat(c, token.Colon); ok {
		ty, afterTy, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		s.Ty = ty
		c = afterTy
	}
	if _, rest, ok := eat(c, token.Assign); ok {
		init, afterInit, err := p.parseExpr(rest, false)
		if err != nil {
			return nil, c, err
		}
		s.Init = init
		c = afterInit
	}
	semi, c, err := expect(c, token.Semicolon)
	if err != nil {
		return nil, c, err
	}
	s.Span = start.Cover(semi.Span)
	return s, c, nil
}

// startsItem reports whether the statement position holds an item. The
// probe looks past visibility; `path!` macro statements stay expressions.
func startsItem(c cur) bool {
	k := c.Peek().Kind
	if k == token.KwPub {
		c = c.Advance()
		if c.Peek().Kind == token.LParen {
			// pub(crate)
			c = c.Advance()
			if c.Peek().Kind == token.KwCrate {
				c = c.Advance()
			}
			if c.Peek().Kind == token.RParen {
				c = c.Advance()
			}
		}
		k = c.Peek().Kind
	}
	switch k {
	case token.KwFn, token.KwStruct, token.KwEnum, token.KwTrait,
		token.KwImpl, token.KwMod, token.KwUse, token.KwStatic,
		token.KwExtern:
		return true
	case token.KwType:
		// `type` only begins an item when an ident follows.
		return c.PeekN(1).Kind == token.Ident
	case token.KwConst:
		// `const NAME: ...` is an item; `const` appears nowhere else in
		// statement position.
		return c.PeekN(1).Kind == token.Ident
	default:
		return false
	}
}
