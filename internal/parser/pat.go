package parser

import (
	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/token"
)

func (p *parser) parsePat(c cur) (ast.Pat, cur, error) {
	tok := c.Peek()
	switch tok.Kind {
	case token.Underscore:
		pt := &ast.PatWild{}
		pt.Span = tok.Span
		return pt, c.Advance(), nil
	case token.DotDot:
		pt := &ast.PatRest{}
		pt.Span = tok.Span
		return pt, c.Advance(), nil
	case token.Amp:
		return p.parsePatRef(c.Advance(), tok, false)
	case token.AndAnd:
		inner, rest, err := p.parsePatRef(c.Advance(), tok, false)
		if err != nil {
			return nil, c, err
		}
		outer := &ast.PatReference{Pat: inner}
		outer.Span = tok.Span.Cover(inner.NodeSpan())
		return outer, rest, nil
	case token.LParen:
		return p.parsePatParen(c)
	case token.KwRef, token.KwMut:
		return p.parsePatBinding(c)
	case token.Minus, token.IntLit, token.FloatLit, token.StrLit,
		token.ByteStrLit, token.CharLit, token.ByteLit, token.KwTrue, token.KwFalse:
		return p.parsePatLitOrRange(c)
	default:
		if isSegmentIdent(tok.Kind) || tok.Kind == token.ColonColon {
			return p.parsePatPathish(c)
		}
		return nil, c, combinator.Expected(c, "a pattern")
	}
}

func (p *parser) parsePatRef(c cur, amp token.Token, _ bool) (ast.Pat, cur, error) {
	mut := false
	if _, rest, ok := eat(c, token.KwMut); ok {
		mut = true
		c = rest
	}
	inner, rest, err := p.parsePat(c)
	if err != nil {
		return nil, c, err
	}
	pt := &ast.PatReference{Mut: mut, Pat: inner}
	pt.Span = amp.Span.Cover(inner.NodeSpan())
	return pt, rest, nil
}

// parsePatParen parses a parenthesized pattern group. A single element with
// no trailing comma is plain grouping; everything else is a tuple pattern.
func (p *parser) parsePatParen(c cur) (ast.Pat, cur, error) {
	open, c, err := expect(c, token.LParen)
	if err != nil {
		return nil, c, err
	}
	elems, c, err := combinator.Punctuated(p.patParser(), token.Comma, true)(c)
	if err != nil {
		return nil, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return nil, c, err
	}
	if elems.Len() == 1 && !elems.Trailing {
		return elems.At(0), c, nil
	}
	pt := &ast.PatTuple{Elems: elems}
	pt.Span = open.Span.Cover(closeTok.Span)
	return pt, c, nil
}

// parsePatBinding parses `ref? mut? ident (@ subpattern)?`.
func (p *parser) parsePatBinding(c cur) (ast.Pat, cur, error) {
	pt := &ast.PatIdent{}
	start := c.Span()
	if _, rest, ok := eat(c, token.KwRef); ok {
		pt.ByRef = true
		c = rest
	}
	if _, rest, ok := eat(c, token.KwMut); ok {
		pt.Mut = true
		c = rest
	}
	id, c, err := parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	pt.Ident = id
	pt.Span = start.Cover(id.Span)
	if _, rest, ok := eat(c, token.At); ok {
		sub, afterSub, err := p.parsePat(rest)
		if err != nil {
			return nil, c, err
		}
		pt.Sub = sub
		pt.Span = pt.Span.Cover(sub.NodeSpan())
		c = afterSub
	}
	return pt, c, nil
}

// parsePatLitOrRange parses a literal pattern and upgrades it to a range
// when `..=` or `...` follows.
func (p *parser) parsePatLitOrRange(c cur) (ast.Pat, cur, error) {
	lo, c, err := p.parsePatLitExpr(c)
	if err != nil {
		return nil, c, err
	}
	if hi, rest, ok, err := p.parsePatRangeEnd(c); err != nil {
		return nil, c, err
	} else if ok {
		pt := &ast.PatRange{Lo: lo, Hi: hi, Inclusive: true}
		pt.Span = lo.NodeSpan().Cover(hi.NodeSpan())
		return pt, rest, nil
	}
	pt := &ast.PatLit{Expr: lo}
	pt.Span = lo.NodeSpan()
	return pt, c, nil
}

// parsePatRangeEnd consumes `..=` or the legacy `...` plus the upper bound.
func (p *parser) parsePatRangeEnd(c cur) (ast.Expr, cur, bool, error) {
	k := c.Peek().Kind
	if k != token.DotDotEq && k != token.DotDotDot {
		return nil, c, false, nil
	}
	hi, rest, err := p.parsePatRangeOperand(c.Advance())
	if err != nil {
		return nil, c, false, err
	}
	return hi, rest, true, nil
}

// parsePatRangeOperand parses one end of a range pattern: a literal (with
// optional negation) or a path.
func (p *parser) parsePatRangeOperand(c cur) (ast.Expr, cur, error) {
	tok := c.Peek()
	if isSegmentIdent(tok.Kind) || tok.Kind == token.ColonColon {
		path, rest, err := p.parsePath(c, pathExpr)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprPath{Path: path}
		e.Span = path.Span
		return e, rest, nil
	}
	return p.parsePatLitExpr(c)
}

// parsePatLitExpr parses the literal (or negated literal) allowed in
// pattern position as an expression node.
func (p *parser) parsePatLitExpr(c cur) (ast.Expr, cur, error) {
	if minus, rest, ok := eat(c, token.Minus); ok {
		inner, afterInner, err := p.parsePatLitExpr(rest)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprUnary{Op: ast.OpNeg, Expr: inner}
		e.Span = minus.Span.Cover(inner.NodeSpan())
		return e, afterInner, nil
	}
	tok := c.Peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StrLit, token.ByteStrLit,
		token.CharLit, token.ByteLit, token.KwTrue, token.KwFalse:
		lit, err := cookLit(tok)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprLit{Lit: lit}
		e.Span = tok.Span
		return e, c.Advance(), nil
	default:
		return nil, c, combinator.Expected(c, "a literal")
	}
}

// parsePatPathish parses the patterns that begin with a path: unit paths,
// tuple struct and struct destructurings, path ranges, and plain ident
// bindings.
func (p *parser) parsePatPathish(c cur) (ast.Pat, cur, error) {
	path, rest, err := p.parsePath(c, pathExpr)
	if err != nil {
		return nil, c, err
	}
	switch rest.Peek().Kind {
	case token.LParen:
		elems, afterElems, err := combinator.Punctuated(p.patParser(), token.Comma, true)(rest.Advance())
		if err != nil {
			return nil, c, err
		}
		closeTok, afterClose, err := expect(afterElems, token.RParen)
		if err != nil {
			return nil, c, err
		}
		pt := &ast.PatTupleStruct{Path: path, Elems: elems}
		pt.Span = path.Span.Cover(closeTok.Span)
		return pt, afterClose, nil
	case token.LBrace:
		return p.parsePatStruct(rest, path)
	case token.DotDotEq, token.DotDotDot:
		lo := &ast.ExprPath{Path: path}
		lo.Span = path.Span
		hi, afterHi, ok, err := p.parsePatRangeEnd(rest)
		if err != nil || !ok {
			return nil, c, err
		}
		pt := &ast.PatRange{Lo: lo, Hi: hi, Inclusive: true}
		pt.Span = path.Span.Cover(hi.NodeSpan())
		return pt, afterHi, nil
	case token.At:
		if !path.IsIdent() {
			break
		}
		sub, afterSub, err := p.parsePat(rest.Advance())
		if err != nil {
			return nil, c, err
		}
		pt := &ast.PatIdent{Ident: path.Segments.At(0).Ident, Sub: sub}
		pt.Span = path.Span.Cover(sub.NodeSpan())
		return pt, afterSub, nil
	}
	// A bare ident binds; anything qualified is a unit path pattern. An
	// ident that happens to name a unit variant cannot be told apart
	// without resolution, so it binds here too.
	if path.IsIdent() {
		pt := &ast.PatIdent{Ident: path.Segments.At(0).Ident}
		pt.Span = path.Span
		return pt, rest, nil
	}
	pt := &ast.PatPath{Path: path}
	pt.Span = path.Span
	return pt, rest, nil
}

func (p *parser) parsePatStruct(c cur, path ast.Path) (ast.Pat, cur, error) {
	_, c, err := expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	pt := &ast.PatStruct{Path: path}
	for c.Peek().Kind != token.RBrace {
		if _, rest, ok := eat(c, token.DotDot); ok {
			pt.Rest = true
			c = rest
			break
		}
		fp, rest, err := p.parseFieldPat(c)
		if err != nil {
			return nil, c, err
		}
		pt.Fields.Push(fp)
		c = rest
		comma, rest, ok := eat(c, token.Comma)
		if !ok {
			break
		}
		pt.Fields.PushSep(comma)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	pt.Span = path.Span.Cover(closeTok.Span)
	return pt, c, nil
}

func (p *parser) parseFieldPat(c cur) (ast.FieldPat, cur, error) {
	var fp ast.FieldPat
	start := c.Span()

	// Shorthand with binding modes: `ref mut name`.
	byRef, mut := false, false
	if _, rest, ok := eat(c, token.KwRef); ok {
		byRef = true
		c = rest
	}
	if _, rest, ok := eat(c, token.KwMut); ok {
		mut = true
		c = rest
	}
	name, c, err := parseIdent(c)
	if err != nil {
		return fp, c, err
	}
	fp.Name = name
	if !byRef && !mut {
		if _, rest, ok := eat(c, token.Colon); ok {
			pat, afterPat, err := p.parsePat(rest)
			if err != nil {
				return fp, c, err
			}
			fp.Pat = pat
			fp.Span = start.Cover(pat.NodeSpan())
			return fp, afterPat, nil
		}
	}
	binding := &ast.PatIdent{ByRef: byRef, Mut: mut, Ident: name}
	binding.Span = start.Cover(name.Span)
	fp.Pat = binding
	fp.Shorthand = true
	fp.Span = binding.Span
	return fp, c, nil
}

func (p *parser) patParser() combinator.Parser[ast.Pat] {
	return func(c cur) (ast.Pat, cur, error) {
		return p.parsePat(c)
	}
}
