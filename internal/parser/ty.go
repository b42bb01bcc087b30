package parser

import (
	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/token"
)

func (p *parser) parseType(c cur) (ast.Type, cur, error) {
	tok := c.Peek()
	switch tok.Kind {
	case token.Amp:
		return p.parseTypeRef(c.Advance(), tok)
	case token.AndAnd:
		// '&&T' is a reference to a reference.
		inner, rest, err := p.parseTypeRef(c.Advance(), tok)
		if err != nil {
			return nil, c, err
		}
		outer := &ast.TypeReference{Elem: inner}
		outer.Span = tok.Span.Cover(inner.NodeSpan())
		return outer, rest, nil
	case token.Star:
		c := c.Advance()
		mut := false
		switch c.Peek().Kind {
		case token.KwMut:
			mut = true
		case token.KwConst:
		default:
			return nil, c, combinator.Expected(c, "'const' or 'mut'")
		}
		elem, rest, err := p.parseType(c.Advance())
		if err != nil {
			return nil, c, err
		}
		t := &ast.TypePtr{Mut: mut, Elem: elem}
		t.Span = tok.Span.Cover(elem.NodeSpan())
		return t, rest, nil
	case token.LParen:
		return p.parseTypeParenOrTuple(c)
	case token.LBracket:
		return p.parseTypeBracketed(c)
	case token.KwFn:
		return p.parseTypeBareFn(c)
	case token.KwDyn:
		bounds, rest, err := p.parseBoundsPunct(c.Advance())
		if err != nil {
			return nil, c, err
		}
		t := &ast.TypeTraitObject{Dyn: true, Bounds: bounds}
		t.Span = tok.Span.Cover(bounds.At(bounds.Len() - 1).NodeSpan())
		return t, rest, nil
	case token.KwImpl:
		bounds, rest, err := p.parseBoundsPunct(c.Advance())
		if err != nil {
			return nil, c, err
		}
		t := &ast.TypeImplTrait{Bounds: bounds}
		t.Span = tok.Span.Cover(bounds.At(bounds.Len() - 1).NodeSpan())
		return t, rest, nil
	case token.Underscore:
		t := &ast.TypeInfer{}
		t.Span = tok.Span
		return t, c.Advance(), nil
	case token.Bang:
		t := &ast.TypeNever{}
		t.Span = tok.Span
		return t, c.Advance(), nil
	default:
		if isSegmentIdent(tok.Kind) || tok.Kind == token.ColonColon {
			return p.parseTypePathOrObject(c)
		}
		return nil, c, combinator.Expected(c, "a type")
	}
}

// parseTypeRef parses the remainder of a reference type after '&'.
func (p *parser) parseTypeRef(c cur, amp token.Token) (ast.Type, cur, error) {
	t := &ast.TypeReference{}
	if lt, rest, ok := eat(c, token.Lifetime); ok {
		l := lifetimeFrom(lt)
		t.Lifetime = &l
		c = rest
	}
	if _, rest, ok := eat(c, token.KwMut); ok {
		t.Mut = true
		c = rest
	}
	elem, rest, err := p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	t.Elem = elem
	t.Span = amp.Span.Cover(elem.NodeSpan())
	return t, rest, nil
}

func (p *parser) parseTypeParenOrTuple(c cur) (ast.Type, cur, error) {
	open, c, err := expect(c, token.LParen)
	if err != nil {
		return nil, c, err
	}
	elems, c, err := combinator.Punctuated(p.typeParser(), token.Comma, true)(c)
	if err != nil {
		return nil, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return nil, c, err
	}
	sp := open.Span.Cover(closeTok.Span)
	if elems.Len() == 1 && !elems.Trailing {
		t := &ast.TypeParen{Elem: elems.At(0)}
		t.Span = sp
		return t, c, nil
	}
	t := &ast.TypeTuple{Elems: elems}
	t.Span = sp
	return t, c, nil
}

func (p *parser) parseTypeBracketed(c cur) (ast.Type, cur, error) {
	open, c, err := expect(c, token.LBracket)
	if err != nil {
		return nil, c, err
	}
	elem, c, err := p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	if _, rest, ok := eat(c, token.Semicolon); ok {
		length, rest, err := p.parseExpr(rest, false)
		if err != nil {
			return nil, c, err
		}
		closeTok, rest, err := expect(rest, token.RBracket)
		if err != nil {
			return nil, rest, err
		}
		t := &ast.TypeArray{Elem: elem, Len: length}
		t.Span = open.Span.Cover(closeTok.Span)
		return t, rest, nil
	}
	closeTok, c, err := expect(c, token.RBracket)
	if err != nil {
		return nil, c, err
	}
	t := &ast.TypeSlice{Elem: elem}
	t.Span = open.Span.Cover(closeTok.Span)
	return t, c, nil
}

func (p *parser) parseTypeBareFn(c cur) (ast.Type, cur, error) {
	fnTok, c, err := expect(c, token.KwFn)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.LParen)
	if err != nil {
		return nil, c, err
	}
	args, c, err := combinator.Punctuated(p.bareFnArgParser(), token.Comma, true)(c)
	if err != nil {
		return nil, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return nil, c, err
	}
	t := &ast.TypeBareFn{Inputs: args}
	t.Span = fnTok.Span.Cover(closeTok.Span)
	if _, rest, ok := eat(c, token.Arrow); ok {
		out, rest, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		t.Output = out
		t.Span = t.Span.Cover(out.NodeSpan())
		c = rest
	}
	return t, c, nil
}

func (p *parser) bareFnArgParser() combinator.Parser[ast.BareFnArg] {
	return func(c cur) (ast.BareFnArg, cur, error) {
		var arg ast.BareFnArg
		start := c.Span()
		if c.Peek().Kind == token.Ident && c.PeekN(1).Kind == token.Colon {
			id := identFrom(c.Peek())
			arg.Name = &id
			c = c.Advance().Advance()
		}
		ty, rest, err := p.parseType(c)
		if err != nil {
			return ast.BareFnArg{}, c, err
		}
		arg.Ty = ty
		arg.Span = start.Cover(ty.NodeSpan())
		return arg, rest, nil
	}
}

// parseTypePathOrObject parses a path type, upgrading to a legacy (no-dyn)
// trait object when '+' bounds follow: `Box<Write + Send>`.
func (p *parser) parseTypePathOrObject(c cur) (ast.Type, cur, error) {
	path, rest, err := p.parsePath(c, pathType)
	if err != nil {
		return nil, c, err
	}
	if rest.Peek().Kind != token.Plus {
		t := &ast.TypePath{Path: path}
		t.Span = path.Span
		return t, rest, nil
	}
	first := &ast.BoundTrait{Path: path}
	first.Span = path.Span
	t := &ast.TypeTraitObject{}
	t.Bounds.Push(ast.TypeParamBound(first))
	c = rest
	for {
		plus, afterPlus, ok := eat(c, token.Plus)
		if !ok {
			break
		}
		b, afterBound, err := p.parseBound(afterPlus)
		if err != nil {
			return nil, c, err
		}
		t.Bounds.PushSep(plus)
		t.Bounds.Push(b)
		c = afterBound
	}
	t.Span = path.Span.Cover(t.Bounds.At(t.Bounds.Len() - 1).NodeSpan())
	return t, c, nil
}

func (p *parser) typeParser() combinator.Parser[ast.Type] {
	return func(c cur) (ast.Type, cur, error) {
		return p.parseType(c)
	}
}

// parseBound parses one trait or lifetime bound.
func (p *parser) parseBound(c cur) (ast.TypeParamBound, cur, error) {
	tok := c.Peek()
	if tok.Kind == token.Lifetime {
		b := &ast.BoundLifetime{Lifetime: lifetimeFrom(tok)}
		b.Span = tok.Span
		return b, c.Advance(), nil
	}
	maybe := false
	start := tok.Span
	if _, rest, ok := eat(c, token.Question); ok {
		maybe = true
		c = rest
	}
	path, rest, err := p.parsePath(c, pathType)
	if err != nil {
		return nil, c, err
	}
	b := &ast.BoundTrait{Maybe: maybe, Path: path}
	b.Span = start.Cover(path.Span)
	return b, rest, nil
}

// parseBoundsPunct parses one or more '+'-separated bounds.
func (p *parser) parseBoundsPunct(c cur) (ast.Punctuated[ast.TypeParamBound], cur, error) {
	var out ast.Punctuated[ast.TypeParamBound]
	first, c, err := p.parseBound(c)
	if err != nil {
		return out, c, err
	}
	out.Push(first)
	for {
		plus, afterPlus, ok := eat(c, token.Plus)
		if !ok {
			return out, c, nil
		}
		b, afterBound, err := p.parseBound(afterPlus)
		if err != nil {
			return out, c, nil
		}
		out.PushSep(plus)
		out.Push(b)
		c = afterBound
	}
}

// parseBoundsList parses '+'-separated bounds into a plain slice, for
// positions that do not keep separator tokens.
func (p *parser) parseBoundsList(c cur) ([]ast.TypeParamBound, cur, error) {
	var out []ast.TypeParamBound
	first, c, err := p.parseBound(c)
	if err != nil {
		return nil, c, err
	}
	out = append(out, first)
	for {
		_, afterPlus, ok := eat(c, token.Plus)
		if !ok {
			return out, c, nil
		}
		b, afterBound, err := p.parseBound(afterPlus)
		if err != nil {
			return out, c, nil
		}
		out = append(out, b)
		c = afterBound
	}
}
