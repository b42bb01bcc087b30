package parser

import (
	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/source"
	"graft/internal/token"
)

func (p *parser) parseItem(c cur) (ast.Item, cur, error) {
	start := c.Span()
	attrs, c, err := p.parseOuterAttrs(c)
	if err != nil {
		return nil, c, err
	}
	vis, c, err := p.parseVisibility(c)
	if err != nil {
		return nil, c, err
	}
	tok := c.Peek()
	switch tok.Kind {
	case token.KwFn:
		if err := p.profileCheck(tok, "fn"); err != nil {
			return nil, c, err
		}
		return p.parseItemFn(c, attrs, vis, start)
	case token.KwStruct:
		return p.parseItemStruct(c, attrs, vis, start)
	case token.KwEnum:
		return p.parseItemEnum(c, attrs, vis, start)
	case token.KwTrait:
		if err := p.profileCheck(tok, "trait"); err != nil {
			return nil, c, err
		}
		return p.parseItemTrait(c, attrs, vis, start)
	case token.KwImpl:
		if err := p.profileCheck(tok, "impl"); err != nil {
			return nil, c, err
		}
		return p.parseItemImpl(c, attrs, start)
	case token.KwMod:
		return p.parseItemMod(c, attrs, vis, start)
	case token.KwUse:
		return p.parseItemUse(c, attrs, vis, start)
	case token.KwConst:
		return p.parseItemConst(c, attrs, vis, start)
	case token.KwStatic:
		if err := p.profileCheck(tok, "static"); err != nil {
			return nil, c, err
		}
		return p.parseItemStatic(c, attrs, vis, start)
	case token.KwExtern:
		if err := p.profileCheck(tok, "extern"); err != nil {
			return nil, c, err
		}
		return p.parseItemForeignMod(c, attrs, start)
	case token.KwType:
		return p.parseItemType(c, attrs, vis, start)
	default:
		if isSegmentIdent(tok.Kind) || tok.Kind == token.ColonColon {
			if err := p.profileCheck(tok, "macro"); err != nil {
				return nil, c, err
			}
			return p.parseItemMacro(c, attrs, start)
		}
		return nil, c, combinator.Expected(c, "an item")
	}
}

// profileCheck rejects executable item forms under the derive profile.
func (p *parser) profileCheck(tok token.Token, form string) error {
	if p.opts.Profile != ProfileDerive {
		return nil
	}
	return &DisabledError{Span: tok.Span, Form: form}
}

func (p *parser) parseVisibility(c cur) (ast.Visibility, cur, error) {
	if _, rest, ok := eat(c, token.KwPub); ok {
		if rest.Peek().Kind == token.LParen && rest.PeekN(1).Kind == token.KwCrate {
			_, afterClose, err := expect(rest.Advance().Advance(), token.RParen)
			if err != nil {
				return ast.VisInherited, c, err
			}
			return ast.VisCrate, afterClose, nil
		}
		return ast.VisPub, rest, nil
	}
	return ast.VisInherited, c, nil
}

// parseGenerics parses the optional `<...>` parameter list. Where clauses
// attach later; declaration sites differ per item form.
func (p *parser) parseGenerics(c cur) (ast.Generics, cur, error) {
	var g ast.Generics
	ltTok, c2, ok := eat(c, token.Lt)
	if !ok {
		return g, c, nil
	}
	g.Span = ltTok.Span
	c = c2
	for {
		if gt, rest, err := combinator.CloseAngle(c); err == nil {
			g.Span = g.Span.Cover(gt.Span)
			return g, rest, nil
		}
		tok := c.Peek()
		switch {
		case tok.Kind == token.Lifetime:
			def := ast.LifetimeDef{Lifetime: lifetimeFrom(tok)}
			def.Span = tok.Span
			c = c.Advance()
			if _, rest, ok := eat(c, token.Colon); ok {
				bounds, afterBounds, err := parseLifetimeList(rest)
				if err != nil {
					return g, c, err
				}
				def.Bounds = bounds
				c = afterBounds
			}
			g.Lifetimes = append(g.Lifetimes, def)
		case tok.Kind == token.Ident:
			tp := ast.TypeParam{Ident: identFrom(tok)}
			tp.Span = tok.Span
			c = c.Advance()
			if _, rest, ok := eat(c, token.Colon); ok {
				bounds, afterBounds, err := p.parseBoundsList(rest)
				if err != nil {
					return g, c, err
				}
				tp.Bounds = bounds
				c = afterBounds
			}
			if _, rest, ok := eat(c, token.Assign); ok {
				def, afterDef, err := p.parseType(rest)
				if err != nil {
					return g, c, err
				}
				tp.Default = def
				c = afterDef
			}
			g.TypeParams = append(g.TypeParams, tp)
		default:
			return g, c, combinator.Expected(c, "a generic parameter")
		}
		if _, rest, ok := eat(c, token.Comma); ok {
			c = rest
			continue
		}
		gt, rest, err := combinator.CloseAngle(c)
		if err != nil {
			return g, c, err
		}
		g.Span = g.Span.Cover(gt.Span)
		return g, rest, nil
	}
}

func parseLifetimeList(c cur) ([]ast.Lifetime, cur, error) {
	tok := c.Peek()
	if tok.Kind != token.Lifetime {
		return nil, c, combinator.Expected(c, "lifetime")
	}
	out := []ast.Lifetime{lifetimeFrom(tok)}
	c = c.Advance()
	for {
		_, rest, ok := eat(c, token.Plus)
		if !ok {
			return out, c, nil
		}
		tok := rest.Peek()
		if tok.Kind != token.Lifetime {
			return out, c, nil
		}
		out = append(out, lifetimeFrom(tok))
		c = rest.Advance()
	}
}

// parseWhere parses an optional where clause into g.
func (p *parser) parseWhere(c cur, g *ast.Generics) (cur, error) {
	_, c2, ok := eat(c, token.KwWhere)
	if !ok {
		return c, nil
	}
	c = c2
	for {
		tok := c.Peek()
		if tok.Kind == token.Lifetime && c.PeekN(1).Kind == token.Colon {
			pred := &ast.PredLifetime{Lifetime: lifetimeFrom(tok)}
			pred.Span = tok.Span
			bounds, rest, err := parseLifetimeList(c.Advance().Advance())
			if err != nil {
				return c, err
			}
			pred.Bounds = bounds
			pred.Span = pred.Span.Cover(bounds[len(bounds)-1].Span)
			g.Where = append(g.Where, pred)
			c = rest
		} else {
			ty, rest, err := p.parseType(c)
			if err != nil {
				return c, err
			}
			_, rest, err = expect(rest, token.Colon)
			if err != nil {
				return c, err
			}
			bounds, afterBounds, err := p.parseBoundsList(rest)
			if err != nil {
				return c, err
			}
			pred := &ast.PredType{Ty: ty, Bounds: bounds}
			pred.Span = ty.NodeSpan().Cover(bounds[len(bounds)-1].NodeSpan())
			g.Where = append(g.Where, pred)
			c = afterBounds
		}
		if _, rest, ok := eat(c, token.Comma); ok {
			// A trailing comma before the body brace ends the clause.
			if rest.Peek().Kind == token.LBrace || rest.Peek().Kind == token.Semicolon {
				return rest, nil
			}
			c = rest
			continue
		}
		return c, nil
	}
}

// parseSignature parses `fn name<G>(args) -> Ret` plus an optional where
// clause, with c on the 'fn' keyword.
func (p *parser) parseSignature(c cur) (ast.Signature, cur, error) {
	var sig ast.Signature
	fnTok, c, err := expect(c, token.KwFn)
	if err != nil {
		return sig, c, err
	}
	sig.Span = fnTok.Span
	id, c, err := parseIdent(c)
	if err != nil {
		return sig, c, err
	}
	sig.Ident = id
	sig.Generics, c, err = p.parseGenerics(c)
	if err != nil {
		return sig, c, err
	}
	_, c, err = expect(c, token.LParen)
	if err != nil {
		return sig, c, err
	}
	sig.Inputs, c, err = combinator.Punctuated(p.fnArgParser(), token.Comma, true)(c)
	if err != nil {
		return sig, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return sig, c, err
	}
	sig.Span = sig.Span.Cover(closeTok.Span)
	if _, rest, ok := eat(c, token.Arrow); ok {
		out, afterOut, err := p.parseType(rest)
		if err != nil {
			return sig, c, err
		}
		sig.Output = out
		sig.Span = sig.Span.Cover(out.NodeSpan())
		c = afterOut
	}
	c, err = p.parseWhere(c, &sig.Generics)
	if err != nil {
		return sig, c, err
	}
	return sig, c, nil
}

func (p *parser) fnArgParser() combinator.Parser[ast.FnArg] {
	return func(c cur) (ast.FnArg, cur, error) {
		if arg, rest, ok := parseReceiver(c); ok {
			return arg, rest, nil
		}
		pat, rest, err := p.parsePat(c)
		if err != nil {
			return nil, c, err
		}
		_, rest, err = expect(rest, token.Colon)
		if err != nil {
			return nil, c, err
		}
		ty, afterTy, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		arg := &ast.ArgTyped{Pat: pat, Ty: ty}
		arg.Span = pat.NodeSpan().Cover(ty.NodeSpan())
		return arg, afterTy, nil
	}
}

// parseReceiver recognizes the self parameter forms: `self`, `mut self`,
// `&self`, `&'a self`, `&mut self`, `&'a mut self`.
func parseReceiver(c cur) (ast.FnArg, cur, bool) {
	start := c.Span()
	r := &ast.Receiver{}
	rest := c
	if _, c2, ok := eat(rest, token.Amp); ok {
		r.Ref = true
		rest = c2
		if lt, c3, ok := eat(rest, token.Lifetime); ok {
			l := lifetimeFrom(lt)
			r.Lifetime = &l
			rest = c3
		}
	}
	if _, c2, ok := eat(rest, token.KwMut); ok {
		r.Mut = true
		rest = c2
	}
	selfTok, rest, ok := eat(rest, token.KwSelfValue)
	if !ok {
		return nil, c, false
	}
	// `self: Ty` is a typed argument, not a receiver.
	if !r.Ref && rest.Peek().Kind == token.Colon {
		return nil, c, false
	}
	r.Span = start.Cover(selfTok.Span)
	return r, rest, true
}

func (p *parser) parseItemFn(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	sig, c, err := p.parseSignature(c)
	if err != nil {
		return nil, c, err
	}
	body, c, err := p.parseBlock(c)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemFn{Attrs: attrs, Vis: vis, Sig: sig, Body: body}
	it.Span = start.Cover(body.Span)
	return it, c, nil
}

func (p *parser) parseItemStruct(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwStruct)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemStruct{Attrs: attrs, Vis: vis}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	it.Generics, c, err = p.parseGenerics(c)
	if err != nil {
		return nil, c, err
	}
	switch c.Peek().Kind {
	case token.LParen:
		fields, rest, err := p.parseTupleFields(c)
		if err != nil {
			return nil, c, err
		}
		c = rest
		c, err = p.parseWhere(c, &it.Generics)
		if err != nil {
			return nil, c, err
		}
		semi, rest, err := expect(c, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		it.Fields = fields
		it.Span = start.Cover(semi.Span)
		return it, rest, nil
	case token.Semicolon:
		semi, rest, _ := eat(c, token.Semicolon)
		it.Fields.Kind = ast.FieldsUnit
		it.Span = start.Cover(semi.Span)
		return it, rest, nil
	default:
		c, err = p.parseWhere(c, &it.Generics)
		if err != nil {
			return nil, c, err
		}
		fields, rest, err := p.parseNamedFields(c)
		if err != nil {
			return nil, c, err
		}
		it.Fields = fields
		it.Span = start.Cover(fields.Span)
		return it, rest, nil
	}
}

func (p *parser) parseNamedFields(c cur) (ast.Fields, cur, error) {
	var fs ast.Fields
	fs.Kind = ast.FieldsNamed
	open, c, err := expect(c, token.LBrace)
	if err != nil {
		return fs, c, err
	}
	fs.Fields, c, err = combinator.Punctuated(p.namedFieldParser(), token.Comma, true)(c)
	if err != nil {
		return fs, c, err
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return fs, c, err
	}
	fs.Span = open.Span.Cover(closeTok.Span)
	return fs, c, nil
}

func (p *parser) namedFieldParser() combinator.Parser[ast.Field] {
	return func(c cur) (ast.Field, cur, error) {
		var f ast.Field
		start := c.Span()
		attrs, c2, err := p.parseOuterAttrs(c)
		if err != nil {
			return f, c, err
		}
		vis, c2, err := p.parseVisibility(c2)
		if err != nil {
			return f, c, err
		}
		id, c2, err := parseIdent(c2)
		if err != nil {
			return f, c, err
		}
		_, c2, err = expect(c2, token.Colon)
		if err != nil {
			return f, c, err
		}
		ty, c2, err := p.parseType(c2)
		if err != nil {
			return f, c, err
		}
		f.Attrs = attrs
		f.Vis = vis
		f.Name = &id
		f.Ty = ty
		f.Span = start.Cover(ty.NodeSpan())
		return f, c2, nil
	}
}

func (p *parser) parseTupleFields(c cur) (ast.Fields, cur, error) {
	var fs ast.Fields
	fs.Kind = ast.FieldsUnnamed
	open, c, err := expect(c, token.LParen)
	if err != nil {
		return fs, c, err
	}
	fs.Fields, c, err = combinator.Punctuated(p.tupleFieldParser(), token.Comma, true)(c)
	if err != nil {
		return fs, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return fs, c, err
	}
	fs.Span = open.Span.Cover(closeTok.Span)
	return fs, c, nil
}

func (p *parser) tupleFieldParser() combinator.Parser[ast.Field] {
	return func(c cur) (ast.Field, cur, error) {
		var f ast.Field
		start := c.Span()
		attrs, c2, err := p.parseOuterAttrs(c)
		if err != nil {
			return f, c, err
		}
		vis, c2, err := p.parseVisibility(c2)
		if err != nil {
			return f, c, err
		}
		ty, c2, err := p.parseType(c2)
		if err != nil {
			return f, c, err
		}
		f.Attrs = attrs
		f.Vis = vis
		f.Ty = ty
		f.Span = start.Cover(ty.NodeSpan())
		return f, c2, nil
	}
}

func (p *parser) parseItemEnum(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwEnum)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemEnum{Attrs: attrs, Vis: vis}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	it.Generics, c, err = p.parseGenerics(c)
	if err != nil {
		return nil, c, err
	}
	c, err = p.parseWhere(c, &it.Generics)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	it.Variants, c, err = combinator.Punctuated(p.variantParser(), token.Comma, true)(c)
	if err != nil {
		return nil, c, err
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(closeTok.Span)
	return it, c, nil
}

func (p *parser) variantParser() combinator.Parser[ast.Variant] {
	return func(c cur) (ast.Variant, cur, error) {
		var v ast.Variant
		start := c.Span()
		attrs, c2, err := p.parseOuterAttrs(c)
		if err != nil {
			return v, c, err
		}
		id, c2, err := parseIdent(c2)
		if err != nil {
			return v, c, err
		}
		v.Attrs = attrs
		v.Ident = id
		v.Span = start.Cover(id.Span)
		switch c2.Peek().Kind {
		case token.LBrace:
			fields, rest, err := p.parseNamedFields(c2)
			if err != nil {
				return v, c, err
			}
			v.Fields = fields
			v.Span = v.Span.Cover(fields.Span)
			c2 = rest
		case token.LParen:
			fields, rest, err := p.parseTupleFields(c2)
			if err != nil {
				return v, c, err
			}
			v.Fields = fields
			v.Span = v.Span.Cover(fields.Span)
			c2 = rest
		case token.Assign:
			disc, rest, err := p.parseExpr(c2.Advance(), false)
			if err != nil {
				return v, c, err
			}
			v.Discriminant = disc
			v.Span = v.Span.Cover(disc.NodeSpan())
			c2 = rest
		}
		return v, c2, nil
	}
}

func (p *parser) parseItemTrait(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwTrait)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemTrait{Attrs: attrs, Vis: vis}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	it.Generics, c, err = p.parseGenerics(c)
	if err != nil {
		return nil, c, err
	}
	if _, rest, ok := eat(c, token.Colon); ok {
		bounds, afterBounds, err := p.parseBoundsList(rest)
		if err != nil {
			return nil, c, err
		}
		it.Supertraits = bounds
		c = afterBounds
	}
	c, err = p.parseWhere(c, &it.Generics)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	for c.Peek().Kind != token.RBrace {
		ti, rest, err := p.parseTraitItem(c)
		if err != nil {
			return nil, c, err
		}
		it.Items = append(it.Items, ti)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(closeTok.Span)
	return it, c, nil
}

func (p *parser) parseTraitItem(c cur) (ast.TraitItem, cur, error) {
	start := c.Span()
	attrs, c2, err := p.parseOuterAttrs(c)
	if err != nil {
		return nil, c, err
	}
	switch c2.Peek().Kind {
	case token.KwFn:
		sig, rest, err := p.parseSignature(c2)
		if err != nil {
			return nil, c, err
		}
		ti := &ast.TraitItemFn{Attrs: attrs, Sig: sig}
		if semi, afterSemi, ok := eat(rest, token.Semicolon); ok {
			ti.Span = start.Cover(semi.Span)
			return ti, afterSemi, nil
		}
		body, afterBody, err := p.parseBlock(rest)
		if err != nil {
			return nil, c, err
		}
		ti.Default = body
		ti.Span = start.Cover(body.Span)
		return ti, afterBody, nil
	case token.KwConst:
		id, rest, err := parseIdent(c2.Advance())
		if err != nil {
			return nil, c, err
		}
		_, rest, err = expect(rest, token.Colon)
		if err != nil {
			return nil, c, err
		}
		ty, rest, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		ti := &ast.TraitItemConst{Attrs: attrs, Ident: id, Ty: ty}
		if _, afterAssign, ok := eat(rest, token.Assign); ok {
			def, afterDef, err := p.parseExpr(afterAssign, false)
			if err != nil {
				return nil, c, err
			}
			ti.Default = def
			rest = afterDef
		}
		semi, rest, err := expect(rest, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		ti.Span = start.Cover(semi.Span)
		return ti, rest, nil
	case token.KwType:
		id, rest, err := parseIdent(c2.Advance())
		if err != nil {
			return nil, c, err
		}
		ti := &ast.TraitItemType{Attrs: attrs, Ident: id}
		if _, afterColon, ok := eat(rest, token.Colon); ok {
			bounds, afterBounds, err := p.parseBoundsList(afterColon)
			if err != nil {
				return nil, c, err
			}
			ti.Bounds = bounds
			rest = afterBounds
		}
		if _, afterAssign, ok := eat(rest, token.Assign); ok {
			def, afterDef, err := p.parseType(afterAssign)
			if err != nil {
				return nil, c, err
			}
			ti.Default = def
			rest = afterDef
		}
		semi, rest, err := expect(rest, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		ti.Span = start.Cover(semi.Span)
		return ti, rest, nil
	default:
		return nil, c, combinator.Expected(c2, "'fn', 'const' or 'type'")
	}
}

func (p *parser) parseItemImpl(c cur, attrs []ast.Attr, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwImpl)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemImpl{Attrs: attrs}
	it.Generics, c, err = p.parseGenerics(c)
	if err != nil {
		return nil, c, err
	}
	first, c, err := p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	if _, rest, ok := eat(c, token.KwFor); ok {
		tp, ok := first.(*ast.TypePath)
		if !ok {
			return nil, c, combinator.Expected(c, "a trait path before 'for'")
		}
		it.Trait = &tp.Path
		it.SelfTy, c, err = p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
	} else {
		it.SelfTy = first
	}
	c, err = p.parseWhere(c, &it.Generics)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	for c.Peek().Kind != token.RBrace {
		ii, rest, err := p.parseImplItem(c)
		if err != nil {
			return nil, c, err
		}
		it.Items = append(it.Items, ii)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(closeTok.Span)
	return it, c, nil
}

func (p *parser) parseImplItem(c cur) (ast.ImplItem, cur, error) {
	start := c.Span()
	attrs, c2, err := p.parseOuterAttrs(c)
	if err != nil {
		return nil, c, err
	}
	vis, c2, err := p.parseVisibility(c2)
	if err != nil {
		return nil, c, err
	}
	switch c2.Peek().Kind {
	case token.KwFn:
		sig, rest, err := p.parseSignature(c2)
		if err != nil {
			return nil, c, err
		}
		body, afterBody, err := p.parseBlock(rest)
		if err != nil {
			return nil, c, err
		}
		ii := &ast.ImplItemFn{Attrs: attrs, Vis: vis, Sig: sig, Body: body}
		ii.Span = start.Cover(body.Span)
		return ii, afterBody, nil
	case token.KwConst:
		id, rest, err := parseIdent(c2.Advance())
		if err != nil {
			return nil, c, err
		}
		_, rest, err = expect(rest, token.Colon)
		if err != nil {
			return nil, c, err
		}
		ty, rest, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		_, rest, err = expect(rest, token.Assign)
		if err != nil {
			return nil, c, err
		}
		value, rest, err := p.parseExpr(rest, false)
		if err != nil {
			return nil, c, err
		}
		semi, rest, err := expect(rest, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		ii := &ast.ImplItemConst{Attrs: attrs, Vis: vis, Ident: id, Ty: ty, Expr: value}
		ii.Span = start.Cover(semi.Span)
		return ii, rest, nil
	case token.KwType:
		id, rest, err := parseIdent(c2.Advance())
		if err != nil {
			return nil, c, err
		}
		_, rest, err = expect(rest, token.Assign)
		if err != nil {
			return nil, c, err
		}
		ty, rest, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		semi, rest, err := expect(rest, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		ii := &ast.ImplItemType{Attrs: attrs, Vis: vis, Ident: id, Ty: ty}
		ii.Span = start.Cover(semi.Span)
		return ii, rest, nil
	default:
		return nil, c, combinator.Expected(c2, "'fn', 'const' or 'type'")
	}
}

func (p *parser) parseItemMod(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwMod)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemMod{Attrs: attrs, Vis: vis}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	if semi, rest, ok := eat(c, token.Semicolon); ok {
		it.Span = start.Cover(semi.Span)
		return it, rest, nil
	}
	_, c, err = expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	it.Inline = true
	inner, c, err := p.parseInnerAttrs(c)
	if err != nil {
		return nil, c, err
	}
	it.Attrs = append(it.Attrs, inner...)
	for c.Peek().Kind != token.RBrace {
		sub, rest, err := p.parseItem(c)
		if err != nil {
			return nil, c, err
		}
		it.Items = append(it.Items, sub)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(closeTok.Span)
	return it, c, nil
}

func (p *parser) parseItemUse(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwUse)
	if err != nil {
		return nil, c, err
	}
	tree, c, err := p.parseUseTree(c)
	if err != nil {
		return nil, c, err
	}
	semi, c, err := expect(c, token.Semicolon)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemUse{Attrs: attrs, Vis: vis, Tree: tree}
	it.Span = start.Cover(semi.Span)
	return it, c, nil
}

func (p *parser) parseUseTree(c cur) (ast.UseTree, cur, error) {
	tok := c.Peek()
	switch {
	case tok.Kind == token.Star:
		t := &ast.UseGlob{}
		t.Span = tok.Span
		return t, c.Advance(), nil
	case tok.Kind == token.LBrace:
		return p.parseUseGroup(c)
	case isSegmentIdent(tok.Kind):
		id := identFrom(tok)
		rest := c.Advance()
		if _, afterSep, ok := eat(rest, token.ColonColon); ok {
			sub, afterSub, err := p.parseUseTree(afterSep)
			if err != nil {
				return nil, c, err
			}
			t := &ast.UsePath{Ident: id, Tree: sub}
			t.Span = tok.Span.Cover(sub.NodeSpan())
			return t, afterSub, nil
		}
		if _, afterAs, ok := eat(rest, token.KwAs); ok {
			alias, afterAlias, err := parseIdent(afterAs)
			if err != nil {
				return nil, c, err
			}
			t := &ast.UseRename{Ident: id, Alias: alias}
			t.Span = tok.Span.Cover(alias.Span)
			return t, afterAlias, nil
		}
		t := &ast.UseName{Ident: id}
		t.Span = tok.Span
		return t, rest, nil
	default:
		return nil, c, combinator.Expected(c, "a use tree")
	}
}

func (p *parser) parseUseGroup(c cur) (ast.UseTree, cur, error) {
	open, c, err := expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	items, c, err := combinator.Punctuated(p.useTreeParser(), token.Comma, true)(c)
	if err != nil {
		return nil, c, err
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	t := &ast.UseGroup{Items: items}
	t.Span = open.Span.Cover(closeTok.Span)
	return t, c, nil
}

func (p *parser) useTreeParser() combinator.Parser[ast.UseTree] {
	return func(c cur) (ast.UseTree, cur, error) {
		return p.parseUseTree(c)
	}
}

func (p *parser) parseItemConst(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwConst)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemConst{Attrs: attrs, Vis: vis}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.Colon)
	if err != nil {
		return nil, c, err
	}
	it.Ty, c, err = p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.Assign)
	if err != nil {
		return nil, c, err
	}
	it.Expr, c, err = p.parseExpr(c, false)
	if err != nil {
		return nil, c, err
	}
	semi, c, err := expect(c, token.Semicolon)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(semi.Span)
	return it, c, nil
}

func (p *parser) parseItemStatic(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwStatic)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemStatic{Attrs: attrs, Vis: vis}
	if _, rest, ok := eat(c, token.KwMut); ok {
		it.Mut = true
		c = rest
	}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.Colon)
	if err != nil {
		return nil, c, err
	}
	it.Ty, c, err = p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.Assign)
	if err != nil {
		return nil, c, err
	}
	it.Expr, c, err = p.parseExpr(c, false)
	if err != nil {
		return nil, c, err
	}
	semi, c, err := expect(c, token.Semicolon)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(semi.Span)
	return it, c, nil
}

func (p *parser) parseItemForeignMod(c cur, attrs []ast.Attr, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwExtern)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemForeignMod{Attrs: attrs, Abi: "C"}
	if abi, rest, ok := eat(c, token.StrLit); ok {
		it.Abi = cookStringText(abi.Text)
		c = rest
	}
	_, c, err = expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	for c.Peek().Kind != token.RBrace {
		fi, rest, err := p.parseForeignItem(c)
		if err != nil {
			return nil, c, err
		}
		it.Items = append(it.Items, fi)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(closeTok.Span)
	return it, c, nil
}

func (p *parser) parseForeignItem(c cur) (ast.ForeignItem, cur, error) {
	start := c.Span()
	attrs, c2, err := p.parseOuterAttrs(c)
	if err != nil {
		return nil, c, err
	}
	vis, c2, err := p.parseVisibility(c2)
	if err != nil {
		return nil, c, err
	}
	switch c2.Peek().Kind {
	case token.KwFn:
		sig, rest, err := p.parseSignature(c2)
		if err != nil {
			return nil, c, err
		}
		semi, rest, err := expect(rest, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		fi := &ast.ForeignItemFn{Attrs: attrs, Vis: vis, Sig: sig}
		fi.Span = start.Cover(semi.Span)
		return fi, rest, nil
	case token.KwStatic:
		c2 = c2.Advance()
		fi := &ast.ForeignItemStatic{Attrs: attrs, Vis: vis}
		if _, rest, ok := eat(c2, token.KwMut); ok {
			fi.Mut = true
			c2 = rest
		}
		fi.Ident, c2, err = parseIdent(c2)
		if err != nil {
			return nil, c, err
		}
		_, c2, err = expect(c2, token.Colon)
		if err != nil {
			return nil, c, err
		}
		fi.Ty, c2, err = p.parseType(c2)
		if err != nil {
			return nil, c, err
		}
		semi, c2, err := expect(c2, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		fi.Span = start.Cover(semi.Span)
		return fi, c2, nil
	default:
		return nil, c, combinator.Expected(c2, "'fn' or 'static'")
	}
}

func (p *parser) parseItemType(c cur, attrs []ast.Attr, vis ast.Visibility, start source.Span) (ast.Item, cur, error) {
	_, c, err := expect(c, token.KwType)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemType{Attrs: attrs, Vis: vis}
	it.Ident, c, err = parseIdent(c)
	if err != nil {
		return nil, c, err
	}
	it.Generics, c, err = p.parseGenerics(c)
	if err != nil {
		return nil, c, err
	}
	c, err = p.parseWhere(c, &it.Generics)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.Assign)
	if err != nil {
		return nil, c, err
	}
	it.Ty, c, err = p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	semi, c, err := expect(c, token.Semicolon)
	if err != nil {
		return nil, c, err
	}
	it.Span = start.Cover(semi.Span)
	return it, c, nil
}

// parseItemMacro parses `path! { ... }` in item position, including the
// named definition form `macro_rules! name { ... }`.
func (p *parser) parseItemMacro(c cur, attrs []ast.Attr, start source.Span) (ast.Item, cur, error) {
	path, c2, err := p.parsePath(c, pathMod)
	if err != nil {
		return nil, c, err
	}
	_, c2, err = expect(c2, token.Bang)
	if err != nil {
		return nil, c, err
	}
	it := &ast.ItemMacro{Attrs: attrs}
	if id, rest, ok := eat(c2, token.Ident); ok {
		name := identFrom(id)
		it.Name = &name
		c2 = rest
	}
	mac, c2, err := p.parseMacroBody(c2, path)
	if err != nil {
		return nil, c, err
	}
	it.Mac = mac
	it.Span = start.Cover(mac.Span)
	if mac.Delim != ast.DelimBrace {
		semi, rest, err := expect(c2, token.Semicolon)
		if err != nil {
			return nil, c, err
		}
		it.Semi = true
		it.Span = start.Cover(semi.Span)
		c2 = rest
	}
	return it, c2, nil
}
