package parser

import (
	"graft/internal/ast"
	"graft/internal/source"
	"graft/internal/combinator"
	"graft/internal/token"
)

// parseExpr parses a full expression. noStruct suppresses struct literals,
// which is required in the header positions (if and while conditions, match
// scrutinees, for iterators) where `Path {` must read as the loop body. The
// restriction lifts inside any delimiter.
func (p *parser) parseExpr(c cur, noStruct bool) (ast.Expr, cur, error) {
	return p.parseAssign(c, noStruct)
}

// parseAssign handles `=` and the compound assignments, which bind loosest
// and associate to the right.
func (p *parser) parseAssign(c cur, noStruct bool) (ast.Expr, cur, error) {
	lhs, c, err := p.parseRange(c, noStruct)
	if err != nil {
		return nil, c, err
	}
	op, ok := assignOps[c.Peek().Kind]
	if !ok {
		return lhs, c, nil
	}
	rhs, rest, err := p.parseAssign(c.Advance(), noStruct)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprBinary{Op: op, Left: lhs, Right: rhs}
	e.Span = lhs.NodeSpan().Cover(rhs.NodeSpan())
	return e, rest, nil
}

// parseRange handles `..` and `..=`, whose operands are both optional.
func (p *parser) parseRange(c cur, noStruct bool) (ast.Expr, cur, error) {
	tok := c.Peek()
	if tok.Kind == token.DotDot || tok.Kind == token.DotDotEq {
		e := &ast.ExprRange{Inclusive: tok.Kind == token.DotDotEq}
		e.Span = tok.Span
		rest := c.Advance()
		if canStartExpr(rest.Peek(), noStruct) {
			to, afterTo, err := p.parseBinaryChain(rest, 1, noStruct)
			if err != nil {
				return nil, c, err
			}
			e.To = to
			e.Span = e.Span.Cover(to.NodeSpan())
			rest = afterTo
		}
		return e, rest, nil
	}
	lhs, c, err := p.parseBinaryChain(c, 1, noStruct)
	if err != nil {
		return nil, c, err
	}
	tok = c.Peek()
	if tok.Kind != token.DotDot && tok.Kind != token.DotDotEq {
		return lhs, c, nil
	}
	e := &ast.ExprRange{From: lhs, Inclusive: tok.Kind == token.DotDotEq}
	e.Span = lhs.NodeSpan().Cover(tok.Span)
	c = c.Advance()
	if canStartExpr(c.Peek(), noStruct) {
		to, rest, err := p.parseBinaryChain(c, 1, noStruct)
		if err != nil {
			return nil, c, err
		}
		e.To = to
		e.Span = e.Span.Cover(to.NodeSpan())
		c = rest
	}
	return e, c, nil
}

// parseBinaryChain is the precedence climb over the binary operator table.
func (p *parser) parseBinaryChain(c cur, minPrec int, noStruct bool) (ast.Expr, cur, error) {
	left, c, err := p.parseCast(c, noStruct)
	if err != nil {
		return nil, c, err
	}
	for {
		entry, ok := binOps[c.Peek().Kind]
		if !ok || entry.prec < minPrec {
			return left, c, nil
		}
		right, rest, err := p.parseBinaryChain(c.Advance(), entry.prec+1, noStruct)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprBinary{Op: entry.op, Left: left, Right: right}
		e.Span = left.NodeSpan().Cover(right.NodeSpan())
		left = e
		c = rest
	}
}

// parseCast handles `expr as Type`, which binds tighter than any binary
// operator and chains left to right.
func (p *parser) parseCast(c cur, noStruct bool) (ast.Expr, cur, error) {
	e, c, err := p.parseUnary(c, noStruct)
	if err != nil {
		return nil, c, err
	}
	for {
		_, rest, ok := eat(c, token.KwAs)
		if !ok {
			return e, c, nil
		}
		ty, afterTy, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		cast := &ast.ExprCast{Expr: e, Ty: ty}
		cast.Span = e.NodeSpan().Cover(ty.NodeSpan())
		e = cast
		c = afterTy
	}
}

func (p *parser) parseUnary(c cur, noStruct bool) (ast.Expr, cur, error) {
	tok := c.Peek()
	switch tok.Kind {
	case token.Minus, token.Bang, token.Star:
		var op ast.UnOp
		switch tok.Kind {
		case token.Minus:
			op = ast.OpNeg
		case token.Bang:
			op = ast.OpNot
		default:
			op = ast.OpDeref
		}
		inner, rest, err := p.parseUnary(c.Advance(), noStruct)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprUnary{Op: op, Expr: inner}
		e.Span = tok.Span.Cover(inner.NodeSpan())
		return e, rest, nil
	case token.Amp:
		return p.parseReference(c.Advance(), tok, noStruct)
	case token.AndAnd:
		inner, rest, err := p.parseReference(c.Advance(), tok, noStruct)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprReference{Expr: inner}
		e.Span = tok.Span.Cover(inner.NodeSpan())
		return e, rest, nil
	default:
		return p.parsePostfix(c, noStruct)
	}
}

func (p *parser) parseReference(c cur, amp token.Token, noStruct bool) (ast.Expr, cur, error) {
	mut := false
	if _, rest, ok := eat(c, token.KwMut); ok {
		mut = true
		c = rest
	}
	inner, rest, err := p.parseUnary(c, noStruct)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprReference{Mut: mut, Expr: inner}
	e.Span = amp.Span.Cover(inner.NodeSpan())
	return e, rest, nil
}

func (p *parser) parsePostfix(c cur, noStruct bool) (ast.Expr, cur, error) {
	e, c, err := p.parseAtom(c, noStruct)
	if err != nil {
		return nil, c, err
	}
	for {
		tok := c.Peek()
		switch tok.Kind {
		case token.Dot:
			next, rest, err := p.parseDotSuffix(c.Advance(), e)
			if err != nil {
				return nil, c, err
			}
			e = next
			c = rest
		case token.LParen:
			args, closeTok, rest, err := p.parseCallArgs(c)
			if err != nil {
				return nil, c, err
			}
			call := &ast.ExprCall{Func: e, Args: args}
			call.Span = e.NodeSpan().Cover(closeTok.Span)
			e = call
			c = rest
		case token.LBracket:
			idx, rest, err := p.parseExpr(c.Advance(), false)
			if err != nil {
				return nil, c, err
			}
			closeTok, rest, err := expect(rest, token.RBracket)
			if err != nil {
				return nil, c, err
			}
			ix := &ast.ExprIndex{Base: e, Index: idx}
			ix.Span = e.NodeSpan().Cover(closeTok.Span)
			e = ix
			c = rest
		case token.Question:
			t := &ast.ExprTry{Expr: e}
			t.Span = e.NodeSpan().Cover(tok.Span)
			e = t
			c = c.Advance()
		default:
			return e, c, nil
		}
	}
}

// parseDotSuffix parses what follows `expr.`: a tuple index, a field, or a
// method call with an optional turbofish.
func (p *parser) parseDotSuffix(c cur, base ast.Expr) (ast.Expr, cur, error) {
	tok := c.Peek()
	if tok.Kind == token.IntLit {
		member := ast.Ident{Name: tok.Text}
		member.Span = tok.Span
		e := &ast.ExprField{Base: base, Member: member}
		e.Span = base.NodeSpan().Cover(tok.Span)
		return e, c.Advance(), nil
	}
	if tok.Kind != token.Ident {
		return nil, c, combinator.Expected(c, "field or method name")
	}
	name := identFrom(tok)
	c = c.Advance()

	var turbofish *ast.GenericArgs
	if c.Peek().Kind == token.ColonColon && c.PeekN(1).Kind == token.Lt {
		args, rest, err := p.parseGenericArgs(c.Advance(), true)
		if err != nil {
			return nil, c, err
		}
		turbofish = args
		c = rest
	}
	if c.Peek().Kind != token.LParen {
		if turbofish != nil {
			return nil, c, combinator.Expected(c, "method arguments")
		}
		e := &ast.ExprField{Base: base, Member: name}
		e.Span = base.NodeSpan().Cover(name.Span)
		return e, c, nil
	}
	args, closeTok, rest, err := p.parseCallArgs(c)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprMethodCall{Recv: base, Method: name, Turbofish: turbofish, Args: args}
	e.Span = base.NodeSpan().Cover(closeTok.Span)
	return e, rest, nil
}

func (p *parser) parseCallArgs(c cur) (ast.Punctuated[ast.Expr], token.Token, cur, error) {
	var zero ast.Punctuated[ast.Expr]
	_, c, err := expect(c, token.LParen)
	if err != nil {
		return zero, token.Token{}, c, err
	}
	args, c, err := combinator.Punctuated(p.exprParser(false), token.Comma, true)(c)
	if err != nil {
		return zero, token.Token{}, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return zero, token.Token{}, c, err
	}
	return args, closeTok, c, nil
}

func (p *parser) exprParser(noStruct bool) combinator.Parser[ast.Expr] {
	return func(c cur) (ast.Expr, cur, error) {
		return p.parseExpr(c, noStruct)
	}
}

func (p *parser) parseAtom(c cur, noStruct bool) (ast.Expr, cur, error) {
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
	case token.LParen:
		return p.parseParenOrTuple(c)
	case token.LBracket:
		return p.parseArrayOrRepeat(c)
	case token.LBrace:
		return p.parseBlockExpr(c, nil)
	case token.KwIf:
		return p.parseIf(c)
	case token.KwMatch:
		return p.parseMatch(c)
	case token.KwWhile:
		return p.parseWhile(c, nil, tok.Span)
	case token.KwLoop:
		return p.parseLoop(c, nil, tok.Span)
	case token.KwFor:
		return p.parseFor(c, nil, tok.Span)
	case token.Lifetime:
		if c.PeekN(1).Kind == token.Colon {
			label := lifetimeFrom(tok)
			rest := c.Advance().Advance()
			switch rest.Peek().Kind {
			case token.KwWhile:
				return p.parseWhile(rest, &label, tok.Span)
			case token.KwLoop:
				return p.parseLoop(rest, &label, tok.Span)
			case token.KwFor:
				return p.parseFor(rest, &label, tok.Span)
			}
			return nil, c, combinator.Expected(rest, "a loop after the label")
		}
		return nil, c, combinator.Expected(c, "an expression")
	case token.KwMove, token.Pipe, token.OrOr:
		return p.parseClosure(c, noStruct)
	case token.KwReturn:
		e := &ast.ExprReturn{}
		e.Span = tok.Span
		rest := c.Advance()
		if canStartExpr(rest.Peek(), noStruct) {
			inner, afterInner, err := p.parseExpr(rest, noStruct)
			if err != nil {
				return nil, c, err
			}
			e.Expr = inner
			e.Span = e.Span.Cover(inner.NodeSpan())
			rest = afterInner
		}
		return e, rest, nil
	case token.KwBreak:
		e := &ast.ExprBreak{}
		e.Span = tok.Span
		rest := c.Advance()
		if lt, afterLt, ok := eat(rest, token.Lifetime); ok {
			label := lifetimeFrom(lt)
			e.Label = &label
			e.Span = e.Span.Cover(lt.Span)
			rest = afterLt
		}
		if canStartExpr(rest.Peek(), noStruct) {
			inner, afterInner, err := p.parseExpr(rest, noStruct)
			if err != nil {
				return nil, c, err
			}
			e.Expr = inner
			e.Span = e.Span.Cover(inner.NodeSpan())
			rest = afterInner
		}
		return e, rest, nil
	case token.KwContinue:
		e := &ast.ExprContinue{}
		e.Span = tok.Span
		rest := c.Advance()
		if lt, afterLt, ok := eat(rest, token.Lifetime); ok {
			label := lifetimeFrom(lt)
			e.Label = &label
			e.Span = e.Span.Cover(lt.Span)
			rest = afterLt
		}
		return e, rest, nil
	case token.KwUnsafe:
		if c.PeekN(1).Kind == token.LBrace {
			return p.parseBlockExpr(c.Advance(), &tok)
		}
		return nil, c, combinator.Expected(c, "a block after 'unsafe'")
	default:
		if isSegmentIdent(tok.Kind) || tok.Kind == token.ColonColon {
			return p.parsePathExpr(c, noStruct)
		}
		return nil, c, combinator.Expected(c, "an expression")
	}
}

func (p *parser) parseParenOrTuple(c cur) (ast.Expr, cur, error) {
	open, c, err := expect(c, token.LParen)
	if err != nil {
		return nil, c, err
	}
	elems, c, err := combinator.Punctuated(p.exprParser(false), token.Comma, true)(c)
	if err != nil {
		return nil, c, err
	}
	closeTok, c, err := expect(c, token.RParen)
	if err != nil {
		return nil, c, err
	}
	sp := open.Span.Cover(closeTok.Span)
	if elems.Len() == 1 && !elems.Trailing {
		e := &ast.ExprParen{Expr: elems.At(0)}
		e.Span = sp
		return e, c, nil
	}
	e := &ast.ExprTuple{Elems: elems}
	e.Span = sp
	return e, c, nil
}

func (p *parser) parseArrayOrRepeat(c cur) (ast.Expr, cur, error) {
	open, c, err := expect(c, token.LBracket)
	if err != nil {
		return nil, c, err
	}
	if closeTok, rest, ok := eat(c, token.RBracket); ok {
		e := &ast.ExprArray{}
		e.Span = open.Span.Cover(closeTok.Span)
		return e, rest, nil
	}
	first, c, err := p.parseExpr(c, false)
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
		e := &ast.ExprRepeat{Elem: first, Len: length}
		e.Span = open.Span.Cover(closeTok.Span)
		return e, rest, nil
	}
	e := &ast.ExprArray{}
	e.Elems.Push(first)
	for {
		comma, rest, ok := eat(c, token.Comma)
		if !ok {
			break
		}
		c = rest
		if c.Peek().Kind == token.RBracket {
			e.Elems.PushSep(comma)
			break
		}
		next, rest, err := p.parseExpr(c, false)
		if err != nil {
			return nil, c, err
		}
		e.Elems.PushSep(comma)
		e.Elems.Push(next)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBracket)
	if err != nil {
		return nil, c, err
	}
	e.Span = open.Span.Cover(closeTok.Span)
	return e, c, nil
}

// parseBlockExpr parses `{ ... }` in expression position. An optional
// leading 'unsafe' token only widens the span; the tree keeps no unsafety
// marker.
func (p *parser) parseBlockExpr(c cur, unsafeTok *token.Token) (ast.Expr, cur, error) {
	block, rest, err := p.parseBlock(c)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprBlock{Block: block}
	e.Span = block.Span
	if unsafeTok != nil {
		e.Span = unsafeTok.Span.Cover(block.Span)
	}
	return e, rest, nil
}

func (p *parser) parseIf(c cur) (ast.Expr, cur, error) {
	ifTok, c, err := expect(c, token.KwIf)
	if err != nil {
		return nil, c, err
	}
	cond, c, err := p.parseExpr(c, true)
	if err != nil {
		return nil, c, err
	}
	then, c, err := p.parseBlock(c)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprIf{Cond: cond, Then: then}
	e.Span = ifTok.Span.Cover(then.Span)
	if _, rest, ok := eat(c, token.KwElse); ok {
		var alt ast.Expr
		if rest.Peek().Kind == token.KwIf {
			alt, rest, err = p.parseIf(rest)
		} else {
			alt, rest, err = p.parseBlockExpr(rest, nil)
		}
		if err != nil {
			return nil, c, err
		}
		e.Else = alt
		e.Span = e.Span.Cover(alt.NodeSpan())
		c = rest
	}
	return e, c, nil
}

func (p *parser) parseMatch(c cur) (ast.Expr, cur, error) {
	matchTok, c, err := expect(c, token.KwMatch)
	if err != nil {
		return nil, c, err
	}
	scrutinee, c, err := p.parseExpr(c, true)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprMatch{Expr: scrutinee}
	for c.Peek().Kind != token.RBrace {
		arm, rest, err := p.parseMatchArm(c)
		if err != nil {
			return nil, c, err
		}
		e.Arms = append(e.Arms, arm)
		c = rest

		if _, rest, ok := eat(c, token.Comma); ok {
			c = rest
			continue
		}
		if c.Peek().Kind != token.RBrace && !isBlockExpr(arm.Body) {
			return nil, c, combinator.Expected(c, "','")
		}
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	e.Span = matchTok.Span.Cover(closeTok.Span)
	return e, c, nil
}

func (p *parser) parseMatchArm(c cur) (ast.MatchArm, cur, error) {
	var arm ast.MatchArm
	start := c.Span()
	pat, c, err := p.parsePat(c)
	if err != nil {
		return arm, c, err
	}
	arm.Pat = pat
	if _, rest, ok := eat(c, token.KwIf); ok {
		guard, afterGuard, err := p.parseExpr(rest, false)
		if err != nil {
			return arm, c, err
		}
		arm.Guard = guard
		c = afterGuard
	}
	_, c, err = expect(c, token.FatArrow)
	if err != nil {
		return arm, c, err
	}
	body, c, err := p.parseExpr(c, false)
	if err != nil {
		return arm, c, err
	}
	arm.Body = body
	arm.Span = start.Cover(body.NodeSpan())
	return arm, c, nil
}

func (p *parser) parseWhile(c cur, label *ast.Lifetime, start source.Span) (ast.Expr, cur, error) {
	_, c, err := expect(c, token.KwWhile)
	if err != nil {
		return nil, c, err
	}
	cond, c, err := p.parseExpr(c, true)
	if err != nil {
		return nil, c, err
	}
	body, c, err := p.parseBlock(c)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprWhile{Label: label, Cond: cond, Body: body}
	e.Span = start.Cover(body.Span)
	return e, c, nil
}

func (p *parser) parseLoop(c cur, label *ast.Lifetime, start source.Span) (ast.Expr, cur, error) {
	_, c, err := expect(c, token.KwLoop)
	if err != nil {
		return nil, c, err
	}
	body, c, err := p.parseBlock(c)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprLoop{Label: label, Body: body}
	e.Span = start.Cover(body.Span)
	return e, c, nil
}

func (p *parser) parseFor(c cur, label *ast.Lifetime, start source.Span) (ast.Expr, cur, error) {
	_, c, err := expect(c, token.KwFor)
	if err != nil {
		return nil, c, err
	}
	pat, c, err := p.parsePat(c)
	if err != nil {
		return nil, c, err
	}
	_, c, err = expect(c, token.KwIn)
	if err != nil {
		return nil, c, err
	}
	iter, c, err := p.parseExpr(c, true)
	if err != nil {
		return nil, c, err
	}
	body, c, err := p.parseBlock(c)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprForLoop{Label: label, Pat: pat, Iter: iter, Body: body}
	e.Span = start.Cover(body.Span)
	return e, c, nil
}

func (p *parser) parseClosure(c cur, noStruct bool) (ast.Expr, cur, error) {
	e := &ast.ExprClosure{}
	start := c.Span()
	if _, rest, ok := eat(c, token.KwMove); ok {
		e.Move = true
		c = rest
	}
	if _, rest, ok := eat(c, token.OrOr); ok {
		c = rest
	} else {
		_, c2, err := expect(c, token.Pipe)
		if err != nil {
			return nil, c, err
		}
		c = c2
		args, c2, err := combinator.Punctuated(p.closureArgParser(), token.Comma, false)(c)
		if err != nil {
			return nil, c, err
		}
		e.Inputs = args
		_, c2, err = expect(c2, token.Pipe)
		if err != nil {
			return nil, c, err
		}
		c = c2
	}
	if _, rest, ok := eat(c, token.Arrow); ok {
		out, afterOut, err := p.parseType(rest)
		if err != nil {
			return nil, c, err
		}
		e.Output = out
		body, afterBody, err := p.parseBlockExpr(afterOut, nil)
		if err != nil {
			return nil, c, err
		}
		e.Body = body
		e.Span = start.Cover(body.NodeSpan())
		return e, afterBody, nil
	}
	body, rest, err := p.parseExpr(c, noStruct)
	if err != nil {
		return nil, c, err
	}
	e.Body = body
	e.Span = start.Cover(body.NodeSpan())
	return e, rest, nil
}

func (p *parser) closureArgParser() combinator.Parser[ast.ClosureArg] {
	return func(c cur) (ast.ClosureArg, cur, error) {
		var arg ast.ClosureArg
		pat, rest, err := p.parsePat(c)
		if err != nil {
			return arg, c, err
		}
		arg.Pat = pat
		arg.Span = pat.NodeSpan()
		if _, afterColon, ok := eat(rest, token.Colon); ok {
			ty, afterTy, err := p.parseType(afterColon)
			if err != nil {
				return arg, c, err
			}
			arg.Ty = ty
			arg.Span = arg.Span.Cover(ty.NodeSpan())
			rest = afterTy
		}
		return arg, rest, nil
	}
}

// parsePathExpr parses a path in expression position and whatever directly
// follows it: a macro invocation or a struct literal.
func (p *parser) parsePathExpr(c cur, noStruct bool) (ast.Expr, cur, error) {
	path, rest, err := p.parsePath(c, pathExpr)
	if err != nil {
		return nil, c, err
	}
	switch {
	case rest.Peek().Kind == token.Bang && rest.PeekN(1).Kind != token.Assign:
		mac, afterMac, err := p.parseMacroBody(rest.Advance(), path)
		if err != nil {
			return nil, c, err
		}
		e := &ast.ExprMacro{Mac: mac}
		e.Span = mac.Span
		return e, afterMac, nil
	case rest.Peek().Kind == token.LBrace && !noStruct:
		return p.parseStructLit(rest, path)
	default:
		e := &ast.ExprPath{Path: path}
		e.Span = path.Span
		return e, rest, nil
	}
}

func (p *parser) parseStructLit(c cur, path ast.Path) (ast.Expr, cur, error) {
	_, c, err := expect(c, token.LBrace)
	if err != nil {
		return nil, c, err
	}
	e := &ast.ExprStruct{Path: path}
	for c.Peek().Kind != token.RBrace {
		if _, rest, ok := eat(c, token.DotDot); ok {
			restExpr, afterRest, err := p.parseExpr(rest, false)
			if err != nil {
				return nil, c, err
			}
			e.Rest = restExpr
			c = afterRest
			break
		}
		fv, rest, err := p.parseFieldValue(c)
		if err != nil {
			return nil, c, err
		}
		e.Fields.Push(fv)
		c = rest
		comma, rest, ok := eat(c, token.Comma)
		if !ok {
			break
		}
		e.Fields.PushSep(comma)
		c = rest
	}
	closeTok, c, err := expect(c, token.RBrace)
	if err != nil {
		return nil, c, err
	}
	e.Span = path.Span.Cover(closeTok.Span)
	return e, c, nil
}

func (p *parser) parseFieldValue(c cur) (ast.FieldValue, cur, error) {
	var fv ast.FieldValue
	name, c, err := parseIdent(c)
	if err != nil {
		return fv, c, err
	}
	fv.Name = name
	fv.Span = name.Span
	if _, rest, ok := eat(c, token.Colon); ok {
		value, afterValue, err := p.parseExpr(rest, false)
		if err != nil {
			return fv, c, err
		}
		fv.Value = value
		fv.Span = fv.Span.Cover(value.NodeSpan())
		return fv, afterValue, nil
	}
	// Shorthand: the field name doubles as the value.
	var path ast.Path
	seg := ast.PathSegment{Ident: name}
	seg.Span = name.Span
	path.Segments.Push(seg)
	path.Span = name.Span
	value := &ast.ExprPath{Path: path}
	value.Span = name.Span
	fv.Value = value
	fv.Shorthand = true
	return fv, c, nil
}

// isBlockExpr reports whether the expression carries its own braces, which
// lets a statement or match arm omit the separator after it.
func isBlockExpr(e ast.Expr) bool {
	switch e.(type) {
	case *ast.ExprIf, *ast.ExprMatch, *ast.ExprWhile, *ast.ExprLoop,
		*ast.ExprForLoop, *ast.ExprBlock:
		return true
	default:
		return false
	}
}

// canStartExpr reports whether tok can begin an expression, used where an
// operand is optional (return, break, range ends).
func canStartExpr(tok token.Token, noStruct bool) bool {
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StrLit, token.ByteStrLit,
		token.CharLit, token.ByteLit, token.KwTrue, token.KwFalse,
		token.Ident, token.KwSelfValue, token.KwSelfType, token.KwCrate,
		token.KwSuper, token.ColonColon,
		token.LParen, token.LBracket,
		token.Minus, token.Bang, token.Star, token.Amp, token.AndAnd,
		token.DotDot, token.DotDotEq,
		token.Pipe, token.OrOr, token.KwMove,
		token.KwIf, token.KwMatch, token.KwWhile, token.KwLoop, token.KwFor,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwUnsafe,
		token.Lifetime:
		return true
	case token.LBrace:
		return !noStruct
	default:
		return false
	}
}
