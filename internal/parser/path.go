package parser

import (
	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/token"
)

// pathStyle controls how generic arguments attach to path segments.
type pathStyle uint8

const (
	// pathType allows plain `Seg<args>` angle brackets.
	pathType pathStyle = iota
	// pathExpr requires the turbofish `Seg::<args>` spelling, so that `<`
	// stays available as the comparison operator.
	pathExpr
	// pathMod forbids generic arguments entirely (use trees, attributes).
	pathMod
)

func isSegmentIdent(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwSelfValue, token.KwSelfType, token.KwCrate, token.KwSuper:
		return true
	default:
		return false
	}
}

func (p *parser) parsePath(c cur, style pathStyle) (ast.Path, cur, error) {
	var path ast.Path
	start := c.Span()
	if _, rest, ok := eat(c, token.ColonColon); ok && isSegmentIdent(rest.Peek().Kind) {
		path.Global = true
		c = rest
	}
	for {
		tok := c.Peek()
		if !isSegmentIdent(tok.Kind) {
			return ast.Path{}, c, combinator.Expected(c, "path segment")
		}
		seg := ast.PathSegment{Ident: identFrom(tok)}
		seg.Span = tok.Span
		c = c.Advance()

		switch style {
		case pathType:
			if c.Peek().Kind == token.Lt {
				args, rest, err := p.parseGenericArgs(c, false)
				if err != nil {
					return ast.Path{}, c, err
				}
				seg.Args = args
				seg.Span = seg.Span.Cover(args.Span)
				c = rest
			}
		case pathExpr:
			if c.Peek().Kind == token.ColonColon && c.PeekN(1).Kind == token.Lt {
				args, rest, err := p.parseGenericArgs(c.Advance(), true)
				if err != nil {
					return ast.Path{}, c, err
				}
				seg.Args = args
				seg.Span = seg.Span.Cover(args.Span)
				c = rest
			}
		}
		path.Segments.Push(seg)

		sep, rest, ok := eat(c, token.ColonColon)
		if !ok || !isSegmentIdent(rest.Peek().Kind) {
			break
		}
		path.Segments.PushSep(sep)
		c = rest
	}
	path.Span = start.Cover(path.Segments.At(path.Segments.Len() - 1).Span)
	return path, c, nil
}

// parseGenericArgs parses `<...>` with c sitting on the '<'. Closing angles
// go through CloseAngle so that `Vec<Vec<T>>` can split its '>>'.
func (p *parser) parseGenericArgs(c cur, turbofish bool) (*ast.GenericArgs, cur, error) {
	ltTok, c, err := expect(c, token.Lt)
	if err != nil {
		return nil, c, err
	}
	ga := &ast.GenericArgs{Turbofish: turbofish}
	for {
		if gt, rest, err := combinator.CloseAngle(c); err == nil {
			ga.Span = ltTok.Span.Cover(gt.Span)
			return ga, rest, nil
		}
		arg, rest, err := p.parseGenericArg(c)
		if err != nil {
			return nil, c, err
		}
		ga.Args.Push(arg)
		c = rest
		if comma, rest, ok := eat(c, token.Comma); ok {
			ga.Args.PushSep(comma)
			c = rest
			continue
		}
		gt, rest, err := combinator.CloseAngle(c)
		if err != nil {
			return nil, c, err
		}
		ga.Span = ltTok.Span.Cover(gt.Span)
		return ga, rest, nil
	}
}

func (p *parser) parseGenericArg(c cur) (ast.GenericArg, cur, error) {
	tok := c.Peek()
	if tok.Kind == token.Lifetime {
		arg := &ast.GenericArgLifetime{Lifetime: lifetimeFrom(tok)}
		arg.Span = tok.Span
		return arg, c.Advance(), nil
	}
	if tok.Kind == token.Ident && c.PeekN(1).Kind == token.Assign {
		id := identFrom(tok)
		ty, rest, err := p.parseType(c.Advance().Advance())
		if err != nil {
			return nil, c, err
		}
		arg := &ast.GenericArgBinding{Ident: id, Ty: ty}
		arg.Span = tok.Span.Cover(ty.NodeSpan())
		return arg, rest, nil
	}
	ty, rest, err := p.parseType(c)
	if err != nil {
		return nil, c, err
	}
	arg := &ast.GenericArgType{Ty: ty}
	arg.Span = ty.NodeSpan()
	return arg, rest, nil
}
