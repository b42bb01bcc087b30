package printer

import (
	"graft/internal/ast"
	"graft/internal/token"
)

func (p *printer) printIdent(id ast.Ident) {
	if id.Raw {
		p.writer.WriteString("r#")
	}
	p.writer.WriteString(id.Name)
}

func (p *printer) printLifetime(lt ast.Lifetime) {
	p.writer.WriteString("'")
	p.writer.WriteString(lt.Name)
}

func (p *printer) printPath(path *ast.Path) {
	if path.Global {
		p.writer.WriteString("::")
	}
	for i := 0; i < path.Segments.Len(); i++ {
		if i > 0 {
			p.writer.WriteString("::")
		}
		seg := path.Segments.At(i)
		p.printIdent(seg.Ident)
		if seg.Args != nil {
			p.printGenericArgs(seg.Args)
		}
	}
}

func (p *printer) printGenericArgs(args *ast.GenericArgs) {
	if args.Turbofish {
		p.writer.WriteString("::")
	}
	p.writer.WriteString("<")
	for i := 0; i < args.Args.Len(); i++ {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		switch a := args.Args.At(i).(type) {
		case *ast.GenericArgLifetime:
			p.printLifetime(a.Lifetime)
		case *ast.GenericArgType:
			p.printType(a.Ty)
		case *ast.GenericArgBinding:
			p.printIdent(a.Ident)
			p.writer.WriteString(" = ")
			p.printType(a.Ty)
		}
	}
	p.writer.WriteString(">")
}

func (p *printer) printAttr(a *ast.Attr) {
	if a.IsDoc {
		if a.Style == ast.AttrInner {
			p.writer.WriteString("//!")
		} else {
			p.writer.WriteString("///")
		}
		p.writer.WriteString(a.DocText)
		p.writer.Newline()
		return
	}
	if a.Style == ast.AttrInner {
		p.writer.WriteString("#![")
	} else {
		p.writer.WriteString("#[")
	}
	p.printPath(&a.Path)
	p.printTokens(a.Tokens)
	p.writer.WriteString("]")
	p.writer.Newline()
}

func (p *printer) printAttrs(attrs []ast.Attr) {
	for i := range attrs {
		p.printAttr(&attrs[i])
	}
}

// printTokens renders an opaque token sequence with single spaces between
// tokens. Spacing is not significant when the sequence is re-lexed, except
// that adjacent puncts must not merge into a longer operator; the lexer
// already emitted maximal tokens, so a space between every pair is safe.
func (p *printer) printTokens(toks []token.Token) {
	for i, tok := range toks {
		if i > 0 {
			p.writer.WriteString(" ")
		}
		p.writer.WriteString(tok.Text)
	}
}

func (p *printer) printVisibility(vis ast.Visibility) {
	switch vis {
	case ast.VisPub:
		p.writer.WriteString("pub ")
	case ast.VisCrate:
		p.writer.WriteString("pub(crate) ")
	}
}

func (p *printer) printBound(b ast.TypeParamBound) {
	switch bound := b.(type) {
	case *ast.BoundLifetime:
		p.printLifetime(bound.Lifetime)
	case *ast.BoundTrait:
		if bound.Maybe {
			p.writer.WriteString("?")
		}
		p.printPath(&bound.Path)
	}
}

func (p *printer) printBounds(bounds []ast.TypeParamBound) {
	for i, b := range bounds {
		if i > 0 {
			p.writer.WriteString(" + ")
		}
		p.printBound(b)
	}
}

func (p *printer) printGenerics(g *ast.Generics) {
	if len(g.Lifetimes) == 0 && len(g.TypeParams) == 0 {
		return
	}
	p.writer.WriteString("<")
	first := true
	for i := range g.Lifetimes {
		if !first {
			p.writer.WriteString(", ")
		}
		first = false
		def := &g.Lifetimes[i]
		p.printLifetime(def.Lifetime)
		if len(def.Bounds) > 0 {
			p.writer.WriteString(": ")
			for j, lt := range def.Bounds {
				if j > 0 {
					p.writer.WriteString(" + ")
				}
				p.printLifetime(lt)
			}
		}
	}
	for i := range g.TypeParams {
		if !first {
			p.writer.WriteString(", ")
		}
		first = false
		tp := &g.TypeParams[i]
		p.printIdent(tp.Ident)
		if len(tp.Bounds) > 0 {
			p.writer.WriteString(": ")
			p.printBounds(tp.Bounds)
		}
		if tp.Default != nil {
			p.writer.WriteString(" = ")
			p.printType(tp.Default)
		}
	}
	p.writer.WriteString(">")
}

func (p *printer) printWhere(g *ast.Generics) {
	if len(g.Where) == 0 {
		return
	}
	p.writer.WriteString(" where ")
	for i, pred := range g.Where {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		switch pr := pred.(type) {
		case *ast.PredType:
			p.printType(pr.Ty)
			p.writer.WriteString(": ")
			p.printBounds(pr.Bounds)
		case *ast.PredLifetime:
			p.printLifetime(pr.Lifetime)
			p.writer.WriteString(": ")
			for j, lt := range pr.Bounds {
				if j > 0 {
					p.writer.WriteString(" + ")
				}
				p.printLifetime(lt)
			}
		}
	}
}

func (p *printer) printMacro(m *ast.Macro, name *ast.Ident) {
	p.printPath(&m.Path)
	p.writer.WriteString("!")
	if name != nil {
		p.writer.WriteString(" ")
		p.printIdent(*name)
	}
	switch m.Delim {
	case ast.DelimParen:
		p.writer.WriteString("(")
	case ast.DelimBracket:
		p.writer.WriteString("[")
	case ast.DelimBrace:
		p.writer.WriteString(" { ")
	}
	p.printTokens(m.Tokens)
	switch m.Delim {
	case ast.DelimParen:
		p.writer.WriteString(")")
	case ast.DelimBracket:
		p.writer.WriteString("]")
	case ast.DelimBrace:
		p.writer.WriteString(" }")
	}
}
