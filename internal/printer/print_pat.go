package printer

import (
	"graft/internal/ast"
)

func (p *printer) printPat(pt ast.Pat) {
	switch pat := pt.(type) {
	case *ast.PatWild:
		p.writer.WriteString("_")
	case *ast.PatRest:
		p.writer.WriteString("..")
	case *ast.PatIdent:
		if pat.ByRef {
			p.writer.WriteString("ref ")
		}
		if pat.Mut {
			p.writer.WriteString("mut ")
		}
		p.printIdent(pat.Ident)
		if pat.Sub != nil {
			p.writer.WriteString(" @ ")
			p.printPat(pat.Sub)
		}
	case *ast.PatLit:
		p.printExpr(pat.Expr)
	case *ast.PatPath:
		p.printPath(&pat.Path)
	case *ast.PatTuple:
		p.writer.WriteString("(")
		for i := 0; i < pat.Elems.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printPat(pat.Elems.At(i))
		}
		if pat.Elems.Len() == 1 {
			p.writer.WriteString(",")
		}
		p.writer.WriteString(")")
	case *ast.PatTupleStruct:
		p.printPath(&pat.Path)
		p.writer.WriteString("(")
		for i := 0; i < pat.Elems.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printPat(pat.Elems.At(i))
		}
		p.writer.WriteString(")")
	case *ast.PatStruct:
		p.printPath(&pat.Path)
		p.writer.WriteString(" { ")
		for i := 0; i < pat.Fields.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			fp := pat.Fields.At(i)
			if fp.Shorthand {
				p.printPat(fp.Pat)
			} else {
				p.printIdent(fp.Name)
				p.writer.WriteString(": ")
				p.printPat(fp.Pat)
			}
		}
		if pat.Rest {
			if pat.Fields.Len() > 0 {
				p.writer.WriteString(", ")
			}
			p.writer.WriteString("..")
		}
		p.writer.WriteString(" }")
	case *ast.PatRange:
		p.printExpr(pat.Lo)
		p.writer.WriteString("..=")
		p.printExpr(pat.Hi)
	case *ast.PatReference:
		p.writer.WriteString("&")
		if pat.Mut {
			p.writer.WriteString("mut ")
		}
		p.printPat(pat.Pat)
	}
}
