package printer

import (
	"graft/internal/ast"
)

func (p *printer) printType(t ast.Type) {
	switch ty := t.(type) {
	case *ast.TypePath:
		p.printPath(&ty.Path)
	case *ast.TypeReference:
		p.writer.WriteString("&")
		if ty.Lifetime != nil {
			p.printLifetime(*ty.Lifetime)
			p.writer.WriteString(" ")
		}
		if ty.Mut {
			p.writer.WriteString("mut ")
		}
		p.printType(ty.Elem)
	case *ast.TypePtr:
		if ty.Mut {
			p.writer.WriteString("*mut ")
		} else {
			p.writer.WriteString("*const ")
		}
		p.printType(ty.Elem)
	case *ast.TypeTuple:
		p.writer.WriteString("(")
		for i := 0; i < ty.Elems.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printType(ty.Elems.At(i))
		}
		if ty.Elems.Len() == 1 {
			p.writer.WriteString(",")
		}
		p.writer.WriteString(")")
	case *ast.TypeParen:
		p.writer.WriteString("(")
		p.printType(ty.Elem)
		p.writer.WriteString(")")
	case *ast.TypeArray:
		p.writer.WriteString("[")
		p.printType(ty.Elem)
		p.writer.WriteString("; ")
		p.printExpr(ty.Len)
		p.writer.WriteString("]")
	case *ast.TypeSlice:
		p.writer.WriteString("[")
		p.printType(ty.Elem)
		p.writer.WriteString("]")
	case *ast.TypeBareFn:
		p.writer.WriteString("fn(")
		for i := 0; i < ty.Inputs.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			arg := ty.Inputs.At(i)
			if arg.Name != nil {
				p.printIdent(*arg.Name)
				p.writer.WriteString(": ")
			}
			p.printType(arg.Ty)
		}
		p.writer.WriteString(")")
		if ty.Output != nil {
			p.writer.WriteString(" -> ")
			p.printType(ty.Output)
		}
	case *ast.TypeTraitObject:
		if ty.Dyn {
			p.writer.WriteString("dyn ")
		}
		for i := 0; i < ty.Bounds.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(" + ")
			}
			p.printBound(ty.Bounds.At(i))
		}
	case *ast.TypeImplTrait:
		p.writer.WriteString("impl ")
		for i := 0; i < ty.Bounds.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(" + ")
			}
			p.printBound(ty.Bounds.At(i))
		}
	case *ast.TypeInfer:
		p.writer.WriteString("_")
	case *ast.TypeNever:
		p.writer.WriteString("!")
	}
}
