package printer

import (
	"graft/internal/ast"
)

func (p *printer) printItem(it ast.Item) {
	switch item := it.(type) {
	case *ast.ItemFn:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.printSignature(&item.Sig)
		p.writer.WriteString(" ")
		p.printBlock(item.Body)
	case *ast.ItemStruct:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("struct ")
		p.printIdent(item.Ident)
		p.printGenerics(&item.Generics)
		switch item.Fields.Kind {
		case ast.FieldsNamed:
			p.printWhere(&item.Generics)
			p.writer.WriteString(" ")
			p.printNamedFields(&item.Fields)
		case ast.FieldsUnnamed:
			p.printTupleFields(&item.Fields)
			p.printWhere(&item.Generics)
			p.writer.WriteString(";")
		case ast.FieldsUnit:
			p.writer.WriteString(";")
		}
	case *ast.ItemEnum:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("enum ")
		p.printIdent(item.Ident)
		p.printGenerics(&item.Generics)
		p.printWhere(&item.Generics)
		p.writer.WriteString(" {")
		p.writer.Newline()
		p.writer.IndentPush()
		for i := 0; i < item.Variants.Len(); i++ {
			v := item.Variants.At(i)
			p.printAttrs(v.Attrs)
			p.printIdent(v.Ident)
			switch v.Fields.Kind {
			case ast.FieldsNamed:
				p.writer.WriteString(" ")
				p.printNamedFields(&v.Fields)
			case ast.FieldsUnnamed:
				p.printTupleFields(&v.Fields)
			}
			if v.Discriminant != nil {
				p.writer.WriteString(" = ")
				p.printExpr(v.Discriminant)
			}
			p.writer.WriteString(",")
			p.writer.Newline()
		}
		p.writer.IndentPop()
		p.writer.WriteString("}")
	case *ast.ItemTrait:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("trait ")
		p.printIdent(item.Ident)
		p.printGenerics(&item.Generics)
		if len(item.Supertraits) > 0 {
			p.writer.WriteString(": ")
			p.printBounds(item.Supertraits)
		}
		p.printWhere(&item.Generics)
		p.writer.WriteString(" {")
		p.writer.Newline()
		p.writer.IndentPush()
		for _, ti := range item.Items {
			p.printTraitItem(ti)
			p.writer.Newline()
		}
		p.writer.IndentPop()
		p.writer.WriteString("}")
	case *ast.ItemImpl:
		p.printAttrs(item.Attrs)
		p.writer.WriteString("impl")
		p.printGenerics(&item.Generics)
		p.writer.WriteString(" ")
		if item.Trait != nil {
			p.printPath(item.Trait)
			p.writer.WriteString(" for ")
		}
		p.printType(item.SelfTy)
		p.printWhere(&item.Generics)
		p.writer.WriteString(" {")
		p.writer.Newline()
		p.writer.IndentPush()
		for _, ii := range item.Items {
			p.printImplItem(ii)
			p.writer.Newline()
		}
		p.writer.IndentPop()
		p.writer.WriteString("}")
	case *ast.ItemMod:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("mod ")
		p.printIdent(item.Ident)
		if !item.Inline {
			p.writer.WriteString(";")
			return
		}
		p.writer.WriteString(" {")
		p.writer.Newline()
		p.writer.IndentPush()
		for _, sub := range item.Items {
			p.printItem(sub)
			p.writer.Newline()
		}
		p.writer.IndentPop()
		p.writer.WriteString("}")
	case *ast.ItemUse:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("use ")
		p.printUseTree(item.Tree)
		p.writer.WriteString(";")
	case *ast.ItemConst:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("const ")
		p.printIdent(item.Ident)
		p.writer.WriteString(": ")
		p.printType(item.Ty)
		p.writer.WriteString(" = ")
		p.printExpr(item.Expr)
		p.writer.WriteString(";")
	case *ast.ItemStatic:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("static ")
		if item.Mut {
			p.writer.WriteString("mut ")
		}
		p.printIdent(item.Ident)
		p.writer.WriteString(": ")
		p.printType(item.Ty)
		p.writer.WriteString(" = ")
		p.printExpr(item.Expr)
		p.writer.WriteString(";")
	case *ast.ItemForeignMod:
		p.printAttrs(item.Attrs)
		p.writer.WriteString("extern " + quoteStr(item.Abi) + " {")
		p.writer.Newline()
		p.writer.IndentPush()
		for _, fi := range item.Items {
			p.printForeignItem(fi)
			p.writer.Newline()
		}
		p.writer.IndentPop()
		p.writer.WriteString("}")
	case *ast.ItemType:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("type ")
		p.printIdent(item.Ident)
		p.printGenerics(&item.Generics)
		p.printWhere(&item.Generics)
		p.writer.WriteString(" = ")
		p.printType(item.Ty)
		p.writer.WriteString(";")
	case *ast.ItemMacro:
		p.printAttrs(item.Attrs)
		p.printMacro(&item.Mac, item.Name)
		if item.Semi {
			p.writer.WriteString(";")
		}
	}
}

func (p *printer) printSignature(sig *ast.Signature) {
	p.writer.WriteString("fn ")
	p.printIdent(sig.Ident)
	p.printGenerics(&sig.Generics)
	p.writer.WriteString("(")
	for i := 0; i < sig.Inputs.Len(); i++ {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		switch arg := sig.Inputs.At(i).(type) {
		case *ast.Receiver:
			if arg.Ref {
				p.writer.WriteString("&")
				if arg.Lifetime != nil {
					p.printLifetime(*arg.Lifetime)
					p.writer.WriteString(" ")
				}
			}
			if arg.Mut {
				p.writer.WriteString("mut ")
			}
			p.writer.WriteString("self")
		case *ast.ArgTyped:
			p.printPat(arg.Pat)
			p.writer.WriteString(": ")
			p.printType(arg.Ty)
		}
	}
	p.writer.WriteString(")")
	if sig.Output != nil {
		p.writer.WriteString(" -> ")
		p.printType(sig.Output)
	}
	p.printWhere(&sig.Generics)
}

func (p *printer) printNamedFields(fs *ast.Fields) {
	p.writer.WriteString("{")
	p.writer.Newline()
	p.writer.IndentPush()
	for i := 0; i < fs.Fields.Len(); i++ {
		f := fs.Fields.At(i)
		p.printAttrs(f.Attrs)
		p.printVisibility(f.Vis)
		p.printIdent(*f.Name)
		p.writer.WriteString(": ")
		p.printType(f.Ty)
		p.writer.WriteString(",")
		p.writer.Newline()
	}
	p.writer.IndentPop()
	p.writer.WriteString("}")
}

func (p *printer) printTupleFields(fs *ast.Fields) {
	p.writer.WriteString("(")
	for i := 0; i < fs.Fields.Len(); i++ {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		f := fs.Fields.At(i)
		p.printVisibility(f.Vis)
		p.printType(f.Ty)
	}
	p.writer.WriteString(")")
}

func (p *printer) printTraitItem(ti ast.TraitItem) {
	switch item := ti.(type) {
	case *ast.TraitItemFn:
		p.printAttrs(item.Attrs)
		p.printSignature(&item.Sig)
		if item.Default == nil {
			p.writer.WriteString(";")
			return
		}
		p.writer.WriteString(" ")
		p.printBlock(item.Default)
	case *ast.TraitItemConst:
		p.printAttrs(item.Attrs)
		p.writer.WriteString("const ")
		p.printIdent(item.Ident)
		p.writer.WriteString(": ")
		p.printType(item.Ty)
		if item.Default != nil {
			p.writer.WriteString(" = ")
			p.printExpr(item.Default)
		}
		p.writer.WriteString(";")
	case *ast.TraitItemType:
		p.printAttrs(item.Attrs)
		p.writer.WriteString("type ")
		p.printIdent(item.Ident)
		if len(item.Bounds) > 0 {
			p.writer.WriteString(": ")
			p.printBounds(item.Bounds)
		}
		if item.Default != nil {
			p.writer.WriteString(" = ")
			p.printType(item.Default)
		}
		p.writer.WriteString(";")
	}
}

func (p *printer) printImplItem(ii ast.ImplItem) {
	switch item := ii.(type) {
	case *ast.ImplItemFn:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.printSignature(&item.Sig)
		p.writer.WriteString(" ")
		p.printBlock(item.Body)
	case *ast.ImplItemConst:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("const ")
		p.printIdent(item.Ident)
		p.writer.WriteString(": ")
		p.printType(item.Ty)
		p.writer.WriteString(" = ")
		p.printExpr(item.Expr)
		p.writer.WriteString(";")
	case *ast.ImplItemType:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("type ")
		p.printIdent(item.Ident)
		p.writer.WriteString(" = ")
		p.printType(item.Ty)
		p.writer.WriteString(";")
	}
}

func (p *printer) printForeignItem(fi ast.ForeignItem) {
	switch item := fi.(type) {
	case *ast.ForeignItemFn:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.printSignature(&item.Sig)
		p.writer.WriteString(";")
	case *ast.ForeignItemStatic:
		p.printAttrs(item.Attrs)
		p.printVisibility(item.Vis)
		p.writer.WriteString("static ")
		if item.Mut {
			p.writer.WriteString("mut ")
		}
		p.printIdent(item.Ident)
		p.writer.WriteString(": ")
		p.printType(item.Ty)
		p.writer.WriteString(";")
	}
}

func (p *printer) printUseTree(t ast.UseTree) {
	switch tree := t.(type) {
	case *ast.UsePath:
		p.printIdent(tree.Ident)
		p.writer.WriteString("::")
		p.printUseTree(tree.Tree)
	case *ast.UseName:
		p.printIdent(tree.Ident)
	case *ast.UseRename:
		p.printIdent(tree.Ident)
		p.writer.WriteString(" as ")
		p.printIdent(tree.Alias)
	case *ast.UseGlob:
		p.writer.WriteString("*")
	case *ast.UseGroup:
		p.writer.WriteString("{")
		for i := 0; i < tree.Items.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			p.printUseTree(tree.Items.At(i))
		}
		p.writer.WriteString("}")
	}
}
