package ast

// Walk traverses n depth-first, visiting each node before its children and
// keeping children in source order. A hook returning false prunes that
// node's subtree. Nodes without a dedicated hook (path segments, bounds,
// function arguments) are traversed through silently.
func Walk(v Visitor, n Node) {
	switch n := n.(type) {
	case *File:
		WalkFile(v, n)
	case Expr:
		walkExpr(v, n)
	case Pat:
		walkPat(v, n)
	case Type:
		walkType(v, n)
	case Item:
		walkItem(v, n)
	case Stmt:
		walkStmt(v, n)
	case Lit:
		v.VisitLit(n)
	case TraitItem:
		walkTraitItem(v, n)
	case ImplItem:
		walkImplItem(v, n)
	case ForeignItem:
		walkForeignItem(v, n)
	case UseTree:
		walkUseTree(v, n)
	case TypeParamBound:
		walkBound(v, n)
	case WherePredicate:
		walkPredicate(v, n)
	case GenericArg:
		walkGenericArg(v, n)
	case FnArg:
		walkFnArg(v, n)
	case *Block:
		walkBlock(v, n)
	case *MatchArm:
		walkMatchArm(v, n)
	case *FieldValue:
		walkFieldValue(v, n)
	case *FieldPat:
		walkFieldPat(v, n)
	case *Variant:
		walkVariant(v, n)
	case *Field:
		walkField(v, n)
	case *Path:
		walkPath(v, n)
	case *Macro:
		walkMacro(v, n)
	case *Attr:
		walkAttr(v, n)
	case *Generics:
		walkGenerics(v, n)
	}
}

// WalkFile traverses a whole compilation unit.
func WalkFile(v Visitor, f *File) {
	if !v.VisitFile(f) {
		return
	}
	walkAttrs(v, f.Attrs)
	for _, it := range f.Items {
		walkItem(v, it)
	}
}

func walkAttrs(v Visitor, attrs []Attr) {
	for i := range attrs {
		walkAttr(v, &attrs[i])
	}
}

func walkAttr(v Visitor, a *Attr) {
	if !v.VisitAttr(a) {
		return
	}
	if !a.IsDoc {
		walkPath(v, &a.Path)
	}
}

func walkItem(v Visitor, it Item) {
	switch it := it.(type) {
	case *ItemFn:
		if !v.VisitItemFn(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkSignature(v, &it.Sig)
		walkBlock(v, it.Body)
	case *ItemStruct:
		if !v.VisitItemStruct(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkGenerics(v, &it.Generics)
		walkFields(v, &it.Fields)
	case *ItemEnum:
		if !v.VisitItemEnum(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkGenerics(v, &it.Generics)
		for i := range it.Variants.Items {
			walkVariant(v, &it.Variants.Items[i])
		}
	case *ItemTrait:
		if !v.VisitItemTrait(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkGenerics(v, &it.Generics)
		for _, b := range it.Supertraits {
			walkBound(v, b)
		}
		for _, ti := range it.Items {
			walkTraitItem(v, ti)
		}
	case *ItemImpl:
		if !v.VisitItemImpl(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkGenerics(v, &it.Generics)
		if it.Trait != nil {
			walkPath(v, it.Trait)
		}
		walkType(v, it.SelfTy)
		for _, ii := range it.Items {
			walkImplItem(v, ii)
		}
	case *ItemMod:
		if !v.VisitItemMod(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		for _, sub := range it.Items {
			walkItem(v, sub)
		}
	case *ItemUse:
		if !v.VisitItemUse(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkUseTree(v, it.Tree)
	case *ItemConst:
		if !v.VisitItemConst(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkType(v, it.Ty)
		walkExpr(v, it.Expr)
	case *ItemStatic:
		if !v.VisitItemStatic(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkType(v, it.Ty)
		walkExpr(v, it.Expr)
	case *ItemForeignMod:
		if !v.VisitItemForeignMod(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		for _, fi := range it.Items {
			walkForeignItem(v, fi)
		}
	case *ItemMacro:
		if !v.VisitItemMacro(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkMacro(v, &it.Mac)
	case *ItemType:
		if !v.VisitItemType(it) {
			return
		}
		walkAttrs(v, it.Attrs)
		walkGenerics(v, &it.Generics)
		walkType(v, it.Ty)
	}
}

func walkTraitItem(v Visitor, ti TraitItem) {
	switch ti := ti.(type) {
	case *TraitItemFn:
		if !v.VisitTraitItemFn(ti) {
			return
		}
		walkAttrs(v, ti.Attrs)
		walkSignature(v, &ti.Sig)
		if ti.Default != nil {
			walkBlock(v, ti.Default)
		}
	case *TraitItemConst:
		if !v.VisitTraitItemConst(ti) {
			return
		}
		walkAttrs(v, ti.Attrs)
		walkType(v, ti.Ty)
		if ti.Default != nil {
			walkExpr(v, ti.Default)
		}
	case *TraitItemType:
		if !v.VisitTraitItemType(ti) {
			return
		}
		walkAttrs(v, ti.Attrs)
		for _, b := range ti.Bounds {
			walkBound(v, b)
		}
		if ti.Default != nil {
			walkType(v, ti.Default)
		}
	}
}

func walkImplItem(v Visitor, ii ImplItem) {
	switch ii := ii.(type) {
	case *ImplItemFn:
		if !v.VisitImplItemFn(ii) {
			return
		}
		walkAttrs(v, ii.Attrs)
		walkSignature(v, &ii.Sig)
		walkBlock(v, ii.Body)
	case *ImplItemConst:
		if !v.VisitImplItemConst(ii) {
			return
		}
		walkAttrs(v, ii.Attrs)
		walkType(v, ii.Ty)
		walkExpr(v, ii.Expr)
	case *ImplItemType:
		if !v.VisitImplItemType(ii) {
			return
		}
		walkAttrs(v, ii.Attrs)
		walkType(v, ii.Ty)
	}
}

func walkForeignItem(v Visitor, fi ForeignItem) {
	switch fi := fi.(type) {
	case *ForeignItemFn:
		if !v.VisitForeignItemFn(fi) {
			return
		}
		walkAttrs(v, fi.Attrs)
		walkSignature(v, &fi.Sig)
	case *ForeignItemStatic:
		if !v.VisitForeignItemStatic(fi) {
			return
		}
		walkAttrs(v, fi.Attrs)
		walkType(v, fi.Ty)
	}
}

func walkUseTree(v Visitor, ut UseTree) {
	switch ut := ut.(type) {
	case *UsePath:
		if v.VisitUsePath(ut) {
			walkUseTree(v, ut.Tree)
		}
	case *UseName:
		v.VisitUseName(ut)
	case *UseRename:
		v.VisitUseRename(ut)
	case *UseGlob:
		v.VisitUseGlob(ut)
	case *UseGroup:
		if v.VisitUseGroup(ut) {
			for _, sub := range ut.Items.Items {
				walkUseTree(v, sub)
			}
		}
	}
}

func walkSignature(v Visitor, sig *Signature) {
	walkGenerics(v, &sig.Generics)
	for _, arg := range sig.Inputs.Items {
		walkFnArg(v, arg)
	}
	if sig.Output != nil {
		walkType(v, sig.Output)
	}
}

func walkFnArg(v Visitor, arg FnArg) {
	if arg, ok := arg.(*ArgTyped); ok {
		walkPat(v, arg.Pat)
		walkType(v, arg.Ty)
	}
}

func walkFields(v Visitor, fs *Fields) {
	for i := range fs.Fields.Items {
		walkField(v, &fs.Fields.Items[i])
	}
}

func walkField(v Visitor, f *Field) {
	if !v.VisitField(f) {
		return
	}
	walkAttrs(v, f.Attrs)
	walkType(v, f.Ty)
}

func walkVariant(v Visitor, vt *Variant) {
	if !v.VisitVariant(vt) {
		return
	}
	walkAttrs(v, vt.Attrs)
	walkFields(v, &vt.Fields)
	if vt.Discriminant != nil {
		walkExpr(v, vt.Discriminant)
	}
}

func walkGenerics(v Visitor, g *Generics) {
	if !v.VisitGenerics(g) {
		return
	}
	for i := range g.TypeParams {
		tp := &g.TypeParams[i]
		for _, b := range tp.Bounds {
			walkBound(v, b)
		}
		if tp.Default != nil {
			walkType(v, tp.Default)
		}
	}
	for _, w := range g.Where {
		walkPredicate(v, w)
	}
}

func walkBound(v Visitor, b TypeParamBound) {
	if b, ok := b.(*BoundTrait); ok {
		walkPath(v, &b.Path)
	}
}

func walkPredicate(v Visitor, w WherePredicate) {
	if w, ok := w.(*PredType); ok {
		walkType(v, w.Ty)
		for _, b := range w.Bounds {
			walkBound(v, b)
		}
	}
}

func walkPath(v Visitor, p *Path) {
	if !v.VisitPath(p) {
		return
	}
	for i := range p.Segments.Items {
		seg := &p.Segments.Items[i]
		if seg.Args != nil {
			walkGenericArgs(v, seg.Args)
		}
	}
}

func walkGenericArgs(v Visitor, ga *GenericArgs) {
	for _, arg := range ga.Args.Items {
		walkGenericArg(v, arg)
	}
}

func walkGenericArg(v Visitor, arg GenericArg) {
	switch arg := arg.(type) {
	case *GenericArgType:
		walkType(v, arg.Ty)
	case *GenericArgBinding:
		walkType(v, arg.Ty)
	}
}

func walkMacro(v Visitor, m *Macro) {
	if v.VisitMacro(m) {
		walkPath(v, &m.Path)
	}
}

func walkBlock(v Visitor, b *Block) {
	if b == nil || !v.VisitBlock(b) {
		return
	}
	for _, s := range b.Stmts {
		walkStmt(v, s)
	}
}

func walkStmt(v Visitor, s Stmt) {
	switch s := s.(type) {
	case *StmtLet:
		if !v.VisitStmtLet(s) {
			return
		}
		walkAttrs(v, s.Attrs)
		walkPat(v, s.Pat)
		if s.Ty != nil {
			walkType(v, s.Ty)
		}
		if s.Init != nil {
			walkExpr(v, s.Init)
		}
	case *StmtItem:
		if v.VisitStmtItem(s) {
			walkItem(v, s.Item)
		}
	case *StmtExpr:
		if !v.VisitStmtExpr(s) {
			return
		}
		walkAttrs(v, s.Attrs)
		walkExpr(v, s.Expr)
	}
}

func walkExprs(v Visitor, p *Punctuated[Expr]) {
	for _, e := range p.Items {
		walkExpr(v, e)
	}
}

func walkExpr(v Visitor, e Expr) {
	switch e := e.(type) {
	case *ExprLit:
		if v.VisitExprLit(e) {
			v.VisitLit(e.Lit)
		}
	case *ExprPath:
		if v.VisitExprPath(e) {
			walkPath(v, &e.Path)
		}
	case *ExprUnary:
		if v.VisitExprUnary(e) {
			walkExpr(v, e.Expr)
		}
	case *ExprBinary:
		if v.VisitExprBinary(e) {
			walkExpr(v, e.Left)
			walkExpr(v, e.Right)
		}
	case *ExprCall:
		if v.VisitExprCall(e) {
			walkExpr(v, e.Func)
			walkExprs(v, &e.Args)
		}
	case *ExprMethodCall:
		if !v.VisitExprMethodCall(e) {
			return
		}
		walkExpr(v, e.Recv)
		if e.Turbofish != nil {
			walkGenericArgs(v, e.Turbofish)
		}
		walkExprs(v, &e.Args)
	case *ExprField:
		if v.VisitExprField(e) {
			walkExpr(v, e.Base)
		}
	case *ExprIndex:
		if v.VisitExprIndex(e) {
			walkExpr(v, e.Base)
			walkExpr(v, e.Index)
		}
	case *ExprTuple:
		if v.VisitExprTuple(e) {
			walkExprs(v, &e.Elems)
		}
	case *ExprArray:
		if v.VisitExprArray(e) {
			walkExprs(v, &e.Elems)
		}
	case *ExprRepeat:
		if v.VisitExprRepeat(e) {
			walkExpr(v, e.Elem)
			walkExpr(v, e.Len)
		}
	case *ExprIf:
		if !v.VisitExprIf(e) {
			return
		}
		walkExpr(v, e.Cond)
		walkBlock(v, e.Then)
		if e.Else != nil {
			walkExpr(v, e.Else)
		}
	case *ExprMatch:
		if !v.VisitExprMatch(e) {
			return
		}
		walkExpr(v, e.Expr)
		for i := range e.Arms {
			walkMatchArm(v, &e.Arms[i])
		}
	case *ExprWhile:
		if v.VisitExprWhile(e) {
			walkExpr(v, e.Cond)
			walkBlock(v, e.Body)
		}
	case *ExprLoop:
		if v.VisitExprLoop(e) {
			walkBlock(v, e.Body)
		}
	case *ExprForLoop:
		if !v.VisitExprForLoop(e) {
			return
		}
		walkPat(v, e.Pat)
		walkExpr(v, e.Iter)
		walkBlock(v, e.Body)
	case *ExprBlock:
		if v.VisitExprBlock(e) {
			walkBlock(v, e.Block)
		}
	case *ExprClosure:
		if !v.VisitExprClosure(e) {
			return
		}
		for i := range e.Inputs.Items {
			arg := &e.Inputs.Items[i]
			walkPat(v, arg.Pat)
			if arg.Ty != nil {
				walkType(v, arg.Ty)
			}
		}
		if e.Output != nil {
			walkType(v, e.Output)
		}
		walkExpr(v, e.Body)
	case *ExprReference:
		if v.VisitExprReference(e) {
			walkExpr(v, e.Expr)
		}
	case *ExprCast:
		if v.VisitExprCast(e) {
			walkExpr(v, e.Expr)
			walkType(v, e.Ty)
		}
	case *ExprRange:
		if !v.VisitExprRange(e) {
			return
		}
		if e.From != nil {
			walkExpr(v, e.From)
		}
		if e.To != nil {
			walkExpr(v, e.To)
		}
	case *ExprReturn:
		if v.VisitExprReturn(e) && e.Expr != nil {
			walkExpr(v, e.Expr)
		}
	case *ExprBreak:
		if v.VisitExprBreak(e) && e.Expr != nil {
			walkExpr(v, e.Expr)
		}
	case *ExprContinue:
		v.VisitExprContinue(e)
	case *ExprStruct:
		if !v.VisitExprStruct(e) {
			return
		}
		walkPath(v, &e.Path)
		for i := range e.Fields.Items {
			walkFieldValue(v, &e.Fields.Items[i])
		}
		if e.Rest != nil {
			walkExpr(v, e.Rest)
		}
	case *ExprParen:
		if v.VisitExprParen(e) {
			walkExpr(v, e.Expr)
		}
	case *ExprMacro:
		if v.VisitExprMacro(e) {
			walkMacro(v, &e.Mac)
		}
	case *ExprTry:
		if v.VisitExprTry(e) {
			walkExpr(v, e.Expr)
		}
	}
}

func walkMatchArm(v Visitor, a *MatchArm) {
	if !v.VisitMatchArm(a) {
		return
	}
	walkPat(v, a.Pat)
	if a.Guard != nil {
		walkExpr(v, a.Guard)
	}
	walkExpr(v, a.Body)
}

func walkFieldValue(v Visitor, fv *FieldValue) {
	if v.VisitFieldValue(fv) {
		walkExpr(v, fv.Value)
	}
}

func walkFieldPat(v Visitor, fp *FieldPat) {
	if v.VisitFieldPat(fp) {
		walkPat(v, fp.Pat)
	}
}

func walkPat(v Visitor, p Pat) {
	switch p := p.(type) {
	case *PatWild:
		v.VisitPatWild(p)
	case *PatIdent:
		if v.VisitPatIdent(p) && p.Sub != nil {
			walkPat(v, p.Sub)
		}
	case *PatLit:
		if v.VisitPatLit(p) {
			walkExpr(v, p.Expr)
		}
	case *PatPath:
		if v.VisitPatPath(p) {
			walkPath(v, &p.Path)
		}
	case *PatTuple:
		if v.VisitPatTuple(p) {
			for _, el := range p.Elems.Items {
				walkPat(v, el)
			}
		}
	case *PatTupleStruct:
		if !v.VisitPatTupleStruct(p) {
			return
		}
		walkPath(v, &p.Path)
		for _, el := range p.Elems.Items {
			walkPat(v, el)
		}
	case *PatStruct:
		if !v.VisitPatStruct(p) {
			return
		}
		walkPath(v, &p.Path)
		for i := range p.Fields.Items {
			walkFieldPat(v, &p.Fields.Items[i])
		}
	case *PatRange:
		if v.VisitPatRange(p) {
			walkExpr(v, p.Lo)
			walkExpr(v, p.Hi)
		}
	case *PatReference:
		if v.VisitPatReference(p) {
			walkPat(v, p.Pat)
		}
	case *PatRest:
		v.VisitPatRest(p)
	}
}

func walkType(v Visitor, t Type) {
	switch t := t.(type) {
	case *TypePath:
		if v.VisitTypePath(t) {
			walkPath(v, &t.Path)
		}
	case *TypeReference:
		if v.VisitTypeReference(t) {
			walkType(v, t.Elem)
		}
	case *TypePtr:
		if v.VisitTypePtr(t) {
			walkType(v, t.Elem)
		}
	case *TypeTuple:
		if v.VisitTypeTuple(t) {
			for _, el := range t.Elems.Items {
				walkType(v, el)
			}
		}
	case *TypeArray:
		if v.VisitTypeArray(t) {
			walkType(v, t.Elem)
			walkExpr(v, t.Len)
		}
	case *TypeSlice:
		if v.VisitTypeSlice(t) {
			walkType(v, t.Elem)
		}
	case *TypeBareFn:
		if !v.VisitTypeBareFn(t) {
			return
		}
		for i := range t.Inputs.Items {
			walkType(v, t.Inputs.Items[i].Ty)
		}
		if t.Output != nil {
			walkType(v, t.Output)
		}
	case *TypeTraitObject:
		if v.VisitTypeTraitObject(t) {
			for _, b := range t.Bounds.Items {
				walkBound(v, b)
			}
		}
	case *TypeImplTrait:
		if v.VisitTypeImplTrait(t) {
			for _, b := range t.Bounds.Items {
				walkBound(v, b)
			}
		}
	case *TypeParen:
		if v.VisitTypeParen(t) {
			walkType(v, t.Elem)
		}
	case *TypeInfer:
		v.VisitTypeInfer(t)
	case *TypeNever:
		v.VisitTypeNever(t)
	}
}
