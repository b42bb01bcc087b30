package ast

import (
	"graft/internal/token"
)

// Folder is the rewriting traversal capability. Each hook receives a node
// whose children have already been folded and returns the replacement; the
// drivers rebuild every composite bottom-up into fresh nodes, so the input
// tree is never mutated and the result shares no mutable state with it.
// Embed IdentityFolder to get hooks that return their argument unchanged.
type Folder interface {
	FoldFile(*File) *File

	FoldItemFn(*ItemFn) Item
	FoldItemStruct(*ItemStruct) Item
	FoldItemEnum(*ItemEnum) Item
	FoldItemTrait(*ItemTrait) Item
	FoldItemImpl(*ItemImpl) Item
	FoldItemMod(*ItemMod) Item
	FoldItemUse(*ItemUse) Item
	FoldItemConst(*ItemConst) Item
	FoldItemStatic(*ItemStatic) Item
	FoldItemForeignMod(*ItemForeignMod) Item
	FoldItemMacro(*ItemMacro) Item
	FoldItemType(*ItemType) Item

	FoldTraitItem(TraitItem) TraitItem
	FoldImplItem(ImplItem) ImplItem
	FoldForeignItem(ForeignItem) ForeignItem
	FoldUseTree(UseTree) UseTree

	FoldExprLit(*ExprLit) Expr
	FoldExprPath(*ExprPath) Expr
	FoldExprUnary(*ExprUnary) Expr
	FoldExprBinary(*ExprBinary) Expr
	FoldExprCall(*ExprCall) Expr
	FoldExprMethodCall(*ExprMethodCall) Expr
	FoldExprField(*ExprField) Expr
	FoldExprIndex(*ExprIndex) Expr
	FoldExprTuple(*ExprTuple) Expr
	FoldExprArray(*ExprArray) Expr
	FoldExprRepeat(*ExprRepeat) Expr
	FoldExprIf(*ExprIf) Expr
	FoldExprMatch(*ExprMatch) Expr
	FoldExprWhile(*ExprWhile) Expr
	FoldExprLoop(*ExprLoop) Expr
	FoldExprForLoop(*ExprForLoop) Expr
	FoldExprBlock(*ExprBlock) Expr
	FoldExprClosure(*ExprClosure) Expr
	FoldExprReference(*ExprReference) Expr
	FoldExprCast(*ExprCast) Expr
	FoldExprRange(*ExprRange) Expr
	FoldExprReturn(*ExprReturn) Expr
	FoldExprBreak(*ExprBreak) Expr
	FoldExprContinue(*ExprContinue) Expr
	FoldExprStruct(*ExprStruct) Expr
	FoldExprParen(*ExprParen) Expr
	FoldExprMacro(*ExprMacro) Expr
	FoldExprTry(*ExprTry) Expr

	FoldPatWild(*PatWild) Pat
	FoldPatIdent(*PatIdent) Pat
	FoldPatLit(*PatLit) Pat
	FoldPatPath(*PatPath) Pat
	FoldPatTuple(*PatTuple) Pat
	FoldPatTupleStruct(*PatTupleStruct) Pat
	FoldPatStruct(*PatStruct) Pat
	FoldPatRange(*PatRange) Pat
	FoldPatReference(*PatReference) Pat
	FoldPatRest(*PatRest) Pat

	FoldTypePath(*TypePath) Type
	FoldTypeReference(*TypeReference) Type
	FoldTypePtr(*TypePtr) Type
	FoldTypeTuple(*TypeTuple) Type
	FoldTypeArray(*TypeArray) Type
	FoldTypeSlice(*TypeSlice) Type
	FoldTypeBareFn(*TypeBareFn) Type
	FoldTypeTraitObject(*TypeTraitObject) Type
	FoldTypeImplTrait(*TypeImplTrait) Type
	FoldTypeParen(*TypeParen) Type
	FoldTypeInfer(*TypeInfer) Type
	FoldTypeNever(*TypeNever) Type

	FoldStmtLet(*StmtLet) Stmt
	FoldStmtItem(*StmtItem) Stmt
	FoldStmtExpr(*StmtExpr) Stmt
	FoldBlock(*Block) *Block

	FoldLit(Lit) Lit
	FoldPath(Path) Path
	FoldIdent(Ident) Ident
}

// IdentityFolder implements every Folder hook as the identity, so folding
// with it (or any embedder that overrides a few hooks) reproduces the tree
// structurally unchanged.
type IdentityFolder struct{}

func (IdentityFolder) FoldFile(n *File) *File                   { return n }
func (IdentityFolder) FoldItemFn(n *ItemFn) Item                { return n }
func (IdentityFolder) FoldItemStruct(n *ItemStruct) Item        { return n }
func (IdentityFolder) FoldItemEnum(n *ItemEnum) Item            { return n }
func (IdentityFolder) FoldItemTrait(n *ItemTrait) Item          { return n }
func (IdentityFolder) FoldItemImpl(n *ItemImpl) Item            { return n }
func (IdentityFolder) FoldItemMod(n *ItemMod) Item              { return n }
func (IdentityFolder) FoldItemUse(n *ItemUse) Item              { return n }
func (IdentityFolder) FoldItemConst(n *ItemConst) Item          { return n }
func (IdentityFolder) FoldItemStatic(n *ItemStatic) Item        { return n }
func (IdentityFolder) FoldItemForeignMod(n *ItemForeignMod) Item { return n }
func (IdentityFolder) FoldItemMacro(n *ItemMacro) Item          { return n }
func (IdentityFolder) FoldItemType(n *ItemType) Item            { return n }
func (IdentityFolder) FoldTraitItem(n TraitItem) TraitItem      { return n }
func (IdentityFolder) FoldImplItem(n ImplItem) ImplItem         { return n }
func (IdentityFolder) FoldForeignItem(n ForeignItem) ForeignItem { return n }
func (IdentityFolder) FoldUseTree(n UseTree) UseTree            { return n }
func (IdentityFolder) FoldExprLit(n *ExprLit) Expr              { return n }
func (IdentityFolder) FoldExprPath(n *ExprPath) Expr            { return n }
func (IdentityFolder) FoldExprUnary(n *ExprUnary) Expr          { return n }
func (IdentityFolder) FoldExprBinary(n *ExprBinary) Expr        { return n }
func (IdentityFolder) FoldExprCall(n *ExprCall) Expr            { return n }
func (IdentityFolder) FoldExprMethodCall(n *ExprMethodCall) Expr { return n }
func (IdentityFolder) FoldExprField(n *ExprField) Expr          { return n }
func (IdentityFolder) FoldExprIndex(n *ExprIndex) Expr          { return n }
func (IdentityFolder) FoldExprTuple(n *ExprTuple) Expr          { return n }
func (IdentityFolder) FoldExprArray(n *ExprArray) Expr          { return n }
func (IdentityFolder) FoldExprRepeat(n *ExprRepeat) Expr        { return n }
func (IdentityFolder) FoldExprIf(n *ExprIf) Expr                { return n }
func (IdentityFolder) FoldExprMatch(n *ExprMatch) Expr          { return n }
func (IdentityFolder) FoldExprWhile(n *ExprWhile) Expr          { return n }
func (IdentityFolder) FoldExprLoop(n *ExprLoop) Expr            { return n }
func (IdentityFolder) FoldExprForLoop(n *ExprForLoop) Expr      { return n }
func (IdentityFolder) FoldExprBlock(n *ExprBlock) Expr          { return n }
func (IdentityFolder) FoldExprClosure(n *ExprClosure) Expr      { return n }
func (IdentityFolder) FoldExprReference(n *ExprReference) Expr  { return n }
func (IdentityFolder) FoldExprCast(n *ExprCast) Expr            { return n }
func (IdentityFolder) FoldExprRange(n *ExprRange) Expr          { return n }
func (IdentityFolder) FoldExprReturn(n *ExprReturn) Expr        { return n }
func (IdentityFolder) FoldExprBreak(n *ExprBreak) Expr          { return n }
func (IdentityFolder) FoldExprContinue(n *ExprContinue) Expr    { return n }
func (IdentityFolder) FoldExprStruct(n *ExprStruct) Expr        { return n }
func (IdentityFolder) FoldExprParen(n *ExprParen) Expr          { return n }
func (IdentityFolder) FoldExprMacro(n *ExprMacro) Expr          { return n }
func (IdentityFolder) FoldExprTry(n *ExprTry) Expr              { return n }
func (IdentityFolder) FoldPatWild(n *PatWild) Pat               { return n }
func (IdentityFolder) FoldPatIdent(n *PatIdent) Pat             { return n }
func (IdentityFolder) FoldPatLit(n *PatLit) Pat                 { return n }
func (IdentityFolder) FoldPatPath(n *PatPath) Pat               { return n }
func (IdentityFolder) FoldPatTuple(n *PatTuple) Pat             { return n }
func (IdentityFolder) FoldPatTupleStruct(n *PatTupleStruct) Pat { return n }
func (IdentityFolder) FoldPatStruct(n *PatStruct) Pat           { return n }
func (IdentityFolder) FoldPatRange(n *PatRange) Pat             { return n }
func (IdentityFolder) FoldPatReference(n *PatReference) Pat     { return n }
func (IdentityFolder) FoldPatRest(n *PatRest) Pat               { return n }
func (IdentityFolder) FoldTypePath(n *TypePath) Type            { return n }
func (IdentityFolder) FoldTypeReference(n *TypeReference) Type  { return n }
func (IdentityFolder) FoldTypePtr(n *TypePtr) Type              { return n }
func (IdentityFolder) FoldTypeTuple(n *TypeTuple) Type          { return n }
func (IdentityFolder) FoldTypeArray(n *TypeArray) Type          { return n }
func (IdentityFolder) FoldTypeSlice(n *TypeSlice) Type          { return n }
func (IdentityFolder) FoldTypeBareFn(n *TypeBareFn) Type        { return n }
func (IdentityFolder) FoldTypeTraitObject(n *TypeTraitObject) Type { return n }
func (IdentityFolder) FoldTypeImplTrait(n *TypeImplTrait) Type  { return n }
func (IdentityFolder) FoldTypeParen(n *TypeParen) Type          { return n }
func (IdentityFolder) FoldTypeInfer(n *TypeInfer) Type          { return n }
func (IdentityFolder) FoldTypeNever(n *TypeNever) Type          { return n }
func (IdentityFolder) FoldStmtLet(n *StmtLet) Stmt              { return n }
func (IdentityFolder) FoldStmtItem(n *StmtItem) Stmt            { return n }
func (IdentityFolder) FoldStmtExpr(n *StmtExpr) Stmt            { return n }
func (IdentityFolder) FoldBlock(n *Block) *Block                { return n }
func (IdentityFolder) FoldLit(n Lit) Lit                        { return n }
func (IdentityFolder) FoldPath(n Path) Path                     { return n }
func (IdentityFolder) FoldIdent(n Ident) Ident                  { return n }

func foldPunct[T any](p Punctuated[T], fn func(T) T) Punctuated[T] {
	out := Punctuated[T]{Trailing: p.Trailing}
	if len(p.Seps) > 0 {
		out.Seps = append([]token.Token(nil), p.Seps...)
	}
	if len(p.Items) > 0 {
		out.Items = make([]T, len(p.Items))
		for i, it := range p.Items {
			out.Items[i] = fn(it)
		}
	}
	return out
}

func foldSlice[T any](s []T, fn func(T) T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	for i, it := range s {
		out[i] = fn(it)
	}
	return out
}

func copyTokens(toks []token.Token) []token.Token {
	if len(toks) == 0 {
		return nil
	}
	return append([]token.Token(nil), toks...)
}

// FoldFile rebuilds a whole compilation unit through the folder.
func FoldFile(f Folder, file *File) *File {
	n := *file
	n.Attrs = foldAttrs(f, file.Attrs)
	n.Items = foldSlice(file.Items, func(it Item) Item { return FoldItem(f, it) })
	return f.FoldFile(&n)
}

func foldAttrs(f Folder, attrs []Attr) []Attr {
	return foldSlice(attrs, func(a Attr) Attr {
		n := a
		if !a.IsDoc {
			n.Path = foldPath(f, a.Path)
		}
		n.Tokens = copyTokens(a.Tokens)
		return n
	})
}

func foldPath(f Folder, p Path) Path {
	n := p
	n.Segments = foldPunct(p.Segments, func(seg PathSegment) PathSegment {
		s := seg
		s.Ident = f.FoldIdent(seg.Ident)
		if seg.Args != nil {
			s.Args = foldGenericArgs(f, seg.Args)
		}
		return s
	})
	return f.FoldPath(n)
}

func foldGenericArgs(f Folder, ga *GenericArgs) *GenericArgs {
	n := *ga
	n.Args = foldPunct(ga.Args, func(arg GenericArg) GenericArg {
		switch arg := arg.(type) {
		case *GenericArgLifetime:
			c := *arg
			return &c
		case *GenericArgType:
			c := *arg
			c.Ty = FoldType(f, arg.Ty)
			return &c
		case *GenericArgBinding:
			c := *arg
			c.Ident = f.FoldIdent(arg.Ident)
			c.Ty = FoldType(f, arg.Ty)
			return &c
		default:
			return arg
		}
	})
	return &n
}

func foldMacro(f Folder, m Macro) Macro {
	n := m
	n.Path = foldPath(f, m.Path)
	n.Tokens = copyTokens(m.Tokens)
	return n
}

func foldLit(f Folder, l Lit) Lit {
	if bs, ok := l.(*LitByteStr); ok {
		c := *bs
		c.Value = append([]byte(nil), bs.Value...)
		return f.FoldLit(&c)
	}
	return f.FoldLit(l)
}

func foldBound(f Folder, b TypeParamBound) TypeParamBound {
	switch b := b.(type) {
	case *BoundTrait:
		c := *b
		c.Path = foldPath(f, b.Path)
		return &c
	case *BoundLifetime:
		c := *b
		return &c
	default:
		return b
	}
}

func foldGenerics(f Folder, g Generics) Generics {
	n := g
	n.Lifetimes = foldSlice(g.Lifetimes, func(ld LifetimeDef) LifetimeDef {
		c := ld
		c.Bounds = foldSlice(ld.Bounds, func(l Lifetime) Lifetime { return l })
		return c
	})
	n.TypeParams = foldSlice(g.TypeParams, func(tp TypeParam) TypeParam {
		c := tp
		c.Ident = f.FoldIdent(tp.Ident)
		c.Bounds = foldSlice(tp.Bounds, func(b TypeParamBound) TypeParamBound { return foldBound(f, b) })
		if tp.Default != nil {
			c.Default = FoldType(f, tp.Default)
		}
		return c
	})
	n.Where = foldSlice(g.Where, func(w WherePredicate) WherePredicate {
		switch w := w.(type) {
		case *PredType:
			c := *w
			c.Ty = FoldType(f, w.Ty)
			c.Bounds = foldSlice(w.Bounds, func(b TypeParamBound) TypeParamBound { return foldBound(f, b) })
			return &c
		case *PredLifetime:
			c := *w
			c.Bounds = foldSlice(w.Bounds, func(l Lifetime) Lifetime { return l })
			return &c
		default:
			return w
		}
	})
	return n
}

func foldSignature(f Folder, sig Signature) Signature {
	n := sig
	n.Ident = f.FoldIdent(sig.Ident)
	n.Generics = foldGenerics(f, sig.Generics)
	n.Inputs = foldPunct(sig.Inputs, func(arg FnArg) FnArg {
		switch arg := arg.(type) {
		case *Receiver:
			c := *arg
			return &c
		case *ArgTyped:
			c := *arg
			c.Pat = FoldPat(f, arg.Pat)
			c.Ty = FoldType(f, arg.Ty)
			return &c
		default:
			return arg
		}
	})
	if sig.Output != nil {
		n.Output = FoldType(f, sig.Output)
	}
	return n
}

func foldFields(f Folder, fs Fields) Fields {
	n := fs
	n.Fields = foldPunct(fs.Fields, func(fd Field) Field {
		c := fd
		c.Attrs = foldAttrs(f, fd.Attrs)
		if fd.Name != nil {
			name := f.FoldIdent(*fd.Name)
			c.Name = &name
		}
		c.Ty = FoldType(f, fd.Ty)
		return c
	})
	return n
}

// FoldItem rebuilds one item through the folder.
func FoldItem(f Folder, it Item) Item {
	switch it := it.(type) {
	case *ItemFn:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Sig = foldSignature(f, it.Sig)
		n.Body = FoldBlock(f, it.Body)
		return f.FoldItemFn(&n)
	case *ItemStruct:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Generics = foldGenerics(f, it.Generics)
		n.Fields = foldFields(f, it.Fields)
		return f.FoldItemStruct(&n)
	case *ItemEnum:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Generics = foldGenerics(f, it.Generics)
		n.Variants = foldPunct(it.Variants, func(vt Variant) Variant {
			c := vt
			c.Attrs = foldAttrs(f, vt.Attrs)
			c.Ident = f.FoldIdent(vt.Ident)
			c.Fields = foldFields(f, vt.Fields)
			if vt.Discriminant != nil {
				c.Discriminant = FoldExpr(f, vt.Discriminant)
			}
			return c
		})
		return f.FoldItemEnum(&n)
	case *ItemTrait:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Generics = foldGenerics(f, it.Generics)
		n.Supertraits = foldSlice(it.Supertraits, func(b TypeParamBound) TypeParamBound { return foldBound(f, b) })
		n.Items = foldSlice(it.Items, func(ti TraitItem) TraitItem { return foldTraitItem(f, ti) })
		return f.FoldItemTrait(&n)
	case *ItemImpl:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Generics = foldGenerics(f, it.Generics)
		if it.Trait != nil {
			tp := foldPath(f, *it.Trait)
			n.Trait = &tp
		}
		n.SelfTy = FoldType(f, it.SelfTy)
		n.Items = foldSlice(it.Items, func(ii ImplItem) ImplItem { return foldImplItem(f, ii) })
		return f.FoldItemImpl(&n)
	case *ItemMod:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Items = foldSlice(it.Items, func(sub Item) Item { return FoldItem(f, sub) })
		return f.FoldItemMod(&n)
	case *ItemUse:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Tree = foldUseTree(f, it.Tree)
		return f.FoldItemUse(&n)
	case *ItemConst:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Ty = FoldType(f, it.Ty)
		n.Expr = FoldExpr(f, it.Expr)
		return f.FoldItemConst(&n)
	case *ItemStatic:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Ty = FoldType(f, it.Ty)
		n.Expr = FoldExpr(f, it.Expr)
		return f.FoldItemStatic(&n)
	case *ItemForeignMod:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Items = foldSlice(it.Items, func(fi ForeignItem) ForeignItem { return foldForeignItem(f, fi) })
		return f.FoldItemForeignMod(&n)
	case *ItemMacro:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		if it.Name != nil {
			name := f.FoldIdent(*it.Name)
			n.Name = &name
		}
		n.Mac = foldMacro(f, it.Mac)
		return f.FoldItemMacro(&n)
	case *ItemType:
		n := *it
		n.Attrs = foldAttrs(f, it.Attrs)
		n.Ident = f.FoldIdent(it.Ident)
		n.Generics = foldGenerics(f, it.Generics)
		n.Ty = FoldType(f, it.Ty)
		return f.FoldItemType(&n)
	default:
		return it
	}
}

func foldTraitItem(f Folder, ti TraitItem) TraitItem {
	switch ti := ti.(type) {
	case *TraitItemFn:
		n := *ti
		n.Attrs = foldAttrs(f, ti.Attrs)
		n.Sig = foldSignature(f, ti.Sig)
		if ti.Default != nil {
			n.Default = FoldBlock(f, ti.Default)
		}
		return f.FoldTraitItem(&n)
	case *TraitItemConst:
		n := *ti
		n.Attrs = foldAttrs(f, ti.Attrs)
		n.Ident = f.FoldIdent(ti.Ident)
		n.Ty = FoldType(f, ti.Ty)
		if ti.Default != nil {
			n.Default = FoldExpr(f, ti.Default)
		}
		return f.FoldTraitItem(&n)
	case *TraitItemType:
		n := *ti
		n.Attrs = foldAttrs(f, ti.Attrs)
		n.Ident = f.FoldIdent(ti.Ident)
		n.Bounds = foldSlice(ti.Bounds, func(b TypeParamBound) TypeParamBound { return foldBound(f, b) })
		if ti.Default != nil {
			n.Default = FoldType(f, ti.Default)
		}
		return f.FoldTraitItem(&n)
	default:
		return ti
	}
}

func foldImplItem(f Folder, ii ImplItem) ImplItem {
	switch ii := ii.(type) {
	case *ImplItemFn:
		n := *ii
		n.Attrs = foldAttrs(f, ii.Attrs)
		n.Sig = foldSignature(f, ii.Sig)
		n.Body = FoldBlock(f, ii.Body)
		return f.FoldImplItem(&n)
	case *ImplItemConst:
		n := *ii
		n.Attrs = foldAttrs(f, ii.Attrs)
		n.Ident = f.FoldIdent(ii.Ident)
		n.Ty = FoldType(f, ii.Ty)
		n.Expr = FoldExpr(f, ii.Expr)
		return f.FoldImplItem(&n)
	case *ImplItemType:
		n := *ii
		n.Attrs = foldAttrs(f, ii.Attrs)
		n.Ident = f.FoldIdent(ii.Ident)
		n.Ty = FoldType(f, ii.Ty)
		return f.FoldImplItem(&n)
	default:
		return ii
	}
}

func foldForeignItem(f Folder, fi ForeignItem) ForeignItem {
	switch fi := fi.(type) {
	case *ForeignItemFn:
		n := *fi
		n.Attrs = foldAttrs(f, fi.Attrs)
		n.Sig = foldSignature(f, fi.Sig)
		return f.FoldForeignItem(&n)
	case *ForeignItemStatic:
		n := *fi
		n.Attrs = foldAttrs(f, fi.Attrs)
		n.Ident = f.FoldIdent(fi.Ident)
		n.Ty = FoldType(f, fi.Ty)
		return f.FoldForeignItem(&n)
	default:
		return fi
	}
}

func foldUseTree(f Folder, ut UseTree) UseTree {
	switch ut := ut.(type) {
	case *UsePath:
		n := *ut
		n.Ident = f.FoldIdent(ut.Ident)
		n.Tree = foldUseTree(f, ut.Tree)
		return f.FoldUseTree(&n)
	case *UseName:
		n := *ut
		n.Ident = f.FoldIdent(ut.Ident)
		return f.FoldUseTree(&n)
	case *UseRename:
		n := *ut
		n.Ident = f.FoldIdent(ut.Ident)
		n.Alias = f.FoldIdent(ut.Alias)
		return f.FoldUseTree(&n)
	case *UseGlob:
		n := *ut
		return f.FoldUseTree(&n)
	case *UseGroup:
		n := *ut
		n.Items = foldPunct(ut.Items, func(sub UseTree) UseTree { return foldUseTree(f, sub) })
		return f.FoldUseTree(&n)
	default:
		return ut
	}
}

// FoldBlock rebuilds a block through the folder.
func FoldBlock(f Folder, b *Block) *Block {
	if b == nil {
		return nil
	}
	n := *b
	n.Stmts = foldSlice(b.Stmts, func(s Stmt) Stmt { return FoldStmt(f, s) })
	return f.FoldBlock(&n)
}

// FoldStmt rebuilds one statement through the folder.
func FoldStmt(f Folder, s Stmt) Stmt {
	switch s := s.(type) {
	case *StmtLet:
		n := *s
		n.Attrs = foldAttrs(f, s.Attrs)
		n.Pat = FoldPat(f, s.Pat)
		if s.Ty != nil {
			n.Ty = FoldType(f, s.Ty)
		}
		if s.Init != nil {
			n.Init = FoldExpr(f, s.Init)
		}
		return f.FoldStmtLet(&n)
	case *StmtItem:
		n := *s
		n.Item = FoldItem(f, s.Item)
		return f.FoldStmtItem(&n)
	case *StmtExpr:
		n := *s
		n.Attrs = foldAttrs(f, s.Attrs)
		n.Expr = FoldExpr(f, s.Expr)
		return f.FoldStmtExpr(&n)
	default:
		return s
	}
}

// FoldExpr rebuilds one expression through the folder, children first.
func FoldExpr(f Folder, e Expr) Expr {
	switch e := e.(type) {
	case *ExprLit:
		n := *e
		n.Lit = foldLit(f, e.Lit)
		return f.FoldExprLit(&n)
	case *ExprPath:
		n := *e
		n.Path = foldPath(f, e.Path)
		return f.FoldExprPath(&n)
	case *ExprUnary:
		n := *e
		n.Expr = FoldExpr(f, e.Expr)
		return f.FoldExprUnary(&n)
	case *ExprBinary:
		n := *e
		n.Left = FoldExpr(f, e.Left)
		n.Right = FoldExpr(f, e.Right)
		return f.FoldExprBinary(&n)
	case *ExprCall:
		n := *e
		n.Func = FoldExpr(f, e.Func)
		n.Args = foldPunct(e.Args, func(a Expr) Expr { return FoldExpr(f, a) })
		return f.FoldExprCall(&n)
	case *ExprMethodCall:
		n := *e
		n.Recv = FoldExpr(f, e.Recv)
		n.Method = f.FoldIdent(e.Method)
		if e.Turbofish != nil {
			n.Turbofish = foldGenericArgs(f, e.Turbofish)
		}
		n.Args = foldPunct(e.Args, func(a Expr) Expr { return FoldExpr(f, a) })
		return f.FoldExprMethodCall(&n)
	case *ExprField:
		n := *e
		n.Base = FoldExpr(f, e.Base)
		n.Member = f.FoldIdent(e.Member)
		return f.FoldExprField(&n)
	case *ExprIndex:
		n := *e
		n.Base = FoldExpr(f, e.Base)
		n.Index = FoldExpr(f, e.Index)
		return f.FoldExprIndex(&n)
	case *ExprTuple:
		n := *e
		n.Elems = foldPunct(e.Elems, func(el Expr) Expr { return FoldExpr(f, el) })
		return f.FoldExprTuple(&n)
	case *ExprArray:
		n := *e
		n.Elems = foldPunct(e.Elems, func(el Expr) Expr { return FoldExpr(f, el) })
		return f.FoldExprArray(&n)
	case *ExprRepeat:
		n := *e
		n.Elem = FoldExpr(f, e.Elem)
		n.Len = FoldExpr(f, e.Len)
		return f.FoldExprRepeat(&n)
	case *ExprIf:
		n := *e
		n.Cond = FoldExpr(f, e.Cond)
		n.Then = FoldBlock(f, e.Then)
		if e.Else != nil {
			n.Else = FoldExpr(f, e.Else)
		}
		return f.FoldExprIf(&n)
	case *ExprMatch:
		n := *e
		n.Expr = FoldExpr(f, e.Expr)
		n.Arms = foldSlice(e.Arms, func(a MatchArm) MatchArm {
			c := a
			c.Pat = FoldPat(f, a.Pat)
			if a.Guard != nil {
				c.Guard = FoldExpr(f, a.Guard)
			}
			c.Body = FoldExpr(f, a.Body)
			return c
		})
		return f.FoldExprMatch(&n)
	case *ExprWhile:
		n := *e
		n.Cond = FoldExpr(f, e.Cond)
		n.Body = FoldBlock(f, e.Body)
		return f.FoldExprWhile(&n)
	case *ExprLoop:
		n := *e
		n.Body = FoldBlock(f, e.Body)
		return f.FoldExprLoop(&n)
	case *ExprForLoop:
		n := *e
		n.Pat = FoldPat(f, e.Pat)
		n.Iter = FoldExpr(f, e.Iter)
		n.Body = FoldBlock(f, e.Body)
		return f.FoldExprForLoop(&n)
	case *ExprBlock:
		n := *e
		n.Block = FoldBlock(f, e.Block)
		return f.FoldExprBlock(&n)
	case *ExprClosure:
		n := *e
		n.Inputs = foldPunct(e.Inputs, func(arg ClosureArg) ClosureArg {
			c := arg
			c.Pat = FoldPat(f, arg.Pat)
			if arg.Ty != nil {
				c.Ty = FoldType(f, arg.Ty)
			}
			return c
		})
		if e.Output != nil {
			n.Output = FoldType(f, e.Output)
		}
		n.Body = FoldExpr(f, e.Body)
		return f.FoldExprClosure(&n)
	case *ExprReference:
		n := *e
		n.Expr = FoldExpr(f, e.Expr)
		return f.FoldExprReference(&n)
	case *ExprCast:
		n := *e
		n.Expr = FoldExpr(f, e.Expr)
		n.Ty = FoldType(f, e.Ty)
		return f.FoldExprCast(&n)
	case *ExprRange:
		n := *e
		if e.From != nil {
			n.From = FoldExpr(f, e.From)
		}
		if e.To != nil {
			n.To = FoldExpr(f, e.To)
		}
		return f.FoldExprRange(&n)
	case *ExprReturn:
		n := *e
		if e.Expr != nil {
			n.Expr = FoldExpr(f, e.Expr)
		}
		return f.FoldExprReturn(&n)
	case *ExprBreak:
		n := *e
		if e.Expr != nil {
			n.Expr = FoldExpr(f, e.Expr)
		}
		return f.FoldExprBreak(&n)
	case *ExprContinue:
		n := *e
		return f.FoldExprContinue(&n)
	case *ExprStruct:
		n := *e
		n.Path = foldPath(f, e.Path)
		n.Fields = foldPunct(e.Fields, func(fv FieldValue) FieldValue {
			c := fv
			c.Name = f.FoldIdent(fv.Name)
			c.Value = FoldExpr(f, fv.Value)
			return c
		})
		if e.Rest != nil {
			n.Rest = FoldExpr(f, e.Rest)
		}
		return f.FoldExprStruct(&n)
	case *ExprParen:
		n := *e
		n.Expr = FoldExpr(f, e.Expr)
		return f.FoldExprParen(&n)
	case *ExprMacro:
		n := *e
		n.Mac = foldMacro(f, e.Mac)
		return f.FoldExprMacro(&n)
	case *ExprTry:
		n := *e
		n.Expr = FoldExpr(f, e.Expr)
		return f.FoldExprTry(&n)
	default:
		return e
	}
}

// FoldPat rebuilds one pattern through the folder.
func FoldPat(f Folder, p Pat) Pat {
	switch p := p.(type) {
	case *PatWild:
		n := *p
		return f.FoldPatWild(&n)
	case *PatIdent:
		n := *p
		n.Ident = f.FoldIdent(p.Ident)
		if p.Sub != nil {
			n.Sub = FoldPat(f, p.Sub)
		}
		return f.FoldPatIdent(&n)
	case *PatLit:
		n := *p
		n.Expr = FoldExpr(f, p.Expr)
		return f.FoldPatLit(&n)
	case *PatPath:
		n := *p
		n.Path = foldPath(f, p.Path)
		return f.FoldPatPath(&n)
	case *PatTuple:
		n := *p
		n.Elems = foldPunct(p.Elems, func(el Pat) Pat { return FoldPat(f, el) })
		return f.FoldPatTuple(&n)
	case *PatTupleStruct:
		n := *p
		n.Path = foldPath(f, p.Path)
		n.Elems = foldPunct(p.Elems, func(el Pat) Pat { return FoldPat(f, el) })
		return f.FoldPatTupleStruct(&n)
	case *PatStruct:
		n := *p
		n.Path = foldPath(f, p.Path)
		n.Fields = foldPunct(p.Fields, func(fp FieldPat) FieldPat {
			c := fp
			c.Name = f.FoldIdent(fp.Name)
			c.Pat = FoldPat(f, fp.Pat)
			return c
		})
		return f.FoldPatStruct(&n)
	case *PatRange:
		n := *p
		n.Lo = FoldExpr(f, p.Lo)
		n.Hi = FoldExpr(f, p.Hi)
		return f.FoldPatRange(&n)
	case *PatReference:
		n := *p
		n.Pat = FoldPat(f, p.Pat)
		return f.FoldPatReference(&n)
	case *PatRest:
		n := *p
		return f.FoldPatRest(&n)
	default:
		return p
	}
}

// FoldType rebuilds one type through the folder.
func FoldType(f Folder, t Type) Type {
	switch t := t.(type) {
	case *TypePath:
		n := *t
		n.Path = foldPath(f, t.Path)
		return f.FoldTypePath(&n)
	case *TypeReference:
		n := *t
		n.Elem = FoldType(f, t.Elem)
		return f.FoldTypeReference(&n)
	case *TypePtr:
		n := *t
		n.Elem = FoldType(f, t.Elem)
		return f.FoldTypePtr(&n)
	case *TypeTuple:
		n := *t
		n.Elems = foldPunct(t.Elems, func(el Type) Type { return FoldType(f, el) })
		return f.FoldTypeTuple(&n)
	case *TypeArray:
		n := *t
		n.Elem = FoldType(f, t.Elem)
		n.Len = FoldExpr(f, t.Len)
		return f.FoldTypeArray(&n)
	case *TypeSlice:
		n := *t
		n.Elem = FoldType(f, t.Elem)
		return f.FoldTypeSlice(&n)
	case *TypeBareFn:
		n := *t
		n.Inputs = foldPunct(t.Inputs, func(arg BareFnArg) BareFnArg {
			c := arg
			if arg.Name != nil {
				name := f.FoldIdent(*arg.Name)
				c.Name = &name
			}
			c.Ty = FoldType(f, arg.Ty)
			return c
		})
		if t.Output != nil {
			n.Output = FoldType(f, t.Output)
		}
		return f.FoldTypeBareFn(&n)
	case *TypeTraitObject:
		n := *t
		n.Bounds = foldPunct(t.Bounds, func(b TypeParamBound) TypeParamBound { return foldBound(f, b) })
		return f.FoldTypeTraitObject(&n)
	case *TypeImplTrait:
		n := *t
		n.Bounds = foldPunct(t.Bounds, func(b TypeParamBound) TypeParamBound { return foldBound(f, b) })
		return f.FoldTypeImplTrait(&n)
	case *TypeParen:
		n := *t
		n.Elem = FoldType(f, t.Elem)
		return f.FoldTypeParen(&n)
	case *TypeInfer:
		n := *t
		return f.FoldTypeInfer(&n)
	case *TypeNever:
		n := *t
		return f.FoldTypeNever(&n)
	default:
		return t
	}
}
