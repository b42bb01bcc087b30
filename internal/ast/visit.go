package ast

// Visitor is the read-only traversal capability: one method per node kind.
// Each method runs before the node's children and returns whether traversal
// should continue into them, so an implementation may replace, extend, or
// decline the default recursion. Embed NoopVisitor to get no-op defaults
// that always descend.
type Visitor interface {
	VisitFile(*File) bool

	VisitItemFn(*ItemFn) bool
	VisitItemStruct(*ItemStruct) bool
	VisitItemEnum(*ItemEnum) bool
	VisitItemTrait(*ItemTrait) bool
	VisitItemImpl(*ItemImpl) bool
	VisitItemMod(*ItemMod) bool
	VisitItemUse(*ItemUse) bool
	VisitItemConst(*ItemConst) bool
	VisitItemStatic(*ItemStatic) bool
	VisitItemForeignMod(*ItemForeignMod) bool
	VisitItemMacro(*ItemMacro) bool
	VisitItemType(*ItemType) bool

	VisitTraitItemFn(*TraitItemFn) bool
	VisitTraitItemConst(*TraitItemConst) bool
	VisitTraitItemType(*TraitItemType) bool
	VisitImplItemFn(*ImplItemFn) bool
	VisitImplItemConst(*ImplItemConst) bool
	VisitImplItemType(*ImplItemType) bool
	VisitForeignItemFn(*ForeignItemFn) bool
	VisitForeignItemStatic(*ForeignItemStatic) bool

	VisitUsePath(*UsePath) bool
	VisitUseName(*UseName) bool
	VisitUseRename(*UseRename) bool
	VisitUseGlob(*UseGlob) bool
	VisitUseGroup(*UseGroup) bool

	VisitExprLit(*ExprLit) bool
	VisitExprPath(*ExprPath) bool
	VisitExprUnary(*ExprUnary) bool
	VisitExprBinary(*ExprBinary) bool
	VisitExprCall(*ExprCall) bool
	VisitExprMethodCall(*ExprMethodCall) bool
	VisitExprField(*ExprField) bool
	VisitExprIndex(*ExprIndex) bool
	VisitExprTuple(*ExprTuple) bool
	VisitExprArray(*ExprArray) bool
	VisitExprRepeat(*ExprRepeat) bool
	VisitExprIf(*ExprIf) bool
	VisitExprMatch(*ExprMatch) bool
	VisitExprWhile(*ExprWhile) bool
	VisitExprLoop(*ExprLoop) bool
	VisitExprForLoop(*ExprForLoop) bool
	VisitExprBlock(*ExprBlock) bool
	VisitExprClosure(*ExprClosure) bool
	VisitExprReference(*ExprReference) bool
	VisitExprCast(*ExprCast) bool
	VisitExprRange(*ExprRange) bool
	VisitExprReturn(*ExprReturn) bool
	VisitExprBreak(*ExprBreak) bool
	VisitExprContinue(*ExprContinue) bool
	VisitExprStruct(*ExprStruct) bool
	VisitExprParen(*ExprParen) bool
	VisitExprMacro(*ExprMacro) bool
	VisitExprTry(*ExprTry) bool
	VisitMatchArm(*MatchArm) bool
	VisitFieldValue(*FieldValue) bool

	VisitPatWild(*PatWild) bool
	VisitPatIdent(*PatIdent) bool
	VisitPatLit(*PatLit) bool
	VisitPatPath(*PatPath) bool
	VisitPatTuple(*PatTuple) bool
	VisitPatTupleStruct(*PatTupleStruct) bool
	VisitPatStruct(*PatStruct) bool
	VisitPatRange(*PatRange) bool
	VisitPatReference(*PatReference) bool
	VisitPatRest(*PatRest) bool
	VisitFieldPat(*FieldPat) bool

	VisitTypePath(*TypePath) bool
	VisitTypeReference(*TypeReference) bool
	VisitTypePtr(*TypePtr) bool
	VisitTypeTuple(*TypeTuple) bool
	VisitTypeArray(*TypeArray) bool
	VisitTypeSlice(*TypeSlice) bool
	VisitTypeBareFn(*TypeBareFn) bool
	VisitTypeTraitObject(*TypeTraitObject) bool
	VisitTypeImplTrait(*TypeImplTrait) bool
	VisitTypeParen(*TypeParen) bool
	VisitTypeInfer(*TypeInfer) bool
	VisitTypeNever(*TypeNever) bool

	VisitStmtLet(*StmtLet) bool
	VisitStmtItem(*StmtItem) bool
	VisitStmtExpr(*StmtExpr) bool
	VisitBlock(*Block) bool

	VisitVariant(*Variant) bool
	VisitField(*Field) bool
	VisitPath(*Path) bool
	VisitMacro(*Macro) bool
	VisitAttr(*Attr) bool
	VisitGenerics(*Generics) bool
	VisitLit(Lit) bool
}

// NoopVisitor implements every Visitor method as "do nothing, descend".
type NoopVisitor struct{}

func (NoopVisitor) VisitFile(*File) bool                           { return true }
func (NoopVisitor) VisitItemFn(*ItemFn) bool                       { return true }
func (NoopVisitor) VisitItemStruct(*ItemStruct) bool               { return true }
func (NoopVisitor) VisitItemEnum(*ItemEnum) bool                   { return true }
func (NoopVisitor) VisitItemTrait(*ItemTrait) bool                 { return true }
func (NoopVisitor) VisitItemImpl(*ItemImpl) bool                   { return true }
func (NoopVisitor) VisitItemMod(*ItemMod) bool                     { return true }
func (NoopVisitor) VisitItemUse(*ItemUse) bool                     { return true }
func (NoopVisitor) VisitItemConst(*ItemConst) bool                 { return true }
func (NoopVisitor) VisitItemStatic(*ItemStatic) bool               { return true }
func (NoopVisitor) VisitItemForeignMod(*ItemForeignMod) bool       { return true }
func (NoopVisitor) VisitItemMacro(*ItemMacro) bool                 { return true }
func (NoopVisitor) VisitItemType(*ItemType) bool                   { return true }
func (NoopVisitor) VisitTraitItemFn(*TraitItemFn) bool             { return true }
func (NoopVisitor) VisitTraitItemConst(*TraitItemConst) bool       { return true }
func (NoopVisitor) VisitTraitItemType(*TraitItemType) bool         { return true }
func (NoopVisitor) VisitImplItemFn(*ImplItemFn) bool               { return true }
func (NoopVisitor) VisitImplItemConst(*ImplItemConst) bool         { return true }
func (NoopVisitor) VisitImplItemType(*ImplItemType) bool           { return true }
func (NoopVisitor) VisitForeignItemFn(*ForeignItemFn) bool         { return true }
func (NoopVisitor) VisitForeignItemStatic(*ForeignItemStatic) bool { return true }
func (NoopVisitor) VisitUsePath(*UsePath) bool                     { return true }
func (NoopVisitor) VisitUseName(*UseName) bool                     { return true }
func (NoopVisitor) VisitUseRename(*UseRename) bool                 { return true }
func (NoopVisitor) VisitUseGlob(*UseGlob) bool                     { return true }
func (NoopVisitor) VisitUseGroup(*UseGroup) bool                   { return true }
func (NoopVisitor) VisitExprLit(*ExprLit) bool                     { return true }
func (NoopVisitor) VisitExprPath(*ExprPath) bool                   { return true }
func (NoopVisitor) VisitExprUnary(*ExprUnary) bool                 { return true }
func (NoopVisitor) VisitExprBinary(*ExprBinary) bool               { return true }
func (NoopVisitor) VisitExprCall(*ExprCall) bool                   { return true }
func (NoopVisitor) VisitExprMethodCall(*ExprMethodCall) bool       { return true }
func (NoopVisitor) VisitExprField(*ExprField) bool                 { return true }
func (NoopVisitor) VisitExprIndex(*ExprIndex) bool                 { return true }
func (NoopVisitor) VisitExprTuple(*ExprTuple) bool                 { return true }
func (NoopVisitor) VisitExprArray(*ExprArray) bool                 { return true }
func (NoopVisitor) VisitExprRepeat(*ExprRepeat) bool               { return true }
func (NoopVisitor) VisitExprIf(*ExprIf) bool                       { return true }
func (NoopVisitor) VisitExprMatch(*ExprMatch) bool                 { return true }
func (NoopVisitor) VisitExprWhile(*ExprWhile) bool                 { return true }
func (NoopVisitor) VisitExprLoop(*ExprLoop) bool                   { return true }
func (NoopVisitor) VisitExprForLoop(*ExprForLoop) bool             { return true }
func (NoopVisitor) VisitExprBlock(*ExprBlock) bool                 { return true }
func (NoopVisitor) VisitExprClosure(*ExprClosure) bool             { return true }
func (NoopVisitor) VisitExprReference(*ExprReference) bool         { return true }
func (NoopVisitor) VisitExprCast(*ExprCast) bool                   { return true }
func (NoopVisitor) VisitExprRange(*ExprRange) bool                 { return true }
func (NoopVisitor) VisitExprReturn(*ExprReturn) bool               { return true }
func (NoopVisitor) VisitExprBreak(*ExprBreak) bool                 { return true }
func (NoopVisitor) VisitExprContinue(*ExprContinue) bool           { return true }
func (NoopVisitor) VisitExprStruct(*ExprStruct) bool               { return true }
func (NoopVisitor) VisitExprParen(*ExprParen) bool                 { return true }
func (NoopVisitor) VisitExprMacro(*ExprMacro) bool                 { return true }
func (NoopVisitor) VisitExprTry(*ExprTry) bool                     { return true }
func (NoopVisitor) VisitMatchArm(*MatchArm) bool                   { return true }
func (NoopVisitor) VisitFieldValue(*FieldValue) bool               { return true }
func (NoopVisitor) VisitPatWild(*PatWild) bool                     { return true }
func (NoopVisitor) VisitPatIdent(*PatIdent) bool                   { return true }
func (NoopVisitor) VisitPatLit(*PatLit) bool                       { return true }
func (NoopVisitor) VisitPatPath(*PatPath) bool                     { return true }
func (NoopVisitor) VisitPatTuple(*PatTuple) bool                   { return true }
func (NoopVisitor) VisitPatTupleStruct(*PatTupleStruct) bool       { return true }
func (NoopVisitor) VisitPatStruct(*PatStruct) bool                 { return true }
func (NoopVisitor) VisitPatRange(*PatRange) bool                   { return true }
func (NoopVisitor) VisitPatReference(*PatReference) bool           { return true }
func (NoopVisitor) VisitPatRest(*PatRest) bool                     { return true }
func (NoopVisitor) VisitFieldPat(*FieldPat) bool                   { return true }
func (NoopVisitor) VisitTypePath(*TypePath) bool                   { return true }
func (NoopVisitor) VisitTypeReference(*TypeReference) bool         { return true }
func (NoopVisitor) VisitTypePtr(*TypePtr) bool                     { return true }
func (NoopVisitor) VisitTypeTuple(*TypeTuple) bool                 { return true }
func (NoopVisitor) VisitTypeArray(*TypeArray) bool                 { return true }
func (NoopVisitor) VisitTypeSlice(*TypeSlice) bool                 { return true }
func (NoopVisitor) VisitTypeBareFn(*TypeBareFn) bool               { return true }
func (NoopVisitor) VisitTypeTraitObject(*TypeTraitObject) bool     { return true }
func (NoopVisitor) VisitTypeImplTrait(*TypeImplTrait) bool         { return true }
func (NoopVisitor) VisitTypeParen(*TypeParen) bool                 { return true }
func (NoopVisitor) VisitTypeInfer(*TypeInfer) bool                 { return true }
func (NoopVisitor) VisitTypeNever(*TypeNever) bool                 { return true }
func (NoopVisitor) VisitStmtLet(*StmtLet) bool                     { return true }
func (NoopVisitor) VisitStmtItem(*StmtItem) bool                   { return true }
func (NoopVisitor) VisitStmtExpr(*StmtExpr) bool                   { return true }
func (NoopVisitor) VisitBlock(*Block) bool                         { return true }
func (NoopVisitor) VisitVariant(*Variant) bool                     { return true }
func (NoopVisitor) VisitField(*Field) bool                         { return true }
func (NoopVisitor) VisitPath(*Path) bool                           { return true }
func (NoopVisitor) VisitMacro(*Macro) bool                         { return true }
func (NoopVisitor) VisitAttr(*Attr) bool                           { return true }
func (NoopVisitor) VisitGenerics(*Generics) bool                   { return true }
func (NoopVisitor) VisitLit(Lit) bool                              { return true }
