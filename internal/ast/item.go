package ast

// Visibility is an item's declared visibility.
type Visibility uint8

const (
	VisInherited Visibility = iota
	VisPub
	VisCrate // pub(crate)
)

func (v Visibility) String() string {
	switch v {
	case VisPub:
		return "pub"
	case VisCrate:
		return "pub(crate)"
	default:
		return ""
	}
}

// Item is a top-level (or module-level) declaration.
type Item interface {
	Node
	isItem()
}

// Signature is a function's name, generics, parameters and return type,
// shared by free functions, trait methods, impl methods and foreign fns.
type Signature struct {
	Info
	Ident    Ident
	Generics Generics
	Inputs   Punctuated[FnArg]
	Output   Type
}

// FnArg is one function parameter: a receiver or a typed pattern.
type FnArg interface {
	Node
	isFnArg()
}

// Receiver is a `self` parameter in any of its forms: `self`, `&self`,
// `&'a mut self`.
type Receiver struct {
	Info
	Ref      bool
	Lifetime *Lifetime
	Mut      bool
}

// ArgTyped is an ordinary `pat: ty` parameter.
type ArgTyped struct {
	Info
	Pat Pat
	Ty  Type
}

func (*Receiver) isFnArg() {}
func (*ArgTyped) isFnArg() {}

// ItemFn is a free function with a body.
type ItemFn struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Sig   Signature
	Body  *Block
}

// Fields is the field list of a struct or enum variant.
type Fields struct {
	Info
	Kind   FieldsKind
	Fields Punctuated[Field]
}

// FieldsKind distinguishes named, tuple, and unit field lists.
type FieldsKind uint8

const (
	FieldsUnit FieldsKind = iota
	FieldsNamed
	FieldsUnnamed
)

// Field is one struct or variant field; Name is nil in tuple position.
type Field struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Name  *Ident
	Ty    Type
}

// ItemStruct is a struct declaration.
type ItemStruct struct {
	Info
	Attrs    []Attr
	Vis      Visibility
	Ident    Ident
	Generics Generics
	Fields   Fields
}

// ItemEnum is an enum declaration.
type ItemEnum struct {
	Info
	Attrs    []Attr
	Vis      Visibility
	Ident    Ident
	Generics Generics
	Variants Punctuated[Variant]
}

// Variant is one enum variant with optional fields and discriminant.
type Variant struct {
	Info
	Attrs        []Attr
	Ident        Ident
	Fields       Fields
	Discriminant Expr
}

// ItemTrait is a trait declaration.
type ItemTrait struct {
	Info
	Attrs       []Attr
	Vis         Visibility
	Ident       Ident
	Generics    Generics
	Supertraits []TypeParamBound
	Items       []TraitItem
}

// TraitItem is a member of a trait declaration.
type TraitItem interface {
	Node
	isTraitItem()
}

// TraitItemFn is a method signature with an optional default body.
type TraitItemFn struct {
	Info
	Attrs   []Attr
	Sig     Signature
	Default *Block
}

// TraitItemConst is an associated constant with an optional default.
type TraitItemConst struct {
	Info
	Attrs   []Attr
	Ident   Ident
	Ty      Type
	Default Expr
}

// TraitItemType is an associated type with optional bounds and default.
type TraitItemType struct {
	Info
	Attrs   []Attr
	Ident   Ident
	Bounds  []TypeParamBound
	Default Type
}

func (*TraitItemFn) isTraitItem()    {}
func (*TraitItemConst) isTraitItem() {}
func (*TraitItemType) isTraitItem()  {}

// ItemImpl is an inherent or trait implementation block.
type ItemImpl struct {
	Info
	Attrs    []Attr
	Generics Generics
	Trait    *Path // nil for inherent impls
	SelfTy   Type
	Items    []ImplItem
}

// ImplItem is a member of an impl block.
type ImplItem interface {
	Node
	isImplItem()
}

// ImplItemFn is a method with a body.
type ImplItemFn struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Sig   Signature
	Body  *Block
}

// ImplItemConst is an associated constant definition.
type ImplItemConst struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Ident Ident
	Ty    Type
	Expr  Expr
}

// ImplItemType is an associated type definition.
type ImplItemType struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Ident Ident
	Ty    Type
}

func (*ImplItemFn) isImplItem()    {}
func (*ImplItemConst) isImplItem() {}
func (*ImplItemType) isImplItem()  {}

// ItemMod is a module; Inline distinguishes `mod m { ... }` from `mod m;`.
type ItemMod struct {
	Info
	Attrs  []Attr
	Vis    Visibility
	Ident  Ident
	Inline bool
	Items  []Item
}

// ItemUse is an import declaration.
type ItemUse struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Tree  UseTree
}

// UseTree is the structure after `use`: paths, renames, globs, groups.
type UseTree interface {
	Node
	isUseTree()
}

// UsePath is a `prefix::rest` step.
type UsePath struct {
	Info
	Ident Ident
	Tree  UseTree
}

// UseName imports a single name.
type UseName struct {
	Info
	Ident Ident
}

// UseRename imports a name under an alias: `x as y`.
type UseRename struct {
	Info
	Ident Ident
	Alias Ident
}

// UseGlob is `*`.
type UseGlob struct {
	Info
}

// UseGroup is `{a, b::c}`.
type UseGroup struct {
	Info
	Items Punctuated[UseTree]
}

func (*UsePath) isUseTree()   {}
func (*UseName) isUseTree()   {}
func (*UseRename) isUseTree() {}
func (*UseGlob) isUseTree()   {}
func (*UseGroup) isUseTree()  {}

// ItemConst is a `const NAME: Ty = expr;`.
type ItemConst struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Ident Ident
	Ty    Type
	Expr  Expr
}

// ItemStatic is a `static NAME: Ty = expr;`, possibly mutable.
type ItemStatic struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Mut   bool
	Ident Ident
	Ty    Type
	Expr  Expr
}

// ItemForeignMod is an `extern "C" { ... }` block.
type ItemForeignMod struct {
	Info
	Attrs []Attr
	Abi   string
	Items []ForeignItem
}

// ForeignItem is a member of an extern block.
type ForeignItem interface {
	Node
	isForeignItem()
}

// ForeignItemFn is a function declaration without a body.
type ForeignItemFn struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Sig   Signature
}

// ForeignItemStatic is a static declaration inside an extern block.
type ForeignItemStatic struct {
	Info
	Attrs []Attr
	Vis   Visibility
	Mut   bool
	Ident Ident
	Ty    Type
}

func (*ForeignItemFn) isForeignItem()     {}
func (*ForeignItemStatic) isForeignItem() {}

// ItemMacro is a macro invocation in item position. Name is set for the
// definition form `macro_rules! name { ... }`.
type ItemMacro struct {
	Info
	Attrs []Attr
	Name  *Ident
	Mac   Macro
	Semi  bool
}

// ItemType is a type alias.
type ItemType struct {
	Info
	Attrs    []Attr
	Vis      Visibility
	Ident    Ident
	Generics Generics
	Ty       Type
}

func (*ItemFn) isItem()         {}
func (*ItemStruct) isItem()     {}
func (*ItemEnum) isItem()       {}
func (*ItemTrait) isItem()      {}
func (*ItemImpl) isItem()       {}
func (*ItemMod) isItem()        {}
func (*ItemUse) isItem()        {}
func (*ItemConst) isItem()      {}
func (*ItemStatic) isItem()     {}
func (*ItemForeignMod) isItem() {}
func (*ItemMacro) isItem()      {}
func (*ItemType) isItem()       {}
