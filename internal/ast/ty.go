package ast

// Type is a type node.
type Type interface {
	Node
	isType()
}

// TypePath is a named type, generic arguments included.
type TypePath struct {
	Info
	Path Path
}

// TypeReference is `&'a mut T`.
type TypeReference struct {
	Info
	Lifetime *Lifetime
	Mut      bool
	Elem     Type
}

// TypePtr is a raw pointer `*const T` or `*mut T`.
type TypePtr struct {
	Info
	Mut  bool
	Elem Type
}

// TypeTuple is `(A, B)`; the empty tuple is the unit type.
type TypeTuple struct {
	Info
	Elems Punctuated[Type]
}

// TypeArray is `[T; len]`.
type TypeArray struct {
	Info
	Elem Type
	Len  Expr
}

// TypeSlice is `[T]`.
type TypeSlice struct {
	Info
	Elem Type
}

// TypeBareFn is a function pointer type `fn(A, B) -> C`.
type TypeBareFn struct {
	Info
	Inputs Punctuated[BareFnArg]
	Output Type
}

// BareFnArg is one parameter of a function pointer type, optionally named.
type BareFnArg struct {
	Info
	Name *Ident
	Ty   Type
}

// TypeTraitObject is `dyn Bound + 'a`; Dyn is false for the bare legacy form.
type TypeTraitObject struct {
	Info
	Dyn    bool
	Bounds Punctuated[TypeParamBound]
}

// TypeImplTrait is `impl Bound + Bound`.
type TypeImplTrait struct {
	Info
	Bounds Punctuated[TypeParamBound]
}

// TypeParen is a parenthesized type.
type TypeParen struct {
	Info
	Elem Type
}

// TypeInfer is `_`.
type TypeInfer struct {
	Info
}

// TypeNever is `!`.
type TypeNever struct {
	Info
}

func (*TypePath) isType()        {}
func (*TypeReference) isType()   {}
func (*TypePtr) isType()         {}
func (*TypeTuple) isType()       {}
func (*TypeArray) isType()       {}
func (*TypeSlice) isType()       {}
func (*TypeBareFn) isType()      {}
func (*TypeTraitObject) isType() {}
func (*TypeImplTrait) isType()   {}
func (*TypeParen) isType()       {}
func (*TypeInfer) isType()       {}
func (*TypeNever) isType()       {}
