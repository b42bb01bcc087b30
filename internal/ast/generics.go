package ast

// Generics collects the parameter lists and where clause an item declares.
// Lifetimes and type parameters keep their declaration order.
type Generics struct {
	Info
	Lifetimes  []LifetimeDef
	TypeParams []TypeParam
	Where      []WherePredicate
}

// Empty reports whether the item declares no generics at all.
func (g *Generics) Empty() bool {
	return len(g.Lifetimes) == 0 && len(g.TypeParams) == 0 && len(g.Where) == 0
}

// LifetimeDef is a declared lifetime parameter with optional outlives
// bounds: `'a: 'b + 'c`.
type LifetimeDef struct {
	Info
	Lifetime Lifetime
	Bounds   []Lifetime
}

// TypeParam is a declared type parameter: `T: Bound = Default`.
type TypeParam struct {
	Info
	Ident   Ident
	Bounds  []TypeParamBound
	Default Type
}

// TypeParamBound is one bound: a trait or a lifetime.
type TypeParamBound interface {
	Node
	isTypeParamBound()
}

// BoundTrait is a trait bound; Maybe marks the relaxed `?Sized` form.
type BoundTrait struct {
	Info
	Maybe bool
	Path  Path
}

// BoundLifetime is a lifetime bound.
type BoundLifetime struct {
	Info
	Lifetime Lifetime
}

func (*BoundTrait) isTypeParamBound()    {}
func (*BoundLifetime) isTypeParamBound() {}

// WherePredicate is one clause of `where ...`.
type WherePredicate interface {
	Node
	isWherePredicate()
}

// PredType bounds a type: `where T: Clone + Send`.
type PredType struct {
	Info
	Ty     Type
	Bounds []TypeParamBound
}

// PredLifetime bounds a lifetime: `where 'a: 'b`.
type PredLifetime struct {
	Info
	Lifetime Lifetime
	Bounds   []Lifetime
}

func (*PredType) isWherePredicate()     {}
func (*PredLifetime) isWherePredicate() {}
