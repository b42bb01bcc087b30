package ast

// Pat is a pattern node.
type Pat interface {
	Node
	isPat()
}

// PatWild is `_`.
type PatWild struct {
	Info
}

// PatIdent binds a name, optionally by reference, mutably, or with a
// subpattern: `ref mut x @ sub`.
type PatIdent struct {
	Info
	ByRef bool
	Mut   bool
	Ident Ident
	Sub   Pat
}

// PatLit matches a literal; Expr is an ExprLit or a negated one.
type PatLit struct {
	Info
	Expr Expr
}

// PatPath matches a unit struct, unit enum variant, or constant.
type PatPath struct {
	Info
	Path Path
}

// PatTuple is `(a, b, ..)`.
type PatTuple struct {
	Info
	Elems Punctuated[Pat]
}

// PatTupleStruct destructures positional fields: `Some(x)`.
type PatTupleStruct struct {
	Info
	Path  Path
	Elems Punctuated[Pat]
}

// PatStruct destructures named fields: `Point { x, y: py, .. }`.
type PatStruct struct {
	Info
	Path   Path
	Fields Punctuated[FieldPat]
	Rest   bool
}

// FieldPat is one `name: pat` entry of a struct pattern.
type FieldPat struct {
	Info
	Name      Ident
	Pat       Pat
	Shorthand bool
}

// PatRange is `lo ..= hi`.
type PatRange struct {
	Info
	Lo        Expr
	Hi        Expr
	Inclusive bool
}

// PatReference is `&pat` or `&mut pat`.
type PatReference struct {
	Info
	Mut bool
	Pat Pat
}

// PatRest is `..` inside a tuple or slice position.
type PatRest struct {
	Info
}

func (*PatWild) isPat()        {}
func (*PatIdent) isPat()       {}
func (*PatLit) isPat()         {}
func (*PatPath) isPat()        {}
func (*PatTuple) isPat()       {}
func (*PatTupleStruct) isPat() {}
func (*PatStruct) isPat()      {}
func (*PatRange) isPat()       {}
func (*PatReference) isPat()   {}
func (*PatRest) isPat()        {}
