package ast

// Path is a possibly-qualified reference like `std::collections::HashMap`.
// Global marks a leading `::`.
type Path struct {
	Info
	Global   bool
	Segments Punctuated[PathSegment]
}

// IsIdent reports whether the path is a bare, unparameterized identifier.
func (p *Path) IsIdent() bool {
	return !p.Global && p.Segments.Len() == 1 && p.Segments.At(0).Args == nil
}

// PathSegment is one `ident` or `ident<args>` step of a path.
type PathSegment struct {
	Info
	Ident Ident
	Args  *GenericArgs
}

// GenericArgs is an angle-bracketed argument list. Turbofish records the
// `::<` spelling required in expression position.
type GenericArgs struct {
	Info
	Turbofish bool
	Args      Punctuated[GenericArg]
}

// GenericArg is one entry of a generic argument list.
type GenericArg interface {
	Node
	isGenericArg()
}

// GenericArgLifetime is a lifetime argument.
type GenericArgLifetime struct {
	Info
	Lifetime Lifetime
}

// GenericArgType is a type argument.
type GenericArgType struct {
	Info
	Ty Type
}

// GenericArgBinding is an associated type binding like `Item = u8`.
type GenericArgBinding struct {
	Info
	Ident Ident
	Ty    Type
}

func (*GenericArgLifetime) isGenericArg() {}
func (*GenericArgType) isGenericArg()     {}
func (*GenericArgBinding) isGenericArg()  {}
