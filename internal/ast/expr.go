package ast

// Expr is an expression node. The set of variants is closed; downstream
// switches over it are expected to be exhaustive.
type Expr interface {
	Node
	isExpr()
}

// ExprLit is a literal in expression position.
type ExprLit struct {
	Info
	Lit Lit
}

// ExprPath is a (possibly qualified) path used as a value.
type ExprPath struct {
	Info
	Path Path
}

// ExprUnary is a prefix operator application.
type ExprUnary struct {
	Info
	Op   UnOp
	Expr Expr
}

// ExprBinary is a binary operator application, assignments included.
type ExprBinary struct {
	Info
	Op    BinOp
	Left  Expr
	Right Expr
}

// ExprCall is a function call `f(a, b)`.
type ExprCall struct {
	Info
	Func Expr
	Args Punctuated[Expr]
}

// ExprMethodCall is `recv.method::<T>(args)`.
type ExprMethodCall struct {
	Info
	Recv      Expr
	Method    Ident
	Turbofish *GenericArgs
	Args      Punctuated[Expr]
}

// ExprField is a field access; tuple indices appear as numeric Member names.
type ExprField struct {
	Info
	Base   Expr
	Member Ident
}

// ExprIndex is `base[index]`.
type ExprIndex struct {
	Info
	Base  Expr
	Index Expr
}

// ExprTuple is `(a, b)`. A one-element tuple keeps its trailing comma;
// without one the parser produces ExprParen instead.
type ExprTuple struct {
	Info
	Elems Punctuated[Expr]
}

// ExprArray is `[a, b, c]`.
type ExprArray struct {
	Info
	Elems Punctuated[Expr]
}

// ExprRepeat is `[elem; len]`.
type ExprRepeat struct {
	Info
	Elem Expr
	Len  Expr
}

// ExprIf is a conditional; Else is nil, an *ExprBlock, or another *ExprIf.
type ExprIf struct {
	Info
	Cond Expr
	Then *Block
	Else Expr
}

// ExprMatch is a pattern match.
type ExprMatch struct {
	Info
	Expr Expr
	Arms []MatchArm
}

// MatchArm is one `pat (if guard)? => body` arm.
type MatchArm struct {
	Info
	Pat   Pat
	Guard Expr
	Body  Expr
}

// ExprWhile is a while loop with an optional label.
type ExprWhile struct {
	Info
	Label *Lifetime
	Cond  Expr
	Body  *Block
}

// ExprLoop is an unconditional loop with an optional label.
type ExprLoop struct {
	Info
	Label *Lifetime
	Body  *Block
}

// ExprForLoop is `for pat in iter { ... }` with an optional label.
type ExprForLoop struct {
	Info
	Label *Lifetime
	Pat   Pat
	Iter  Expr
	Body  *Block
}

// ExprBlock is a block in expression position.
type ExprBlock struct {
	Info
	Block *Block
}

// ExprClosure is `move |args| -> T expr`.
type ExprClosure struct {
	Info
	Move   bool
	Inputs Punctuated[ClosureArg]
	Output Type
	Body   Expr
}

// ClosureArg is one closure parameter with an optional type ascription.
type ClosureArg struct {
	Info
	Pat Pat
	Ty  Type
}

// ExprReference is `&expr` or `&mut expr`.
type ExprReference struct {
	Info
	Mut  bool
	Expr Expr
}

// ExprCast is `expr as T`.
type ExprCast struct {
	Info
	Expr Expr
	Ty   Type
}

// ExprRange is `from .. to` with either end optional; Inclusive marks `..=`.
type ExprRange struct {
	Info
	From      Expr
	To        Expr
	Inclusive bool
}

// ExprReturn is `return expr?`.
type ExprReturn struct {
	Info
	Expr Expr
}

// ExprBreak is `break 'label expr?`.
type ExprBreak struct {
	Info
	Label *Lifetime
	Expr  Expr
}

// ExprContinue is `continue 'label?`.
type ExprContinue struct {
	Info
	Label *Lifetime
}

// ExprStruct is a struct literal `Path { field: value, ..rest }`.
type ExprStruct struct {
	Info
	Path   Path
	Fields Punctuated[FieldValue]
	Rest   Expr
}

// FieldValue is one `name: value` entry of a struct literal.
type FieldValue struct {
	Info
	Name      Ident
	Value     Expr
	Shorthand bool
}

// ExprParen is a parenthesized expression.
type ExprParen struct {
	Info
	Expr Expr
}

// ExprMacro is a macro invocation in expression position.
type ExprMacro struct {
	Info
	Mac Macro
}

// ExprTry is the postfix `expr?`.
type ExprTry struct {
	Info
	Expr Expr
}

func (*ExprLit) isExpr()        {}
func (*ExprPath) isExpr()       {}
func (*ExprUnary) isExpr()      {}
func (*ExprBinary) isExpr()     {}
func (*ExprCall) isExpr()       {}
func (*ExprMethodCall) isExpr() {}
func (*ExprField) isExpr()      {}
func (*ExprIndex) isExpr()      {}
func (*ExprTuple) isExpr()      {}
func (*ExprArray) isExpr()      {}
func (*ExprRepeat) isExpr()     {}
func (*ExprIf) isExpr()         {}
func (*ExprMatch) isExpr()      {}
func (*ExprWhile) isExpr()      {}
func (*ExprLoop) isExpr()       {}
func (*ExprForLoop) isExpr()    {}
func (*ExprBlock) isExpr()      {}
func (*ExprClosure) isExpr()    {}
func (*ExprReference) isExpr()  {}
func (*ExprCast) isExpr()       {}
func (*ExprRange) isExpr()      {}
func (*ExprReturn) isExpr()     {}
func (*ExprBreak) isExpr()      {}
func (*ExprContinue) isExpr()   {}
func (*ExprStruct) isExpr()     {}
func (*ExprParen) isExpr()      {}
func (*ExprMacro) isExpr()      {}
func (*ExprTry) isExpr()        {}
