package ast

// Block is a brace-delimited statement sequence.
type Block struct {
	Info
	Stmts []Stmt
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	isStmt()
}

// StmtLet is a `let pat: ty = init;` binding.
type StmtLet struct {
	Info
	Attrs []Attr
	Pat   Pat
	Ty    Type
	Init  Expr
}

// StmtItem is an item declared inside a block.
type StmtItem struct {
	Info
	Item Item
}

// StmtExpr is an expression statement; Semi records whether a semicolon
// terminated it, which decides whether a block has a tail value.
type StmtExpr struct {
	Info
	Attrs []Attr
	Expr  Expr
	Semi  bool
}

func (*StmtLet) isStmt()  {}
func (*StmtItem) isStmt() {}
func (*StmtExpr) isStmt() {}
