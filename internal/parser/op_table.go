package parser

import (
	"graft/internal/ast"
	"graft/internal/token"
)

// binEntry is one row of the binary operator table: the AST tag and the
// binding strength (higher binds tighter). Assignment and range operators
// live outside the table; their associativity differs.
type binEntry struct {
	op   ast.BinOp
	prec int
}

var binOps = map[token.Kind]binEntry{
	token.OrOr:    {ast.OpOr, 1},
	token.AndAnd:  {ast.OpAnd, 2},
	token.EqEq:    {ast.OpEq, 3},
	token.BangEq:  {ast.OpNe, 3},
	token.Lt:      {ast.OpLt, 3},
	token.LtEq:    {ast.OpLe, 3},
	token.Gt:      {ast.OpGt, 3},
	token.GtEq:    {ast.OpGe, 3},
	token.Pipe:    {ast.OpBitOr, 4},
	token.Caret:   {ast.OpBitXor, 5},
	token.Amp:     {ast.OpBitAnd, 6},
	token.Shl:     {ast.OpShl, 7},
	token.Shr:     {ast.OpShr, 7},
	token.Plus:    {ast.OpAdd, 8},
	token.Minus:   {ast.OpSub, 8},
	token.Star:    {ast.OpMul, 9},
	token.Slash:   {ast.OpDiv, 9},
	token.Percent: {ast.OpRem, 9},
}

var assignOps = map[token.Kind]ast.BinOp{
	token.Assign:        ast.OpAssign,
	token.PlusAssign:    ast.OpAddAssign,
	token.MinusAssign:   ast.OpSubAssign,
	token.StarAssign:    ast.OpMulAssign,
	token.SlashAssign:   ast.OpDivAssign,
	token.PercentAssign: ast.OpRemAssign,
	token.CaretAssign:   ast.OpBitXorAssign,
	token.AmpAssign:     ast.OpBitAndAssign,
	token.PipeAssign:    ast.OpBitOrAssign,
	token.ShlAssign:     ast.OpShlAssign,
	token.ShrAssign:     ast.OpShrAssign,
}
