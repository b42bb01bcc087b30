package ast

// BinOp tags a binary operator application, including the compound
// assignment forms. Storing the tag (rather than a generic operator node)
// lets consumers switch exhaustively.
type BinOp uint8

const (
	OpAdd BinOp = iota // +
	OpSub              // -
	OpMul              // *
	OpDiv              // /
	OpRem              // %
	OpAnd              // &&
	OpOr               // ||
	OpBitXor           // ^
	OpBitAnd           // &
	OpBitOr            // |
	OpShl              // <<
	OpShr              // >>
	OpEq               // ==
	OpLt               // <
	OpLe               // <=
	OpNe               // !=
	OpGe               // >=
	OpGt               // >
	OpAssign           // =
	OpAddAssign        // +=
	OpSubAssign        // -=
	OpMulAssign        // *=
	OpDivAssign        // /=
	OpRemAssign        // %=
	OpBitXorAssign     // ^=
	OpBitAndAssign     // &=
	OpBitOrAssign      // |=
	OpShlAssign        // <<=
	OpShrAssign        // >>=
)

var binOpText = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpRem: "%",
	OpAnd: "&&", OpOr: "||",
	OpBitXor: "^", OpBitAnd: "&", OpBitOr: "|", OpShl: "<<", OpShr: ">>",
	OpEq: "==", OpLt: "<", OpLe: "<=", OpNe: "!=", OpGe: ">=", OpGt: ">",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=", OpMulAssign: "*=",
	OpDivAssign: "/=", OpRemAssign: "%=", OpBitXorAssign: "^=",
	OpBitAndAssign: "&=", OpBitOrAssign: "|=", OpShlAssign: "<<=", OpShrAssign: ">>=",
}

func (op BinOp) String() string {
	if int(op) < len(binOpText) {
		return binOpText[op]
	}
	return "?"
}

// IsAssign reports whether the operator is `=` or a compound assignment.
func (op BinOp) IsAssign() bool {
	return op >= OpAssign
}

// UnOp tags a unary operator application.
type UnOp uint8

const (
	OpDeref UnOp = iota // *
	OpNot               // !
	OpNeg               // -
)

func (op UnOp) String() string {
	switch op {
	case OpDeref:
		return "*"
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}
