package printer

import (
	"graft/internal/ast"
)

func (p *printer) printExpr(e ast.Expr) {
	switch ex := e.(type) {
	case *ast.ExprLit:
		p.printLit(ex.Lit)
	case *ast.ExprPath:
		p.printPath(&ex.Path)
	case *ast.ExprUnary:
		switch ex.Op {
		case ast.OpDeref:
			p.writer.WriteString("*")
		case ast.OpNot:
			p.writer.WriteString("!")
		case ast.OpNeg:
			p.writer.WriteString("-")
		}
		p.printExpr(ex.Expr)
	case *ast.ExprBinary:
		p.printExpr(ex.Left)
		p.writer.WriteString(" " + ex.Op.String() + " ")
		p.printExpr(ex.Right)
	case *ast.ExprCall:
		p.printExpr(ex.Func)
		p.writer.WriteString("(")
		p.printExprList(&ex.Args)
		p.writer.WriteString(")")
	case *ast.ExprMethodCall:
		p.printExpr(ex.Recv)
		p.writer.WriteString(".")
		p.printIdent(ex.Method)
		if ex.Turbofish != nil {
			p.printGenericArgs(ex.Turbofish)
		}
		p.writer.WriteString("(")
		p.printExprList(&ex.Args)
		p.writer.WriteString(")")
	case *ast.ExprField:
		p.printExpr(ex.Base)
		p.writer.WriteString(".")
		p.printIdent(ex.Member)
	case *ast.ExprIndex:
		p.printExpr(ex.Base)
		p.writer.WriteString("[")
		p.printExpr(ex.Index)
		p.writer.WriteString("]")
	case *ast.ExprTuple:
		p.writer.WriteString("(")
		p.printExprList(&ex.Elems)
		if ex.Elems.Len() == 1 {
			p.writer.WriteString(",")
		}
		p.writer.WriteString(")")
	case *ast.ExprParen:
		p.writer.WriteString("(")
		p.printExpr(ex.Expr)
		p.writer.WriteString(")")
	case *ast.ExprArray:
		p.writer.WriteString("[")
		p.printExprList(&ex.Elems)
		p.writer.WriteString("]")
	case *ast.ExprRepeat:
		p.writer.WriteString("[")
		p.printExpr(ex.Elem)
		p.writer.WriteString("; ")
		p.printExpr(ex.Len)
		p.writer.WriteString("]")
	case *ast.ExprIf:
		p.printIf(ex)
	case *ast.ExprMatch:
		p.printMatch(ex)
	case *ast.ExprWhile:
		p.printLabel(ex.Label)
		p.writer.WriteString("while ")
		p.printExpr(ex.Cond)
		p.writer.WriteString(" ")
		p.printBlock(ex.Body)
	case *ast.ExprLoop:
		p.printLabel(ex.Label)
		p.writer.WriteString("loop ")
		p.printBlock(ex.Body)
	case *ast.ExprForLoop:
		p.printLabel(ex.Label)
		p.writer.WriteString("for ")
		p.printPat(ex.Pat)
		p.writer.WriteString(" in ")
		p.printExpr(ex.Iter)
		p.writer.WriteString(" ")
		p.printBlock(ex.Body)
	case *ast.ExprBlock:
		p.printBlock(ex.Block)
	case *ast.ExprClosure:
		if ex.Move {
			p.writer.WriteString("move ")
		}
		p.writer.WriteString("|")
		for i := 0; i < ex.Inputs.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			arg := ex.Inputs.At(i)
			p.printPat(arg.Pat)
			if arg.Ty != nil {
				p.writer.WriteString(": ")
				p.printType(arg.Ty)
			}
		}
		p.writer.WriteString("|")
		if ex.Output != nil {
			p.writer.WriteString(" -> ")
			p.printType(ex.Output)
		}
		p.writer.WriteString(" ")
		p.printExpr(ex.Body)
	case *ast.ExprReference:
		p.writer.WriteString("&")
		if ex.Mut {
			p.writer.WriteString("mut ")
		}
		p.printExpr(ex.Expr)
	case *ast.ExprCast:
		p.printExpr(ex.Expr)
		p.writer.WriteString(" as ")
		p.printType(ex.Ty)
	case *ast.ExprRange:
		if ex.From != nil {
			p.printExpr(ex.From)
		}
		if ex.Inclusive {
			p.writer.WriteString("..=")
		} else {
			p.writer.WriteString("..")
		}
		if ex.To != nil {
			p.printExpr(ex.To)
		}
	case *ast.ExprReturn:
		p.writer.WriteString("return")
		if ex.Expr != nil {
			p.writer.WriteString(" ")
			p.printExpr(ex.Expr)
		}
	case *ast.ExprBreak:
		p.writer.WriteString("break")
		if ex.Label != nil {
			p.writer.WriteString(" ")
			p.printLifetime(*ex.Label)
		}
		if ex.Expr != nil {
			p.writer.WriteString(" ")
			p.printExpr(ex.Expr)
		}
	case *ast.ExprContinue:
		p.writer.WriteString("continue")
		if ex.Label != nil {
			p.writer.WriteString(" ")
			p.printLifetime(*ex.Label)
		}
	case *ast.ExprStruct:
		p.printPath(&ex.Path)
		p.writer.WriteString(" { ")
		for i := 0; i < ex.Fields.Len(); i++ {
			if i > 0 {
				p.writer.WriteString(", ")
			}
			fv := ex.Fields.At(i)
			if fv.Shorthand {
				p.printIdent(fv.Name)
			} else {
				p.printIdent(fv.Name)
				p.writer.WriteString(": ")
				p.printExpr(fv.Value)
			}
		}
		if ex.Rest != nil {
			if ex.Fields.Len() > 0 {
				p.writer.WriteString(", ")
			}
			p.writer.WriteString("..")
			p.printExpr(ex.Rest)
		}
		p.writer.WriteString(" }")
	case *ast.ExprMacro:
		p.printMacro(&ex.Mac, nil)
	case *ast.ExprTry:
		p.printExpr(ex.Expr)
		p.writer.WriteString("?")
	}
}

func (p *printer) printExprList(args *ast.Punctuated[ast.Expr]) {
	for i := 0; i < args.Len(); i++ {
		if i > 0 {
			p.writer.WriteString(", ")
		}
		p.printExpr(args.At(i))
	}
}

func (p *printer) printLabel(label *ast.Lifetime) {
	if label != nil {
		p.printLifetime(*label)
		p.writer.WriteString(": ")
	}
}

func (p *printer) printIf(ex *ast.ExprIf) {
	p.writer.WriteString("if ")
	p.printCond(ex.Cond)
	p.writer.WriteString(" ")
	p.printBlock(ex.Then)
	if ex.Else != nil {
		p.writer.WriteString(" else ")
		p.printExpr(ex.Else)
	}
}

// printCond renders a loop or if condition; struct literals are illegal
// there, so a bare struct literal head gets parenthesized.
func (p *printer) printCond(e ast.Expr) {
	if needsCondParens(e) {
		p.writer.WriteString("(")
		p.printExpr(e)
		p.writer.WriteString(")")
		return
	}
	p.printExpr(e)
}

// needsCondParens reports whether the leftmost leaf of e is a struct
// literal, which the grammar forbids in condition position.
func needsCondParens(e ast.Expr) bool {
	for {
		switch ex := e.(type) {
		case *ast.ExprStruct:
			return true
		case *ast.ExprBinary:
			e = ex.Left
		case *ast.ExprCast:
			e = ex.Expr
		case *ast.ExprCall:
			e = ex.Func
		case *ast.ExprMethodCall:
			e = ex.Recv
		case *ast.ExprField:
			e = ex.Base
		case *ast.ExprIndex:
			e = ex.Base
		case *ast.ExprTry:
			e = ex.Expr
		case *ast.ExprRange:
			if ex.From == nil {
				return false
			}
			e = ex.From
		default:
			return false
		}
	}
}

func (p *printer) printMatch(ex *ast.ExprMatch) {
	p.writer.WriteString("match ")
	p.printCond(ex.Expr)
	p.writer.WriteString(" {")
	p.writer.Newline()
	p.writer.IndentPush()
	for i := range ex.Arms {
		arm := &ex.Arms[i]
		p.printPat(arm.Pat)
		if arm.Guard != nil {
			p.writer.WriteString(" if ")
			p.printExpr(arm.Guard)
		}
		p.writer.WriteString(" => ")
		p.printExpr(arm.Body)
		p.writer.WriteString(",")
		p.writer.Newline()
	}
	p.writer.IndentPop()
	p.writer.WriteString("}")
}

func (p *printer) printBlock(b *ast.Block) {
	if b == nil || len(b.Stmts) == 0 {
		p.writer.WriteString("{}")
		return
	}
	p.writer.WriteString("{")
	p.writer.Newline()
	p.writer.IndentPush()
	for _, s := range b.Stmts {
		p.printStmt(s)
		p.writer.Newline()
	}
	p.writer.IndentPop()
	p.writer.WriteString("}")
}

func (p *printer) printStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.StmtLet:
		p.printAttrs(st.Attrs)
		p.writer.WriteString("let ")
		p.printPat(st.Pat)
		if st.Ty != nil {
			p.writer.WriteString(": ")
			p.printType(st.Ty)
		}
		if st.Init != nil {
			p.writer.WriteString(" = ")
			p.printExpr(st.Init)
		}
		p.writer.WriteString(";")
	case *ast.StmtItem:
		p.printItem(st.Item)
	case *ast.StmtExpr:
		p.printAttrs(st.Attrs)
		p.printExpr(st.Expr)
		if st.Semi {
			p.writer.WriteString(";")
		}
	}
}
