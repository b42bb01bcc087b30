package lexer

import (
	"graft/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies keywords. The raw
// prefix `r#` escapes a keyword spelling back into an identifier; Token.Text
// keeps the prefix, Token.IdentName strips it.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	raw := false
	if lx.cursor.Peek() == 'r' && lx.cursor.PeekAt(1) == '#' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		raw = true
	}

	lx.eatIdentRun()

	tok := lx.make(token.Ident, start)
	if raw {
		return tok
	}
	if len(tok.Text) == 1 && tok.Text[0] == '_' {
		tok.Kind = token.Underscore
		return tok
	}
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// eatIdentRun consumes one maximal identifier run at the cursor.
func (lx *Lexer) eatIdentRun() {
	first := true
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if first && !isIdentStartByte(b) {
				return
			}
			if !first && !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
		} else {
			r, size := lx.cursor.PeekRune()
			if size == 0 {
				return
			}
			if first && !isIdentStartRune(r) {
				return
			}
			if !first && !isIdentContinueRune(r) {
				return
			}
			lx.cursor.BumpRune()
		}
		first = false
	}
}
