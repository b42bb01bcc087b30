package lexer

import (
	"graft/internal/diag"
	"graft/internal/source"
	"graft/internal/token"
)

// scanCookedString scans a plain or byte string literal with escape
// validation. The cursor sits on the opening quote; start covers any prefix.
func (lx *Lexer) scanCookedString(kind token.Kind, start Mark) (token.Token, error) {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.make(kind, start), nil
		}
		if b == '\\' {
			if err := lx.eatEscape(kind == token.ByteStrLit, true); err != nil {
				return token.Token{}, err
			}
			continue
		}
		lx.cursor.Bump()
	}
	return token.Token{}, errAt(diag.LexUnterminatedString, lx.cursor.SpanFrom(start),
		"unterminated string literal")
}

// scanCookedChar scans a character or byte literal. The cursor sits on the
// opening quote; start covers any prefix.
func (lx *Lexer) scanCookedChar(kind token.Kind, start Mark) (token.Token, error) {
	lx.cursor.Bump() // opening '\''
	switch {
	case lx.cursor.EOF():
		return token.Token{}, errAt(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start),
			"unterminated character literal")
	case lx.cursor.Peek() == '\'':
		return token.Token{}, errAt(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start),
			"empty character literal")
	case lx.cursor.Peek() == '\\':
		if err := lx.eatEscape(kind == token.ByteLit, false); err != nil {
			return token.Token{}, err
		}
	case lx.cursor.Peek() == '\n':
		return token.Token{}, errAt(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start),
			"unterminated character literal")
	default:
		lx.cursor.BumpRune()
	}
	if !lx.cursor.Eat('\'') {
		return token.Token{}, errAt(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start),
			"unterminated character literal")
	}
	return lx.make(kind, start), nil
}

// scanRawString scans r"...", r#"..."# and their byte forms. The cursor sits
// on the 'r'; start covers any prefix.
func (lx *Lexer) scanRawString(kind token.Kind, start Mark) (token.Token, error) {
	lx.cursor.Bump() // 'r'
	hashes := 0
	for lx.cursor.Peek() == '#' {
		hashes++
		lx.cursor.Bump()
	}
	lx.cursor.Bump() // opening '"', guaranteed by the caller's lookahead

	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		closed := true
		probe := lx.cursor
		for i := 0; i < hashes; i++ {
			if !probe.Eat('#') {
				closed = false
				break
			}
		}
		if closed {
			lx.cursor = probe
			return lx.make(kind, start), nil
		}
	}
	return token.Token{}, errAt(diag.LexUnterminatedString, lx.cursor.SpanFrom(start),
		"unterminated raw string literal")
}

// scanLifetimeOrChar disambiguates 'a (lifetime) from 'a' (char literal) by
// checking whether a quote closes the identifier run.
func (lx *Lexer) scanLifetimeOrChar() (token.Token, error) {
	start := lx.cursor.Mark()
	next := lx.cursor.PeekAt(1)
	if isIdentStartByte(next) || next >= utf8RuneSelf {
		n := uint32(2)
		for isIdentContinueByte(lx.cursor.PeekAt(n)) || lx.cursor.PeekAt(n) >= utf8RuneSelf {
			n++
		}
		if lx.cursor.PeekAt(n) != '\'' {
			lx.cursor.Bump() // '\''
			lx.eatIdentRun()
			return lx.make(token.Lifetime, start), nil
		}
	}
	return lx.scanCookedChar(token.CharLit, start)
}

// eatEscape validates one backslash escape at the cursor. Byte literals
// allow \xFF but no unicode escapes; char and string literals cap \x at 0x7F.
// Inside strings a backslash-newline continues the literal on the next line.
func (lx *Lexer) eatEscape(byteLit, inString bool) error {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	switch b := lx.cursor.Peek(); b {
	case 'n', 'r', 't', '0', '\\', '\'', '"':
		lx.cursor.Bump()
		return nil
	case 'x':
		lx.cursor.Bump()
		hi := lx.cursor.Peek()
		if !isHex(hi) || (!byteLit && hi > '7') {
			return lx.badEscape(escStart)
		}
		lx.cursor.Bump()
		if !isHex(lx.cursor.Peek()) {
			return lx.badEscape(escStart)
		}
		lx.cursor.Bump()
		return nil
	case 'u':
		if byteLit {
			return lx.badEscape(escStart)
		}
		lx.cursor.Bump()
		if !lx.cursor.Eat('{') {
			return lx.badEscape(escStart)
		}
		digits := 0
		for isHex(lx.cursor.Peek()) {
			digits++
			lx.cursor.Bump()
		}
		if digits == 0 || digits > 6 || !lx.cursor.Eat('}') {
			return lx.badEscape(escStart)
		}
		return nil
	case '\n', '\r':
		if !inString {
			return lx.badEscape(escStart)
		}
		for isWhitespace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return nil
	default:
		return lx.badEscape(escStart)
	}
}

func (lx *Lexer) badEscape(at Mark) error {
	sp := source.Span{File: lx.file.ID, Start: uint32(at), End: lx.cursor.Off + 1}
	if sp.End > uint32(len(lx.file.Content)) {
		sp.End = uint32(len(lx.file.Content))
	}
	return errAt(diag.LexBadEscape, sp, "invalid escape sequence")
}
