package lexer

import (
	"graft/internal/diag"
	"graft/internal/token"
)

// scanNumber recognizes 0b/0o/0x prefixed integers, decimal integers and
// floats with optional fraction and exponent, `_` digit separators, and a
// trailing identifier-shaped type suffix. Suffix spellings are not validated
// here; downstream consumers decide which ones they accept.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if err := lx.eatDigits(start, isBin, "binary"); err != nil {
				return token.Token{}, err
			}
			lx.eatSuffix()
			return lx.make(kind, start), nil
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if err := lx.eatDigits(start, isOct, "octal"); err != nil {
				return token.Token{}, err
			}
			lx.eatSuffix()
			return lx.make(kind, start), nil
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			if err := lx.eatDigits(start, isHex, "hexadecimal"); err != nil {
				return token.Token{}, err
			}
			lx.eatSuffix()
			return lx.make(kind, start), nil
		}
	}

	// Decimal integer part.
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// Fraction. A dot followed by another dot is a range operator, and a dot
	// followed by an identifier is a field access on the literal; neither
	// belongs to the number.
	if lx.cursor.Peek() == '.' {
		after := lx.cursor.PeekAt(1)
		if after != '.' && !isIdentStartByte(after) && after < utf8RuneSelf {
			kind = token.FloatLit
			lx.cursor.Bump() // '.'
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		after := lx.cursor.PeekAt(1)
		next := after
		if after == '+' || after == '-' {
			next = lx.cursor.PeekAt(2)
		}
		if isDec(next) {
			kind = token.FloatLit
			lx.cursor.Bump() // e/E
			if after == '+' || after == '-' {
				lx.cursor.Bump()
			}
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
		}
	}

	lx.eatSuffix()
	return lx.make(kind, start), nil
}

// eatDigits requires at least one digit matching valid, allowing separators.
func (lx *Lexer) eatDigits(start Mark, valid func(byte) bool, radix string) error {
	seen := false
	for {
		b := lx.cursor.Peek()
		if valid(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	if !seen {
		return errAt(diag.LexBadNumber, lx.cursor.SpanFrom(start),
			"missing digits in "+radix+" literal")
	}
	return nil
}

// eatSuffix consumes a type suffix such as u8 or f64 if one follows.
func (lx *Lexer) eatSuffix() {
	b := lx.cursor.Peek()
	if b >= utf8RuneSelf {
		return
	}
	if !isIdentStartByte(b) || b == '_' {
		return
	}
	lx.eatIdentRun()
}
