package lexer

import (
	"unicode"
)

const utf8RuneSelf = 0x80

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isBin(b byte) bool { return b == '0' || b == '1' }

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
