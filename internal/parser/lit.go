package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"graft/internal/ast"
	"graft/internal/token"
)

// cookLit converts a literal token to its AST value: escape sequences
// decoded, numeric prefixes and separators resolved, suffixes split off.
// The lexer already validated the shapes, so the decoders here assume
// well-formed input and only overflow can fail.
func cookLit(tok token.Token) (ast.Lit, error) {
	switch tok.Kind {
	case token.StrLit:
		l := &ast.LitStr{Value: cookStringText(tok.Text)}
		l.Span = tok.Span
		return l, nil
	case token.ByteStrLit:
		l := &ast.LitByteStr{Value: cookByteStringText(tok.Text)}
		l.Span = tok.Span
		return l, nil
	case token.CharLit:
		body := tok.Text[1 : len(tok.Text)-1]
		r, _ := cookChar(body, false)
		l := &ast.LitChar{Value: r}
		l.Span = tok.Span
		return l, nil
	case token.ByteLit:
		body := tok.Text[2 : len(tok.Text)-1]
		r, _ := cookChar(body, true)
		l := &ast.LitByte{Value: byte(r)}
		l.Span = tok.Span
		return l, nil
	case token.IntLit:
		return cookInt(tok)
	case token.FloatLit:
		return cookFloat(tok)
	case token.KwTrue:
		l := &ast.LitBool{Value: true}
		l.Span = tok.Span
		return l, nil
	case token.KwFalse:
		l := &ast.LitBool{Value: false}
		l.Span = tok.Span
		return l, nil
	default:
		return nil, fmt.Errorf("token %s is not a literal", tok.Kind)
	}
}

// cookStringText decodes a full string literal, raw or cooked, quotes and
// prefix included.
func cookStringText(text string) string {
	if text[0] == 'r' {
		return rawBody(text[1:])
	}
	return string(cookBytes(text[1:len(text)-1], false))
}

func cookByteStringText(text string) []byte {
	if text[1] == 'r' { // br"..."
		return []byte(rawBody(text[2:]))
	}
	return cookBytes(text[2:len(text)-1], true)
}

// rawBody strips `#*"..."#*` down to the body.
func rawBody(text string) string {
	hashes := 0
	for text[hashes] == '#' {
		hashes++
	}
	return text[hashes+1 : len(text)-1-hashes]
}

// cookBytes decodes the escapes of a cooked string body. In byte mode the
// result is raw bytes; otherwise escapes decode to UTF-8.
func cookBytes(body string, byteMode bool) []byte {
	var out []byte
	for i := 0; i < len(body); {
		ch := body[i]
		if ch != '\\' {
			out = append(out, ch)
			i++
			continue
		}
		esc := body[i+1]
		i += 2
		switch esc {
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '0':
			out = append(out, 0)
		case '\\':
			out = append(out, '\\')
		case '\'':
			out = append(out, '\'')
		case '"':
			out = append(out, '"')
		case 'x':
			v, _ := strconv.ParseUint(body[i:i+2], 16, 8)
			out = append(out, byte(v))
			i += 2
		case 'u':
			end := strings.IndexByte(body[i:], '}') + i
			v, _ := strconv.ParseUint(body[i+1:end], 16, 32)
			out = utf8.AppendRune(out, rune(v))
			i = end + 1
		case '\n':
			// Line continuation: the backslash-newline pair and the
			// following indentation vanish from the value.
			for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\n' || body[i] == '\r') {
				i++
			}
		default:
			if byteMode {
				out = append(out, esc)
			}
		}
	}
	return out
}

// cookChar decodes a char or byte literal body (quotes stripped).
func cookChar(body string, byteMode bool) (rune, int) {
	if body[0] != '\\' {
		if byteMode {
			return rune(body[0]), 1
		}
		r, size := utf8.DecodeRuneInString(body)
		return r, size
	}
	switch body[1] {
	case 'n':
		return '\n', 2
	case 'r':
		return '\r', 2
	case 't':
		return '\t', 2
	case '0':
		return 0, 2
	case '\\':
		return '\\', 2
	case '\'':
		return '\'', 2
	case '"':
		return '"', 2
	case 'x':
		v, _ := strconv.ParseUint(body[2:4], 16, 8)
		return rune(v), 4
	case 'u':
		end := strings.IndexByte(body, '}')
		v, _ := strconv.ParseUint(body[3:end], 16, 32)
		return rune(v), end + 1
	default:
		return rune(body[1]), 2
	}
}

func cookInt(tok token.Token) (ast.Lit, error) {
	text := tok.Text
	base := 10
	digits := text
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'b', 'B':
			base, digits = 2, text[2:]
		case 'o', 'O':
			base, digits = 8, text[2:]
		case 'x', 'X':
			base, digits = 16, text[2:]
		}
	}
	// The suffix begins at the first character that is not a digit of the
	// base or a separator. Hex needs care: a suffix cannot start with a
	// hex digit, so for base 16 the whole run is digits.
	cut := len(digits)
	for i := 0; i < len(digits); i++ {
		if !isDigitOf(digits[i], base) && digits[i] != '_' {
			cut = i
			break
		}
	}
	suffix := digits[cut:]
	digits = digits[:cut]

	clean := strings.ReplaceAll(digits, "_", "")
	value, err := strconv.ParseUint(clean, base, 64)
	if err != nil {
		return nil, fmt.Errorf("integer literal %q out of range", text)
	}
	l := &ast.LitInt{
		Digits: text[:len(text)-len(suffix)],
		Base:   base,
		Value:  value,
		Suffix: suffix,
	}
	l.Span = tok.Span
	return l, nil
}

func isDigitOf(ch byte, base int) bool {
	switch base {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return ch >= '0' && ch <= '7'
	case 16:
		return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
	default:
		return ch >= '0' && ch <= '9'
	}
}

func cookFloat(tok token.Token) (ast.Lit, error) {
	text := tok.Text
	// Walk the numeric part: digits, one dot, one exponent. Whatever
	// follows is the suffix.
	i := 0
	for i < len(text) && (isDigitOf(text[i], 10) || text[i] == '_') {
		i++
	}
	if i < len(text) && text[i] == '.' {
		i++
		for i < len(text) && (isDigitOf(text[i], 10) || text[i] == '_') {
			i++
		}
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && isDigitOf(text[j], 10) {
			for j < len(text) && (isDigitOf(text[j], 10) || text[j] == '_') {
				j++
			}
			i = j
		}
	}
	digits := text[:i]
	suffix := text[i:]

	clean := strings.ReplaceAll(digits, "_", "")
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil, fmt.Errorf("float literal %q out of range", text)
	}
	l := &ast.LitFloat{Digits: digits, Value: value, Suffix: suffix}
	l.Span = tok.Span
	return l, nil
}
