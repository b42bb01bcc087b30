package printer

import (
	"fmt"
	"strings"
	"unicode"

	"graft/internal/ast"
)

func (p *printer) printLit(l ast.Lit) {
	switch lit := l.(type) {
	case *ast.LitStr:
		p.writer.WriteString(quoteStr(lit.Value))
	case *ast.LitByteStr:
		p.writer.WriteString(quoteByteStr(lit.Value))
	case *ast.LitChar:
		p.writer.WriteString("'" + escapeRune(lit.Value, '\'') + "'")
	case *ast.LitByte:
		p.writer.WriteString("b'" + escapeByte(lit.Value, '\'') + "'")
	case *ast.LitInt:
		p.writer.WriteString(lit.Digits + lit.Suffix)
	case *ast.LitFloat:
		p.writer.WriteString(lit.Digits + lit.Suffix)
	case *ast.LitBool:
		if lit.Value {
			p.writer.WriteString("true")
		} else {
			p.writer.WriteString("false")
		}
	}
}

func quoteStr(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		b.WriteString(escapeRune(r, '"'))
	}
	b.WriteByte('"')
	return b.String()
}

func quoteByteStr(bs []byte) string {
	var b strings.Builder
	b.WriteString(`b"`)
	for _, c := range bs {
		b.WriteString(escapeByte(c, '"'))
	}
	b.WriteByte('"')
	return b.String()
}

func escapeRune(r rune, quote rune) string {
	switch r {
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	case quote:
		return `\` + string(quote)
	}
	if r < 0x20 || r == 0x7f {
		return fmt.Sprintf(`\x%02x`, r)
	}
	if !unicode.IsPrint(r) {
		return fmt.Sprintf(`\u{%x}`, r)
	}
	return string(r)
}

func escapeByte(c byte, quote byte) string {
	switch c {
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	case quote:
		return `\` + string(quote)
	}
	if c < 0x20 || c >= 0x7f {
		return fmt.Sprintf(`\x%02x`, c)
	}
	return string(c)
}
