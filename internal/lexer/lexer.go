package lexer

import (
	"graft/internal/source"
	"graft/internal/token"
)

// Lexer turns one source file into tokens. Whitespace and plain comments are
// discarded; doc comments come back as ordinary tokens. The first malformed
// construct stops the scan with an *Error.
type Lexer struct {
	file   *source.File
	cursor Cursor
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Tokenize scans the whole file. The returned stream always ends with an
// EOF token, so grammar rules can match "end of input" like any other kind.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// Next returns the next significant token, or EOF forever once exhausted.
func (lx *Lexer) Next() (token.Token, error) {
	doc, err := lx.skipTrivia()
	if err != nil {
		return token.Token{}, err
	}
	if doc != nil {
		return *doc, nil
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}, nil
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	switch {
	case ch == 'r' && lx.isRawStringStart():
		return lx.scanRawString(token.StrLit, start)

	case ch == 'b' && lx.isByteLiteralStart():
		return lx.scanByteLiteral(start)

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword(), nil

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanCookedString(token.StrLit, start)

	case ch == '\'':
		return lx.scanLifetimeOrChar()

	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) make(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// isRawStringStart reports whether the cursor sits on r"..." or r#"..."#
// rather than a raw identifier like r#type.
func (lx *Lexer) isRawStringStart() bool {
	n := uint32(1)
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	return lx.cursor.PeekAt(n) == '"'
}

// isByteLiteralStart reports whether the cursor sits on b'..', b".." or br"..".
func (lx *Lexer) isByteLiteralStart() bool {
	next := lx.cursor.PeekAt(1)
	if next == '\'' || next == '"' {
		return true
	}
	if next != 'r' {
		return false
	}
	n := uint32(2)
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	return lx.cursor.PeekAt(n) == '"'
}

func (lx *Lexer) scanByteLiteral(start Mark) (token.Token, error) {
	lx.cursor.Bump() // 'b'
	switch lx.cursor.Peek() {
	case '\'':
		return lx.scanCookedChar(token.ByteLit, start)
	case 'r':
		return lx.scanRawString(token.ByteStrLit, start)
	default:
		return lx.scanCookedString(token.ByteStrLit, start)
	}
}
