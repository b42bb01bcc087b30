package lexer

import (
	"graft/internal/diag"
	"graft/internal/token"
)

// skipTrivia consumes whitespace and plain comments. When it runs into a doc
// comment it returns that as a token instead of discarding it; the grammar
// attaches doc comments to the construct that follows (or, for inner docs,
// to the enclosing one). An unterminated block comment is a hard error whose
// span starts at the opening "/*".
func (lx *Lexer) skipTrivia() (*token.Token, error) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if isWhitespace(b) {
			lx.cursor.Bump()
			continue
		}

		// A shebang line is only recognized at the very start of the buffer
		// and must not look like an inner attribute `#![...]`.
		if b == '#' && lx.cursor.Off == 0 && lx.cursor.PeekAt(1) == '!' && lx.cursor.PeekAt(2) != '[' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}

		if b != '/' {
			return nil, nil
		}

		switch lx.cursor.PeekAt(1) {
		case '/':
			doc := lx.scanLineComment()
			if doc != nil {
				return doc, nil
			}
		case '*':
			doc, err := lx.scanBlockComment()
			if err != nil {
				return nil, err
			}
			if doc != nil {
				return doc, nil
			}
		default:
			return nil, nil
		}
	}
	return nil, nil
}

// scanLineComment consumes "//..." up to the newline. It returns a token for
// doc forms: "///" (outer) and "//!" (inner). Four or more slashes are a
// plain comment, matching the source language's rules.
func (lx *Lexer) scanLineComment() *token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '/'

	isDoc := false
	switch lx.cursor.Peek() {
	case '/':
		isDoc = lx.cursor.PeekAt(1) != '/'
	case '!':
		isDoc = true
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if !isDoc {
		return nil
	}
	tok := lx.make(token.DocComment, start)
	return &tok
}

// scanBlockComment consumes "/* ... */" with nesting. Doc forms "/** */" and
// "/*! */" come back as tokens.
func (lx *Lexer) scanBlockComment() (*token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	isDoc := false
	switch lx.cursor.Peek() {
	case '*':
		// "/**/" is empty and plain; "/***" is decoration, also plain.
		isDoc = lx.cursor.PeekAt(1) != '/' && lx.cursor.PeekAt(1) != '*'
	case '!':
		isDoc = true
	}

	depth := 1
	for !lx.cursor.EOF() {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && b1 == '*' {
			depth++
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if ok && b0 == '*' && b1 == '/' {
			depth--
			lx.cursor.Bump()
			lx.cursor.Bump()
			if depth == 0 {
				if !isDoc {
					return nil, nil
				}
				tok := lx.make(token.DocComment, start)
				return &tok, nil
			}
			continue
		}
		lx.cursor.Bump()
	}
	return nil, errAt(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated block comment")
}
