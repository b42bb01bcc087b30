// Package token defines the lexical vocabulary shared by the lexer, the
// combinator engine, and the grammar rules: token kinds, the keyword table,
// and the Token value carrying a kind, a byte span, and the source text.
package token
