package ast

// Lit is a literal value. The closed set of subkinds mirrors the token
// level: string, byte string, character, byte, integer, float, boolean.
type Lit interface {
	Node
	isLit()
}

// LitStr is a string literal; Value holds the cooked (unescaped) text.
type LitStr struct {
	Info
	Value string
}

// LitByteStr is a byte string literal with the cooked bytes.
type LitByteStr struct {
	Info
	Value []byte
}

// LitChar is a character literal.
type LitChar struct {
	Info
	Value rune
}

// LitByte is a byte literal.
type LitByte struct {
	Info
	Value byte
}

// LitInt is an integer literal. Digits preserves the source spelling minus
// the suffix (prefix and separators included); Suffix is kept verbatim and
// validated by downstream consumers, not here.
type LitInt struct {
	Info
	Digits string
	Base   int
	Value  uint64
	Suffix string
}

// LitFloat is a floating point literal; Digits as for LitInt.
type LitFloat struct {
	Info
	Digits string
	Value  float64
	Suffix string
}

// LitBool is `true` or `false`.
type LitBool struct {
	Info
	Value bool
}

func (*LitStr) isLit()     {}
func (*LitByteStr) isLit() {}
func (*LitChar) isLit()    {}
func (*LitByte) isLit()    {}
func (*LitInt) isLit()     {}
func (*LitFloat) isLit()   {}
func (*LitBool) isLit()    {}
