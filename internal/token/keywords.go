package token

var keywords = map[string]Kind{
	"as":       KwAs,
	"break":    KwBreak,
	"const":    KwConst,
	"continue": KwContinue,
	"crate":    KwCrate,
	"dyn":      KwDyn,
	"else":     KwElse,
	"enum":     KwEnum,
	"extern":   KwExtern,
	"false":    KwFalse,
	"fn":       KwFn,
	"for":      KwFor,
	"if":       KwIf,
	"impl":     KwImpl,
	"in":       KwIn,
	"let":      KwLet,
	"loop":     KwLoop,
	"match":    KwMatch,
	"mod":      KwMod,
	"move":     KwMove,
	"mut":      KwMut,
	"pub":      KwPub,
	"ref":      KwRef,
	"return":   KwReturn,
	"self":     KwSelfValue,
	"Self":     KwSelfType,
	"static":   KwStatic,
	"struct":   KwStruct,
	"super":    KwSuper,
	"trait":    KwTrait,
	"true":     KwTrue,
	"type":     KwType,
	"unsafe":   KwUnsafe,
	"use":      KwUse,
	"where":    KwWhere,
	"while":    KwWhile,
}

var keywordNames = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for name, kind := range keywords {
		m[kind] = name
	}
	return m
}()

// LookupKeyword reports whether ident spells a keyword. Keywords are case
// sensitive; `Self` and `self` are distinct kinds.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// KeywordName returns the source spelling of a keyword kind.
func KeywordName(k Kind) (string, bool) {
	name, ok := keywordNames[k]
	return name, ok
}
