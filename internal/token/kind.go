package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier, including raw identifiers (`r#type`).
	Ident
	// Lifetime represents a lifetime marker such as `'a`.
	Lifetime
	// DocComment represents an outer (`///`, `/** */`) or inner (`//!`,
	// `/*! */`) documentation comment.
	DocComment

	// IntLit represents an integer literal in any radix.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StrLit represents a string literal, cooked or raw.
	StrLit
	// ByteStrLit represents a byte string literal, cooked or raw.
	ByteStrLit
	// CharLit represents a character literal.
	CharLit
	// ByteLit represents a byte literal.
	ByteLit

	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwCrate represents the 'crate' keyword.
	KwCrate // crate
	// KwDyn represents the 'dyn' keyword.
	KwDyn // dyn
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwMove represents the 'move' keyword.
	KwMove // move
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwRef represents the 'ref' keyword.
	KwRef // ref
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSelfValue represents the 'self' keyword.
	KwSelfValue // self
	// KwSelfType represents the 'Self' keyword.
	KwSelfType // Self
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwType represents the 'type' keyword.
	KwType // type
	// KwUnsafe represents the 'unsafe' keyword.
	KwUnsafe // unsafe
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwWhere represents the 'where' keyword.
	KwWhere // where
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	// Plus represents the '+' token.
	Plus // +
	// PlusAssign represents the '+=' token.
	PlusAssign // +=
	// Minus represents the '-' token.
	Minus // -
	// MinusAssign represents the '-=' token.
	MinusAssign // -=
	// Star represents the '*' token.
	Star // *
	// StarAssign represents the '*=' token.
	StarAssign // *=
	// Slash represents the '/' token.
	Slash // /
	// SlashAssign represents the '/=' token.
	SlashAssign // /=
	// Percent represents the '%' token.
	Percent // %
	// PercentAssign represents the '%=' token.
	PercentAssign // %=
	// Caret represents the '^' token.
	Caret // ^
	// CaretAssign represents the '^=' token.
	CaretAssign // ^=
	// Bang represents the '!' token.
	Bang // !
	// BangEq represents the '!=' token.
	BangEq // !=
	// Amp represents the '&' token.
	Amp // &
	// AmpAssign represents the '&=' token.
	AmpAssign // &=
	// AndAnd represents the '&&' token.
	AndAnd // &&
	// Pipe represents the '|' token.
	Pipe // |
	// PipeAssign represents the '|=' token.
	PipeAssign // |=
	// OrOr represents the '||' token.
	OrOr // ||
	// Shl represents the '<<' token.
	Shl // <<
	// ShlAssign represents the '<<=' token.
	ShlAssign // <<=
	// Shr represents the '>>' token.
	Shr // >>
	// ShrAssign represents the '>>=' token.
	ShrAssign // >>=
	// Assign represents the '=' token.
	Assign // =
	// EqEq represents the '==' token.
	EqEq // ==
	// FatArrow represents the '=>' token.
	FatArrow // =>
	// Lt represents the '<' token.
	Lt // <
	// LtEq represents the '<=' token.
	LtEq // <=
	// Gt represents the '>' token.
	Gt // >
	// GtEq represents the '>=' token.
	GtEq // >=
	// Arrow represents the '->' token.
	Arrow // ->
	// Dot represents the '.' token.
	Dot // .
	// DotDot represents the '..' token.
	DotDot // ..
	// DotDotEq represents the '..=' token.
	DotDotEq // ..=
	// DotDotDot represents the '...' token.
	DotDotDot // ...
	// Comma represents the ',' token.
	Comma // ,
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Colon represents the ':' token.
	Colon // :
	// ColonColon represents the '::' token.
	ColonColon // ::
	// Pound represents the '#' token.
	Pound // #
	// Dollar represents the '$' token.
	Dollar // $
	// Question represents the '?' token.
	Question // ?
	// At represents the '@' token.
	At // @
	// Underscore represents the '_' token.
	Underscore // _
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBracket represents the '[' token.
	LBracket // [
	// RBracket represents the ']' token.
	RBracket // ]
	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "end of file",
	Ident:         "identifier",
	Lifetime:      "lifetime",
	DocComment:    "doc comment",
	IntLit:        "integer literal",
	FloatLit:      "float literal",
	StrLit:        "string literal",
	ByteStrLit:    "byte string literal",
	CharLit:       "character literal",
	ByteLit:       "byte literal",
	Plus:          "'+'",
	PlusAssign:    "'+='",
	Minus:         "'-'",
	MinusAssign:   "'-='",
	Star:          "'*'",
	StarAssign:    "'*='",
	Slash:         "'/'",
	SlashAssign:   "'/='",
	Percent:       "'%'",
	PercentAssign: "'%='",
	Caret:         "'^'",
	CaretAssign:   "'^='",
	Bang:          "'!'",
	BangEq:        "'!='",
	Amp:           "'&'",
	AmpAssign:     "'&='",
	AndAnd:        "'&&'",
	Pipe:          "'|'",
	PipeAssign:    "'|='",
	OrOr:          "'||'",
	Shl:           "'<<'",
	ShlAssign:     "'<<='",
	Shr:           "'>>'",
	ShrAssign:     "'>>='",
	Assign:        "'='",
	EqEq:          "'=='",
	FatArrow:      "'=>'",
	Lt:            "'<'",
	LtEq:          "'<='",
	Gt:            "'>'",
	GtEq:          "'>='",
	Arrow:         "'->'",
	Dot:           "'.'",
	DotDot:        "'..'",
	DotDotEq:      "'..='",
	DotDotDot:     "'...'",
	Comma:         "','",
	Semicolon:     "';'",
	Colon:         "':'",
	ColonColon:    "'::'",
	Pound:         "'#'",
	Dollar:        "'$'",
	Question:      "'?'",
	At:            "'@'",
	Underscore:    "'_'",
	LParen:        "'('",
	RParen:        "')'",
	LBracket:      "'['",
	RBracket:      "']'",
	LBrace:        "'{'",
	RBrace:        "'}'",
}

// String returns a human-readable name for the kind, suitable for
// "expected ..." diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if kw, ok := keywordNames[k]; ok {
		return "'" + kw + "'"
	}
	return "unknown token"
}
