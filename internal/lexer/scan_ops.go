package lexer

import (
	"graft/internal/diag"
	"graft/internal/token"
)

type punctEntry struct {
	text string
	kind token.Kind
}

// puncts is ordered longest first so that "<<=" wins over "<<" wins over "<".
var puncts = []punctEntry{
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"..=", token.DotDotEq},
	{"...", token.DotDotDot},

	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"^=", token.CaretAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"->", token.Arrow},
	{"=>", token.FatArrow},
	{"..", token.DotDot},
	{"::", token.ColonColon},

	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"^", token.Caret},
	{"!", token.Bang},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"=", token.Assign},
	{"<", token.Lt},
	{">", token.Gt},
	{".", token.Dot},
	{",", token.Comma},
	{";", token.Semicolon},
	{":", token.Colon},
	{"#", token.Pound},
	{"$", token.Dollar},
	{"?", token.Question},
	{"@", token.At},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
}

// scanOperatorOrPunct matches multi-character punctuation longest first.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	start := lx.cursor.Mark()
	rest := lx.file.Content[lx.cursor.Off:]
	for _, p := range puncts {
		if len(rest) < len(p.text) {
			continue
		}
		if string(rest[:len(p.text)]) == p.text {
			for range p.text {
				lx.cursor.Bump()
			}
			return lx.make(p.kind, start), nil
		}
	}
	lx.cursor.BumpRune()
	return token.Token{}, errAt(diag.LexUnknownChar, lx.cursor.SpanFrom(start),
		"unexpected character "+string(lx.file.Content[start:lx.cursor.Off]))
}
