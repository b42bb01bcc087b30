package lexer

import (
	"errors"
	"testing"

	"graft/internal/diag"
	"graft/internal/source"
	"graft/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	toks, err := Tokenize(fs.Get(fs.Add("test.rs", []byte(src))))
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	want = append(want, token.EOF)
	got := kinds(tokenize(t, src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"idents and keywords", "fn foo struct Self self",
			[]token.Kind{token.KwFn, token.Ident, token.KwStruct, token.KwSelfType, token.KwSelfValue}},
		{"raw ident is not a keyword", "r#type",
			[]token.Kind{token.Ident}},
		{"lifetime vs char", "'a 'static 'x'",
			[]token.Kind{token.Lifetime, token.Lifetime, token.CharLit}},
		{"numbers", "0 42 0xFF 0o77 0b1010 1_000 1u8 1.5 1e3 2.5f64",
			[]token.Kind{token.IntLit, token.IntLit, token.IntLit, token.IntLit, token.IntLit,
				token.IntLit, token.IntLit, token.FloatLit, token.FloatLit, token.FloatLit}},
		{"strings", `"a" r"raw" r#"ra"w"# b"bytes" b'x' 'c'`,
			[]token.Kind{token.StrLit, token.StrLit, token.StrLit, token.ByteStrLit, token.ByteLit, token.CharLit}},
		{"bools are keywords", "true false",
			[]token.Kind{token.KwTrue, token.KwFalse}},
		{"range and dots", ".. ..= ... .",
			[]token.Kind{token.DotDot, token.DotDotEq, token.DotDotDot, token.Dot}},
		{"compound ops munch maximally", ">>= >> >= > <<= && || :: -> =>",
			[]token.Kind{token.ShrAssign, token.Shr, token.GtEq, token.Gt, token.ShlAssign,
				token.AndAnd, token.OrOr, token.ColonColon, token.Arrow, token.FatArrow}},
		{"doc comments are tokens", "/// outer\nfn f() {}",
			[]token.Kind{token.DocComment, token.KwFn, token.Ident, token.LParen, token.RParen,
				token.LBrace, token.RBrace}},
		{"plain comments are trivia", "// line\n/* block /* nested */ */ x",
			[]token.Kind{token.Ident}},
		{"shebang skipped", "#!/usr/bin/env graft\nfn",
			[]token.Kind{token.KwFn}},
		{"inner attribute is not a shebang", "#![allow]",
			[]token.Kind{token.Pound, token.Bang, token.LBracket, token.Ident, token.RBracket}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectKinds(t, tt.src, tt.want...)
		})
	}
}

func TestTokenTextIsVerbatim(t *testing.T) {
	toks := tokenize(t, `r#fn 1_000u32 "a\nb"`)
	want := []string{"r#fn", "1_000u32", `"a\nb"`}
	for i, text := range want {
		if toks[i].Text != text {
			t.Errorf("token %d text = %q, want %q", i, toks[i].Text, text)
		}
	}
}

func TestSpansCoverSource(t *testing.T) {
	src := "let x = 10;"
	toks := tokenize(t, src)
	for _, tok := range toks[:len(toks)-1] {
		if got := src[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span slice %q != text %q", got, tok.Text)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		code   diag.Code
		offset uint32
	}{
		{"unterminated string", `let s = "abc`, diag.LexUnterminatedString, 8},
		{"unterminated char", "let c = '1", diag.LexUnterminatedChar, 8},
		{"unterminated comment", "x /* no end", diag.LexUnterminatedComment, 2},
		{"bad escape", `"a\qb"`, diag.LexBadEscape, 2},
		{"empty binary literal", "0b_", diag.LexBadNumber, 0},
		{"unknown char", "let \x01 = 1", diag.LexUnknownChar, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			_, err := Tokenize(fs.Get(fs.Add("test.rs", []byte(tt.src))))
			if err == nil {
				t.Fatal("expected error")
			}
			var lerr *Error
			if !errors.As(err, &lerr) {
				t.Fatalf("error type %T", err)
			}
			if lerr.Code != tt.code {
				t.Errorf("code = %v, want %v", lerr.Code, tt.code)
			}
			if lerr.Offset() != tt.offset {
				t.Errorf("offset = %d, want %d", lerr.Offset(), tt.offset)
			}
		})
	}
}

func TestFirstErrorTerminatesScan(t *testing.T) {
	fs := source.NewFileSet()
	toks, err := Tokenize(fs.Get(fs.Add("test.rs", []byte("a \"unterminated\nb"))))
	if err == nil {
		t.Fatal("expected error")
	}
	if toks != nil {
		t.Errorf("partial stream returned alongside error: %v", toks)
	}
}
