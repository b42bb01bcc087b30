package combinator

import (
	"errors"
	"testing"

	"graft/internal/lexer"
	"graft/internal/source"
	"graft/internal/token"
)

func tokensOf(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.Add("test.rs", []byte(src)))
	toks, err := lexer.Tokenize(file)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	return toks
}

func cursorOf(t *testing.T, src string) Cursor {
	t.Helper()
	return NewCursor(tokensOf(t, src))
}

func TestKindConsumesOnMatch(t *testing.T) {
	c := cursorOf(t, "a, b")

	tok, rest, err := Kind(token.Ident)(c)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Text != "a" {
		t.Errorf("matched %q", tok.Text)
	}
	if rest.Peek().Kind != token.Comma {
		t.Errorf("cursor at %v", rest.Peek().Kind)
	}
}

func TestKindFailureLeavesCursor(t *testing.T) {
	c := cursorOf(t, "a, b")

	_, rest, err := Kind(token.IntLit)(c)
	if err == nil {
		t.Fatal("expected failure")
	}
	if rest.Pos() != c.Pos() {
		t.Errorf("cursor moved on failure: %d != %d", rest.Pos(), c.Pos())
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T", err)
	}
}

func TestAltRewindsPartialConsumption(t *testing.T) {
	// The first branch consumes the identifier before failing on ':';
	// the second must still see the stream from the start.
	c := cursorOf(t, "a, b")

	identColon := Map(Seq2(Kind(token.Ident), Kind(token.Colon)), func(p Pair[token.Token, token.Token]) string {
		return "colon"
	})
	identComma := Map(Seq2(Kind(token.Ident), Kind(token.Comma)), func(p Pair[token.Token, token.Token]) string {
		return "comma"
	})

	got, _, err := Alt(identColon, identComma)(c)
	if err != nil {
		t.Fatal(err)
	}
	if got != "comma" {
		t.Errorf("got %q", got)
	}
}

func TestAltReportsFurthestFailure(t *testing.T) {
	c := cursorOf(t, "a + +")

	short := Kind(token.IntLit)
	long := Map(Seq3(Kind(token.Ident), Kind(token.Plus), Kind(token.IntLit)),
		func(Triple[token.Token, token.Token, token.Token]) token.Token { return token.Token{} })

	_, _, err := Alt(long, short)(c)
	if err == nil {
		t.Fatal("expected failure")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T", err)
	}
	// The long branch got past 'a +' before failing, so its position wins.
	if perr.Span.Start != 4 {
		t.Errorf("failure at offset %d, want 4", perr.Span.Start)
	}
}

func TestOptNeverFails(t *testing.T) {
	c := cursorOf(t, "42")

	_, ok, rest := Opt(Kind(token.Ident))(c)
	if ok {
		t.Error("Opt reported a match on mismatch")
	}
	if rest.Pos() != c.Pos() {
		t.Error("Opt consumed input on mismatch")
	}

	tok, ok, _ := Opt(Kind(token.IntLit))(c)
	if !ok || tok.Text != "42" {
		t.Errorf("Opt match = %v %q", ok, tok.Text)
	}
}

func TestMany0(t *testing.T) {
	c := cursorOf(t, "a b c 1")

	items, rest, err := Many0(Kind(token.Ident))(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("matched %d items", len(items))
	}
	if rest.Peek().Kind != token.IntLit {
		t.Errorf("cursor at %v", rest.Peek().Kind)
	}

	none, rest2, err := Many0(Kind(token.Lifetime))(c)
	if err != nil || len(none) != 0 || rest2.Pos() != c.Pos() {
		t.Errorf("empty Many0: %v %d", err, len(none))
	}
}

func TestDelimited(t *testing.T) {
	c := cursorOf(t, "(x)")

	tok, rest, err := Delimited(token.LParen, token.RParen, Kind(token.Ident))(c)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Text != "x" || !rest.EOF() {
		t.Errorf("tok=%q eof=%v", tok.Text, rest.EOF())
	}

	_, rest2, err := Delimited(token.LParen, token.RParen, Kind(token.Ident))(cursorOf(t, "(x"))
	if err == nil {
		t.Fatal("unclosed delimiter accepted")
	}
	if rest2.Pos() != 0 {
		t.Error("failure consumed input")
	}
}

func TestPunctuated(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		trailing bool
		wantLen  int
		wantTrl  bool
		stopsAt  token.Kind
	}{
		{"plain", "a, b, c", true, 3, false, token.EOF},
		{"trailing allowed", "a, b,", true, 2, true, token.EOF},
		{"trailing refused", "a, b,", false, 2, false, token.Comma},
		{"empty", "+", true, 0, false, token.Plus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursorOf(t, tt.src)
			seq, rest, err := Punctuated(Kind(token.Ident), token.Comma, tt.trailing)(c)
			if err != nil {
				t.Fatal(err)
			}
			if seq.Len() != tt.wantLen {
				t.Errorf("len = %d, want %d", seq.Len(), tt.wantLen)
			}
			if seq.Trailing != tt.wantTrl {
				t.Errorf("trailing = %v", seq.Trailing)
			}
			if rest.Peek().Kind != tt.stopsAt {
				t.Errorf("stopped at %v, want %v", rest.Peek().Kind, tt.stopsAt)
			}
			if err := seq.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestCloseAngleSplitsComposites(t *testing.T) {
	tests := []struct {
		src  string
		next token.Kind
	}{
		{"> x", token.Ident},
		{">> x", token.Gt},
		{">= x", token.Assign},
		{">>= x", token.GtEq},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			c := cursorOf(t, tt.src)
			gt, rest, err := CloseAngle(c)
			if err != nil {
				t.Fatal(err)
			}
			if gt.Kind != token.Gt {
				t.Errorf("consumed %v", gt.Kind)
			}
			if rest.Peek().Kind != tt.next {
				t.Errorf("next = %v, want %v", rest.Peek().Kind, tt.next)
			}
		})
	}
}

func TestCloseAngleSplitRewinds(t *testing.T) {
	c := cursorOf(t, ">> x")
	_, afterFirst, err := CloseAngle(c)
	if err != nil {
		t.Fatal(err)
	}
	// Failing from the split position must hand back the same split cursor.
	_, rest, err := Kind(token.Ident)(afterFirst)
	if err == nil {
		t.Fatal("expected failure on pending '>'")
	}
	if rest.Pos() != afterFirst.Pos() {
		t.Error("split cursor not preserved across failure")
	}
	if rest.Peek().Kind != token.Gt {
		t.Errorf("pending token lost, at %v", rest.Peek().Kind)
	}
}

func TestExpectedMentionsWhat(t *testing.T) {
	c := cursorOf(t, "fn")
	err := Expected(c, "an expression")
	if err.Span != c.Span() {
		t.Errorf("span = %v, want %v", err.Span, c.Span())
	}
	if got := err.Error(); got == "" {
		t.Error("empty message")
	}
}
