package fuzztests

import (
	"testing"

	"graft/internal/lexer"
	"graft/internal/source"
	"graft/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.Add("fuzz.rs", input)
		file := fs.Get(fileID)

		toks, err := lexer.Tokenize(file)
		if err != nil {
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF (%d tokens)", len(toks))
		}
		for _, tok := range toks {
			if tok.Span.End < tok.Span.Start {
				t.Fatalf("inverted span %v for %v", tok.Span, tok.Kind)
			}
		}
	})
}
