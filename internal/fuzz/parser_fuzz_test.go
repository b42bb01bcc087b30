package fuzztests

import (
	"testing"

	"graft/internal/ast"
	"graft/internal/parser"
	"graft/internal/printer"
	"graft/internal/source"
)

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.Add("fuzz.rs", input))

		for _, profile := range []parser.GrammarProfile{parser.ProfileFull, parser.ProfileDerive} {
			tree, err := parser.ParseFile(file, parser.Options{Profile: profile})
			if err == nil && tree == nil {
				t.Fatalf("profile %v: nil tree without error", profile)
			}
		}
	})
}

// FuzzPrinterRoundTrip checks that any tree the parser accepts survives a
// render and reparse unchanged.
func FuzzPrinterRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.Add("fuzz.rs", input))
		tree, err := parser.ParseFile(file, parser.Options{})
		if err != nil {
			return
		}

		rendered, err := printer.FormatFile(tree, printer.Options{})
		if err != nil {
			t.Fatalf("printer failed on accepted input: %v", err)
		}

		fs2 := source.NewFileSet()
		again, err := parser.ParseFile(fs2.Get(fs2.Add("fuzz.rs", rendered)), parser.Options{})
		if err != nil {
			t.Fatalf("reparse failed: %v\nrendered:\n%s", err, rendered)
		}
		if !ast.Equal(tree, again) {
			t.Fatalf("tree changed after round-trip\nrendered:\n%s", rendered)
		}
	})
}
