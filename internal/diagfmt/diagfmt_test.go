package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"graft/internal/diag"
	"graft/internal/parser"
	"graft/internal/source"
	"graft/internal/token"
)

func testSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("src/lib.rs", []byte(content))
	return fs, id
}

func TestPretty(t *testing.T) {
	fs, id := testSet(t, "let x = 1\nlet y;\n")
	d := diag.New(diag.SynUnexpectedToken,
		source.Span{File: id, Start: 8, End: 9}, "expected `;`")

	var buf bytes.Buffer
	Pretty(&buf, []diag.Diagnostic{d}, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "lib.rs:1:9: error S2001: expected `;`\n" +
		"1 | let x = 1\n" +
		"  |         ^\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	fs, id := testSet(t, "fn broken() {}\n")
	d := diag.New(diag.SynUnexpectedToken,
		source.Span{File: id, Start: 3, End: 9}, "bad name")

	var buf bytes.Buffer
	Pretty(&buf, []diag.Diagnostic{d}, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "|    ^~~~~~\n") {
		t.Errorf("underline missing or misaligned:\n%s", buf.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs, id := testSet(t, "fn a() {}\nfn b( {}\nfn c() {}\n")
	d := diag.New(diag.SynUnexpectedToken,
		source.Span{File: id, Start: 16, End: 17}, "expected parameter")

	var buf bytes.Buffer
	Pretty(&buf, []diag.Diagnostic{d}, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})

	out := buf.String()
	for _, line := range []string{"1 | fn a() {}", "2 | fn b( {}", "3 | fn c() {}"} {
		if !strings.Contains(out, line) {
			t.Errorf("missing context line %q in:\n%s", line, out)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	fs, id := testSet(t, "let x = 1\n")
	diags := []diag.Diagnostic{
		diag.New(diag.SynUnexpectedToken, source.Span{File: id, Start: 8, End: 9}, "expected `;`"),
		diag.New(diag.LexBadNumber, source.Span{File: id, Start: 0, End: 3}, "bad digit"),
	}

	var buf bytes.Buffer
	err := JSON(&buf, diags, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	first := out.Diagnostics[0]
	if first.Severity != "error" || first.Code != "S2001" {
		t.Errorf("first = %+v", first)
	}
	if first.Location.File != "lib.rs" {
		t.Errorf("file = %q", first.Location.File)
	}
	if first.Location.StartLine != 1 || first.Location.StartCol != 9 {
		t.Errorf("position = %d:%d", first.Location.StartLine, first.Location.StartCol)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs, id := testSet(t, "x\n")
	diags := []diag.Diagnostic{
		diag.New(diag.SynUnexpectedToken, source.Span{File: id}, "one"),
		diag.New(diag.SynUnexpectedToken, source.Span{File: id}, "two"),
		diag.New(diag.SynUnexpectedToken, source.Span{File: id}, "three"),
	}
	out := BuildDiagnosticsOutput(diags, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("count = %d", out.Count)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs, id := testSet(t, "x;\n")
	tokens := []token.Token{
		{Kind: token.Ident, Text: "x", Span: source.Span{File: id, Start: 0, End: 1}},
		{Kind: token.Semicolon, Span: source.Span{File: id, Start: 1, End: 2}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 3, End: 3}},
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "identifier") || !strings.Contains(out, `"x"`) {
		t.Errorf("identifier line missing:\n%s", out)
	}
	if !strings.Contains(out, "at 1:1-1:2") {
		t.Errorf("position missing:\n%s", out)
	}
}

func TestFormatASTTree(t *testing.T) {
	fs, id := testSet(t, "fn main() { show(1); }\n")
	f, err := parser.ParseFile(fs.Get(id), parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, f); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"File", "ItemFn", "ExprCall"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildASTJSON(t *testing.T) {
	fs, id := testSet(t, "struct P;\n")
	f, err := parser.ParseFile(fs.Get(id), parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	root, ok := BuildASTJSON(f).(map[string]any)
	if !ok {
		t.Fatalf("root is %T", BuildASTJSON(f))
	}
	if root["node"] != "File" {
		t.Errorf("root node = %v", root["node"])
	}
	if _, err := json.Marshal(root); err != nil {
		t.Errorf("not serializable: %v", err)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, id := testSet(t, "x\n")
	tokens := []token.Token{
		{Kind: token.Ident, Text: "x", Span: source.Span{File: id, Start: 0, End: 1}},
		{Kind: token.EOF, Span: source.Span{File: id, Start: 2, End: 2}},
	}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].Kind != "identifier" || out[0].Text != "x" {
		t.Errorf("first = %+v", out[0])
	}
}
