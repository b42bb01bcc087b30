package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"graft/internal/diag"
	"graft/internal/parser"
	"graft/internal/printer"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestTokenize(t *testing.T) {
	p := writeSource(t, t.TempDir(), "ok.rs", "fn main() {}\n")
	res, err := Tokenize(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diags)
	}
	if len(res.Tokens) == 0 {
		t.Fatal("expected tokens")
	}
}

func TestTokenizeReportsLexError(t *testing.T) {
	p := writeSource(t, t.TempDir(), "bad.rs", "let s = \"unterminated;\n")
	res, err := Tokenize(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(res.Diags))
	}
	if res.Diags[0].Code != diag.LexUnterminatedString {
		t.Errorf("code = %v", res.Diags[0].Code)
	}
}

func TestParse(t *testing.T) {
	p := writeSource(t, t.TempDir(), "ok.rs", "struct P { x: u32 }\nfn main() {}\n")
	res, err := Parse(p, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok() {
		t.Fatalf("diags: %v", res.Diags)
	}
	if len(res.AST.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.AST.Items))
	}
}

func TestCheckPaths(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.rs", "fn main() {}\n")
	bad := writeSource(t, dir, "bad.rs", "fn broken( {}\n")

	reports, err := CheckPaths(context.Background(), []string{good, bad}, CheckOptions{
		MaxDiagnostics: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].HasErrors() {
		t.Errorf("good file reported errors: %v", reports[0].Diags)
	}
	if !reports[1].HasErrors() {
		t.Error("bad file reported no errors")
	}
}

func TestCheckPathsUsesCache(t *testing.T) {
	dir := t.TempDir()
	p := writeSource(t, dir, "lib.rs", "pub fn id(x: u32) -> u32 { x }\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := CheckOptions{MaxDiagnostics: 20, Cache: cache}

	first, err := CheckPaths(context.Background(), []string{p}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].FromCache {
		t.Fatal("first run must not hit the cache")
	}

	second, err := CheckPaths(context.Background(), []string{p}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].FromCache {
		t.Fatal("second run should hit the cache")
	}
	if second[0].Items != first[0].Items {
		t.Errorf("cached item count %d != %d", second[0].Items, first[0].Items)
	}
}

func TestCacheKeyedByProfile(t *testing.T) {
	dir := t.TempDir()
	p := writeSource(t, dir, "lib.rs", "fn main() {}\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	full, err := CheckPaths(context.Background(), []string{p}, CheckOptions{Cache: cache, MaxDiagnostics: 20})
	if err != nil {
		t.Fatal(err)
	}
	if full[0].HasErrors() {
		t.Fatal("fn item should pass under the full profile")
	}

	derive, err := CheckPaths(context.Background(), []string{p}, CheckOptions{
		Cache:          cache,
		MaxDiagnostics: 20,
		Profile:        parser.ProfileDerive,
	})
	if err != nil {
		t.Fatal(err)
	}
	if derive[0].FromCache {
		t.Fatal("profile change must miss the cache")
	}
	if !derive[0].HasErrors() {
		t.Error("fn item should fail under the derive profile")
	}
}

func TestCheckPathsEmitsEvents(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.rs", "fn main() {}\n")
	bad := writeSource(t, dir, "bad.rs", "fn broken( {}\n")

	events := make(chan CheckEvent, 64)
	_, err := CheckPaths(context.Background(), []string{good, bad}, CheckOptions{
		MaxDiagnostics: 20,
		Events:         events,
	})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	last := map[string]CheckStatus{}
	for ev := range events {
		last[ev.Path] = ev.Status
	}
	if last[good] != StatusDone {
		t.Errorf("good terminal status = %v", last[good])
	}
	if last[bad] != StatusError {
		t.Errorf("bad terminal status = %v", last[bad])
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.rs", "fn a() {}\n")
	writeSource(t, dir, "src/b.rs", "fn b() {}\n")
	writeSource(t, dir, "src/notes.txt", "not source\n")
	writeSource(t, dir, "target/gen.rs", "fn gen() {}\n")
	writeSource(t, dir, ".hidden/c.rs", "fn c() {}\n")

	all, err := CollectFiles(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 files, got %v", all)
	}

	only, err := CollectFiles(dir, []string{"src/*.rs"})
	if err != nil {
		t.Fatal(err)
	}
	if len(only) != 1 || filepath.Base(only[0]) != "b.rs" {
		t.Fatalf("include filter failed: %v", only)
	}
}

func TestFormatAndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := writeSource(t, dir, "m.rs", "fn main(){let x=1+2;show(x);}\n")
	out, err := Format(p, parser.Options{}, printer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := "fn main() {\n    let x = 1 + 2;\n    show(x);\n}\n"
	if string(out) != want {
		t.Errorf("formatted output:\n%s\nwant:\n%s", out, want)
	}

	ok, msg := CheckRoundTrip(p, parser.Options{}, printer.Options{})
	if !ok {
		t.Fatalf("round trip failed: %s", msg)
	}
}

func TestFormatPaths(t *testing.T) {
	dir := t.TempDir()
	messy := writeSource(t, dir, "messy.rs", "fn f(){g();}\n")
	clean := writeSource(t, dir, "clean.rs", "fn f() {\n    g();\n}\n")
	broken := writeSource(t, dir, "broken.rs", "fn f( {\n")

	results, err := FormatPaths(context.Background(), []string{messy, clean, broken}, FormatOptions{
		Write: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed || results[0].Err != nil {
		t.Errorf("messy: changed=%v err=%v", results[0].Changed, results[0].Err)
	}
	if results[1].Changed {
		t.Error("clean file reported as changed")
	}
	if results[2].Err == nil {
		t.Error("broken file did not report an error")
	}

	rewritten, err := os.ReadFile(messy)
	if err != nil {
		t.Fatal(err)
	}
	if string(rewritten) != "fn f() {\n    g();\n}\n" {
		t.Errorf("rewritten content:\n%s", rewritten)
	}
}
