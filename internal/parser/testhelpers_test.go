package parser

import (
	"testing"

	"graft/internal/ast"
	"graft/internal/source"
)

func testFile(src string) *source.File {
	fs := source.NewFileSet()
	id := fs.Add("test.rs", []byte(src))
	return fs.Get(id)
}

func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := ParseExpr(testFile(src), Options{})
	if err != nil {
		t.Fatalf("ParseExpr(%q): %v", src, err)
	}
	return e
}

func typeOf(t *testing.T, src string) ast.Type {
	t.Helper()
	ty, err := ParseType(testFile(src), Options{})
	if err != nil {
		t.Fatalf("ParseType(%q): %v", src, err)
	}
	return ty
}

func patOf(t *testing.T, src string) ast.Pat {
	t.Helper()
	pt, err := ParsePat(testFile(src), Options{})
	if err != nil {
		t.Fatalf("ParsePat(%q): %v", src, err)
	}
	return pt
}

func itemOf(t *testing.T, src string) ast.Item {
	t.Helper()
	it, err := ParseItem(testFile(src), Options{})
	if err != nil {
		t.Fatalf("ParseItem(%q): %v", src, err)
	}
	return it
}

func fileOf(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := ParseFile(testFile(src), Options{})
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", src, err)
	}
	return f
}
