package source

import (
	"testing"
)

func TestLineCol(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.Add("a.rs", []byte("one\ntwo\n\nfour")))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4}, // the newline itself
		{4, 2, 1},
		{8, 3, 1}, // empty line
		{9, 4, 1},
		{12, 4, 4},
	}
	for _, tt := range tests {
		line, col := f.LineCol(tt.off)
		if line != tt.line || col != tt.col {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.off, line, col, tt.line, tt.col)
		}
	}
}

func TestLineSpan(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.Add("a.rs", []byte("one\ntwo\nlast")))

	tests := []struct {
		line uint32
		text string
	}{
		{1, "one"},
		{2, "two"},
		{3, "last"}, // no trailing newline
	}
	for _, tt := range tests {
		sp := f.LineSpan(tt.line)
		if got := string(f.Slice(sp)); got != tt.text {
			t.Errorf("LineSpan(%d) = %q, want %q", tt.line, got, tt.text)
		}
	}

	if sp := f.LineSpan(0); !sp.Empty() {
		t.Errorf("LineSpan(0) = %v", sp)
	}
	if sp := f.LineSpan(99); !sp.Empty() {
		t.Errorf("LineSpan(99) = %v", sp)
	}
}

func TestFileSetLookupAndPosition(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("src/lib.rs", []byte("fn main() {}\n"))

	f, ok := fs.Lookup("src/lib.rs")
	if !ok || f.ID != id {
		t.Fatalf("Lookup = %v %v", f, ok)
	}
	if fs.Len() != 1 {
		t.Errorf("Len = %d", fs.Len())
	}

	got := fs.Position(Span{File: id, Start: 3, End: 7})
	if got != "src/lib.rs:1:4" {
		t.Errorf("Position = %q", got)
	}
	if got := fs.Position(Span{File: NoFileID}); got == "" {
		t.Error("unknown file position empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 6, End: 12}
	if got := a.Cover(b); got.Start != 4 || got.End != 12 {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 1, Start: 0, End: 2}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover = %v", got)
	}
}

func TestContentHashDiffers(t *testing.T) {
	fs := NewFileSet()
	a := fs.Get(fs.Add("a.rs", []byte("fn a() {}\n")))
	b := fs.Get(fs.Add("b.rs", []byte("fn b() {}\n")))
	if a.Hash == b.Hash {
		t.Error("distinct content produced identical hashes")
	}
}
