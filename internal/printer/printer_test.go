package printer

import (
	"testing"

	"graft/internal/ast"
	"graft/internal/parser"
	"graft/internal/source"
)

func parseSource(t *testing.T, src string) *ast.File {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("test.rs", []byte(src))
	f, err := parser.ParseFile(fs.Get(id), parser.Options{})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"fn", "fn add(a: u32, b: u32) -> u32 { a + b }"},
		{"generic_fn", "fn pick<T: Clone>(items: &[T], at: usize) -> T where T: Sized { items[at].clone() }"},
		{"struct_named", "pub struct Point { pub x: f64, y: f64 }"},
		{"struct_tuple", "struct Pair<T>(T, T);"},
		{"struct_unit", "struct Marker;"},
		{"enum", "enum E { A, B(u32), C { n: u32 }, D = 4 }"},
		{"trait", "trait Speak { const VOLUME: u32 = 3; type Out; fn speak(&self) -> String; fn twice(&self) -> String { self.speak() } }"},
		{"impl", "impl Speak for Dog { type Out = String; fn speak(&self) -> String { bark() } }"},
		{"mod", "mod shapes { struct Circle; mod nested; }"},
		{"use", "use std::{io, fmt::Debug, mem as memory};"},
		{"const", "const LIMIT: usize = 4096;"},
		{"static", "static mut HITS: u64 = 0;"},
		{"extern", `extern "C" { fn strlen(s: *const u8) -> usize; static errno: i32; }`},
		{"type_alias", "type Pairs = Vec<(u32, u32)>;"},
		{"macro_item", "register!(Widget);"},
		{"macro_def", "macro_rules! sq { ($x:expr) => { $x * $x }; }"},
		{"exprs", `fn run() {
			let mut total: u64 = 0;
			for i in 0..10 {
				total += compute(i) as u64;
			}
			let f = move |x: u32| x + 1;
			let s = Point { x: 1, y: 2, ..base };
			if total > 5 { log!("big {}", total); }
			match total {
				0 => none(),
				1..=9 => few(),
				n if n > 100 => { many(n); }
				_ => (),
			}
		}`},
		{"patterns", `fn take(p: Point) {
			let Point { x, y: ref inner, .. } = p;
			let (a, _, ..) = triple();
			let &mut v = r;
			let Some(q) = opt;
		}`},
		{"types", "fn sig(f: fn(u32) -> bool, d: &dyn Draw, s: &'a mut [u8], t: (u8,), a: [u8; 4]) -> impl Iterator<Item = u8> { body() }"},
		{"attrs", `//! File docs.

/// A shape.
#[derive(Debug, Clone)]
struct Shape { kind: u8 }`},
		{"struct_lit_cond", "fn f() { if (S { n: 1 }).n == 1 { g(); } }"},
		{"ranges", "fn f() { let r = 1..; let q = ..=9; let all = ..; }"},
		{"labels", "fn f() { 'outer: loop { while ready() { break 'outer; } } }"},
		{"raw_ident", "fn r#match(r#type: u32) -> u32 { r#type }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := parseSource(t, tt.src)
			out, err := FormatFile(orig, Options{})
			if err != nil {
				t.Fatalf("FormatFile: %v", err)
			}
			again := parseSource(t, string(out))
			if !ast.Equal(orig, again) {
				t.Fatalf("round trip changed the tree\nrendered:\n%s", out)
			}
		})
	}
}

func TestRenderIsStable(t *testing.T) {
	src := "fn main() { let x = 1 + 2 * 3; show(x); }"
	f := parseSource(t, src)
	first, err := FormatFile(f, Options{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := FormatFile(parseSource(t, string(first)), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatalf("rendering is not a fixed point\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestExprRendering(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"binary", "1 + 2 * 3", "1 + 2 * 3"},
		{"call_chain", "obj.take()?.len()", "obj.take()?.len()"},
		{"turbofish", "parse::<u32>(s)", "parse::<u32>(s)"},
		{"reference", "&mut buf", "&mut buf"},
		{"cast", "x as u64", "x as u64"},
		{"string", `"a\nb"`, `"a\nb"`},
		{"char", `'\t'`, `'\t'`},
		{"tuple_index", "pair.0", "pair.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.Add("expr.rs", []byte(tt.src))
			e, err := parser.ParseExpr(fs.Get(id), parser.Options{})
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := Expr(e); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUseTabs(t *testing.T) {
	f := parseSource(t, "fn f() { g(); }")
	out, err := FormatFile(f, Options{UseTabs: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "fn f() {\n\tg();\n}\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
