package parser

import (
	"errors"
	"testing"

	"graft/internal/ast"
)

func TestFnItem(t *testing.T) {
	it := itemOf(t, `pub fn dist<T: Measure>(a: &T, b: &T) -> f64 where T: Clone {
		a.measure(b)
	}`)
	fn, ok := it.(*ast.ItemFn)
	if !ok {
		t.Fatalf("expected fn item, got %T", it)
	}
	if fn.Vis != ast.VisPub {
		t.Errorf("expected pub visibility, got %v", fn.Vis)
	}
	if fn.Sig.Ident.Name != "dist" {
		t.Errorf("expected name %q, got %q", "dist", fn.Sig.Ident.Name)
	}
	if len(fn.Sig.Generics.TypeParams) != 1 {
		t.Errorf("expected 1 type parameter, got %d", len(fn.Sig.Generics.TypeParams))
	}
	if len(fn.Sig.Generics.Where) != 1 {
		t.Errorf("expected 1 where predicate, got %d", len(fn.Sig.Generics.Where))
	}
	if fn.Sig.Inputs.Len() != 2 {
		t.Errorf("expected 2 inputs, got %d", fn.Sig.Inputs.Len())
	}
	if fn.Sig.Output == nil {
		t.Error("expected return type")
	}
}

func TestReceiverForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*ast.Receiver) bool
	}{
		{"value", "fn f(self) {}", func(r *ast.Receiver) bool {
			return !r.Ref && !r.Mut
		}},
		{"mut_value", "fn f(mut self) {}", func(r *ast.Receiver) bool {
			return !r.Ref && r.Mut
		}},
		{"shared", "fn f(&self) {}", func(r *ast.Receiver) bool {
			return r.Ref && !r.Mut
		}},
		{"exclusive", "fn f(&mut self) {}", func(r *ast.Receiver) bool {
			return r.Ref && r.Mut
		}},
		{"lifetime", "fn f(&'a self) {}", func(r *ast.Receiver) bool {
			return r.Ref && r.Lifetime != nil && r.Lifetime.Name == "a"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := itemOf(t, tt.input).(*ast.ItemFn)
			if fn.Sig.Inputs.Len() != 1 {
				t.Fatalf("expected 1 input, got %d", fn.Sig.Inputs.Len())
			}
			r, ok := fn.Sig.Inputs.At(0).(*ast.Receiver)
			if !ok {
				t.Fatalf("expected receiver, got %T", fn.Sig.Inputs.At(0))
			}
			if !tt.check(r) {
				t.Errorf("unexpected receiver shape %+v", r)
			}
		})
	}
}

func TestTypedSelfIsNotReceiver(t *testing.T) {
	fn := itemOf(t, "fn f(self: Box<Self>) {}").(*ast.ItemFn)
	if _, ok := fn.Sig.Inputs.At(0).(*ast.ArgTyped); !ok {
		t.Fatalf("self: Ty should parse as a typed argument, got %T", fn.Sig.Inputs.At(0))
	}
}

func TestStructForms(t *testing.T) {
	named := itemOf(t, `struct Point { pub x: f64, y: f64 }`).(*ast.ItemStruct)
	if named.Fields.Kind != ast.FieldsNamed {
		t.Errorf("expected named fields, got %v", named.Fields.Kind)
	}
	if named.Fields.Fields.At(0).Vis != ast.VisPub {
		t.Error("first field should be pub")
	}

	tuple := itemOf(t, `struct Pair<T>(T, T) where T: Copy;`).(*ast.ItemStruct)
	if tuple.Fields.Kind != ast.FieldsUnnamed {
		t.Errorf("expected tuple fields, got %v", tuple.Fields.Kind)
	}
	if len(tuple.Generics.Where) != 1 {
		t.Error("where clause after tuple fields should attach")
	}

	unit := itemOf(t, `struct Marker;`).(*ast.ItemStruct)
	if unit.Fields.Kind != ast.FieldsUnit {
		t.Errorf("expected unit struct, got %v", unit.Fields.Kind)
	}
}

func TestEnumItem(t *testing.T) {
	it := itemOf(t, `enum Shape {
		Circle { radius: f64 },
		Rect(f64, f64),
		Point,
		Code = 4,
	}`)
	en := it.(*ast.ItemEnum)
	if en.Variants.Len() != 4 {
		t.Fatalf("expected 4 variants, got %d", en.Variants.Len())
	}
	if en.Variants.At(0).Fields.Kind != ast.FieldsNamed {
		t.Error("first variant should have named fields")
	}
	if en.Variants.At(1).Fields.Kind != ast.FieldsUnnamed {
		t.Error("second variant should have tuple fields")
	}
	if en.Variants.At(3).Discriminant == nil {
		t.Error("fourth variant should carry a discriminant")
	}
}

func TestTraitItem(t *testing.T) {
	it := itemOf(t, `trait Animal: Named {
		const LEGS: u32 = 4;
		type Habitat;
		fn speak(&self) -> String;
		fn greet(&self) -> String { self.speak() }
	}`)
	tr := it.(*ast.ItemTrait)
	if len(tr.Supertraits) != 1 {
		t.Errorf("expected 1 supertrait, got %d", len(tr.Supertraits))
	}
	if len(tr.Items) != 4 {
		t.Fatalf("expected 4 trait items, got %d", len(tr.Items))
	}
	fn1 := tr.Items[2].(*ast.TraitItemFn)
	if fn1.Default != nil {
		t.Error("required method should have no default body")
	}
	fn2 := tr.Items[3].(*ast.TraitItemFn)
	if fn2.Default == nil {
		t.Error("provided method should keep its body")
	}
}

func TestImplItem(t *testing.T) {
	inherent := itemOf(t, `impl<T> Stack<T> {
		pub fn push(&mut self, v: T) { self.items.push(v) }
	}`).(*ast.ItemImpl)
	if inherent.Trait != nil {
		t.Error("inherent impl should have no trait path")
	}

	trImpl := itemOf(t, `impl Display for Point {
		type Output = String;
		const ZERO: u32 = 0;
		fn fmt(&self) -> String { render(self) }
	}`).(*ast.ItemImpl)
	if trImpl.Trait == nil {
		t.Fatal("trait impl should record the trait path")
	}
	if len(trImpl.Items) != 3 {
		t.Fatalf("expected 3 impl items, got %d", len(trImpl.Items))
	}
}

func TestModItem(t *testing.T) {
	inline := itemOf(t, `mod geometry { struct Point; fn area() {} }`).(*ast.ItemMod)
	if !inline.Inline {
		t.Error("expected inline module")
	}
	if len(inline.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(inline.Items))
	}
	decl := itemOf(t, `mod geometry;`).(*ast.ItemMod)
	if decl.Inline {
		t.Error("expected out-of-line module declaration")
	}
}

func TestUseTrees(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(ast.UseTree) bool
	}{
		{"name", "use alloc;", func(u ast.UseTree) bool {
			n, ok := u.(*ast.UseName)
			return ok && n.Ident.Name == "alloc"
		}},
		{"path", "use std::io;", func(u ast.UseTree) bool {
			p, ok := u.(*ast.UsePath)
			return ok && p.Ident.Name == "std"
		}},
		{"rename", "use std::io as stdio;", func(u ast.UseTree) bool {
			p, ok := u.(*ast.UsePath)
			if !ok {
				return false
			}
			r, ok := p.Tree.(*ast.UseRename)
			return ok && r.Alias.Name == "stdio"
		}},
		{"glob", "use std::io::*;", func(u ast.UseTree) bool {
			p := u.(*ast.UsePath)
			q := p.Tree.(*ast.UsePath)
			_, ok := q.Tree.(*ast.UseGlob)
			return ok
		}},
		{"group", "use std::{io, fmt::Debug};", func(u ast.UseTree) bool {
			p := u.(*ast.UsePath)
			g, ok := p.Tree.(*ast.UseGroup)
			return ok && g.Items.Len() == 2
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			use := itemOf(t, tt.input).(*ast.ItemUse)
			if !tt.check(use.Tree) {
				t.Errorf("unexpected use tree shape %T", use.Tree)
			}
		})
	}
}

func TestConstAndStatic(t *testing.T) {
	c := itemOf(t, "const MAX: usize = 1024;").(*ast.ItemConst)
	if c.Ident.Name != "MAX" || c.Ty == nil || c.Expr == nil {
		t.Error("const item should carry name, type and value")
	}
	s := itemOf(t, "static mut COUNTER: u64 = 0;").(*ast.ItemStatic)
	if !s.Mut {
		t.Error("static mut should record mutability")
	}
}

func TestForeignMod(t *testing.T) {
	it := itemOf(t, `extern "C" {
		fn strlen(s: *const u8) -> usize;
		static errno: i32;
	}`)
	fm := it.(*ast.ItemForeignMod)
	if fm.Abi != "C" {
		t.Errorf("expected ABI %q, got %q", "C", fm.Abi)
	}
	if len(fm.Items) != 2 {
		t.Fatalf("expected 2 foreign items, got %d", len(fm.Items))
	}
}

func TestTypeAlias(t *testing.T) {
	it := itemOf(t, "type Result<T> = std::result::Result<T, Error>;").(*ast.ItemType)
	if it.Ident.Name != "Result" {
		t.Errorf("expected name %q, got %q", "Result", it.Ident.Name)
	}
	if len(it.Generics.TypeParams) != 1 {
		t.Errorf("expected 1 type parameter, got %d", len(it.Generics.TypeParams))
	}
}

func TestMacroItems(t *testing.T) {
	def := itemOf(t, `macro_rules! square { ($x:expr) => { $x * $x }; }`).(*ast.ItemMacro)
	if def.Name == nil || def.Name.Name != "square" {
		t.Error("macro_rules definition should record its name")
	}
	inv := itemOf(t, `lazy_static! { static ref M: Map = build(); }`).(*ast.ItemMacro)
	if inv.Name != nil {
		t.Error("plain invocation should have no name")
	}
	semi := itemOf(t, `register!(Widget);`).(*ast.ItemMacro)
	if !semi.Semi {
		t.Error("paren-delimited macro item should require the semicolon")
	}
}

func TestAttributesAndDocs(t *testing.T) {
	f := fileOf(t, `//! Module docs.

/// A point in the plane.
#[derive(Debug, Clone)]
pub struct Point { x: f64, y: f64 }
`)
	if len(f.Attrs) != 1 || !f.Attrs[0].IsDoc || f.Attrs[0].Style != ast.AttrInner {
		t.Fatal("inner doc comment should attach to the file")
	}
	st := f.Items[0].(*ast.ItemStruct)
	if len(st.Attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(st.Attrs))
	}
	if !st.Attrs[0].IsDoc {
		t.Error("first attribute should be the doc comment")
	}
	if st.Attrs[1].Path.Segments.At(0).Ident.Name != "derive" {
		t.Error("second attribute should be derive")
	}
	if len(st.Attrs[1].Tokens) == 0 {
		t.Error("attribute arguments should be preserved as tokens")
	}
}

func TestDeriveProfileRejectsExecutableItems(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"fn", "fn main() {}"},
		{"impl", "impl Point {}"},
		{"trait", "trait T {}"},
		{"static", "static X: u32 = 0;"},
		{"extern", `extern "C" {}`},
		{"macro", "register!(X);"},
	}

	opts := Options{Profile: ProfileDerive}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItem(testFile(tt.input), opts)
			var disabled *DisabledError
			if !errors.As(err, &disabled) {
				t.Fatalf("expected DisabledError, got %v", err)
			}
		})
	}
}

func TestDeriveProfileAcceptsDataItems(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"struct", "struct P { x: u32 }"},
		{"enum", "enum E { A, B }"},
		{"type", "type T = u32;"},
		{"use", "use std::fmt;"},
		{"const", "const N: u32 = 1;"},
		{"mod", "mod m { struct Inner; }"},
	}

	opts := Options{Profile: ProfileDerive}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseItem(testFile(tt.input), opts); err != nil {
				t.Fatalf("derive profile should accept %s items: %v", tt.name, err)
			}
		})
	}
}

func TestStatementForms(t *testing.T) {
	fn := itemOf(t, `fn run() {
		let mut total: u64 = 0;
		struct Local;
		total += 1;
		total
	}`).(*ast.ItemFn)
	if len(fn.Body.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(fn.Body.Stmts))
	}
	if _, ok := fn.Body.Stmts[0].(*ast.StmtLet); !ok {
		t.Error("first statement should be a let")
	}
	if _, ok := fn.Body.Stmts[1].(*ast.StmtItem); !ok {
		t.Error("second statement should be an item")
	}
	tail, ok := fn.Body.Stmts[3].(*ast.StmtExpr)
	if !ok || tail.Semi {
		t.Error("last statement should be the unterminated tail expression")
	}
}

func TestMissingSemicolonInBlock(t *testing.T) {
	_, err := ParseItem(testFile("fn f() { g() h() }"), Options{})
	if err == nil {
		t.Fatal("expected an error for a missing semicolon")
	}
}
