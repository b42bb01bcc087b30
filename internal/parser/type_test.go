package parser

import (
	"testing"

	"graft/internal/ast"
)

func TestTypeForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(ast.Type) bool
	}{
		{"path", "u32", func(ty ast.Type) bool {
			_, ok := ty.(*ast.TypePath)
			return ok
		}},
		{"qualified_path", "std::collections::HashMap<K, V>", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePath)
			return ok && p.Path.Segments.Len() == 3
		}},
		{"reference", "&'a mut T", func(ty ast.Type) bool {
			r, ok := ty.(*ast.TypeReference)
			return ok && r.Mut && r.Lifetime != nil
		}},
		{"pointer", "*const u8", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePtr)
			return ok && !p.Mut
		}},
		{"mut_pointer", "*mut u8", func(ty ast.Type) bool {
			p, ok := ty.(*ast.TypePtr)
			return ok && p.Mut
		}},
		{"tuple", "(u32, f64)", func(ty ast.Type) bool {
			tp, ok := ty.(*ast.TypeTuple)
			return ok && tp.Elems.Len() == 2
		}},
		{"unit", "()", func(ty ast.Type) bool {
			tp, ok := ty.(*ast.TypeTuple)
			return ok && tp.Elems.Len() == 0
		}},
		{"paren", "(u32)", func(ty ast.Type) bool {
			_, ok := ty.(*ast.TypeParen)
			return ok
		}},
		{"slice", "[u8]", func(ty ast.Type) bool {
			_, ok := ty.(*ast.TypeSlice)
			return ok
		}},
		{"array", "[u8; 32]", func(ty ast.Type) bool {
			a, ok := ty.(*ast.TypeArray)
			return ok && a.Len != nil
		}},
		{"bare_fn", "fn(u32, name: f64) -> bool", func(ty ast.Type) bool {
			f, ok := ty.(*ast.TypeBareFn)
			return ok && f.Inputs.Len() == 2 && f.Output != nil &&
				f.Inputs.At(1).Name != nil
		}},
		{"trait_object", "dyn Draw + Send + 'static", func(ty ast.Type) bool {
			o, ok := ty.(*ast.TypeTraitObject)
			return ok && o.Dyn && o.Bounds.Len() == 3
		}},
		{"legacy_trait_object", "Draw + Send", func(ty ast.Type) bool {
			o, ok := ty.(*ast.TypeTraitObject)
			return ok && !o.Dyn && o.Bounds.Len() == 2
		}},
		{"impl_trait", "impl Iterator<Item = u32>", func(ty ast.Type) bool {
			i, ok := ty.(*ast.TypeImplTrait)
			return ok && i.Bounds.Len() == 1
		}},
		{"maybe_bound", "impl ?Sized", func(ty ast.Type) bool {
			i, ok := ty.(*ast.TypeImplTrait)
			if !ok || i.Bounds.Len() != 1 {
				return false
			}
			b, ok := i.Bounds.At(0).(*ast.BoundTrait)
			return ok && b.Maybe
		}},
		{"infer", "_", func(ty ast.Type) bool {
			_, ok := ty.(*ast.TypeInfer)
			return ok
		}},
		{"never", "!", func(ty ast.Type) bool {
			_, ok := ty.(*ast.TypeNever)
			return ok
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ty := typeOf(t, tt.input); !tt.check(ty) {
				t.Errorf("unexpected type shape %T", ty)
			}
		})
	}
}

func TestNestedGenericsCloseWithShiftToken(t *testing.T) {
	// The lexer emits `>>` as one token; the cursor splits it when a
	// generic argument list closes.
	ty := typeOf(t, "Vec<Vec<u8>>")
	p, ok := ty.(*ast.TypePath)
	if !ok {
		t.Fatalf("expected path type, got %T", ty)
	}
	outer := p.Path.Segments.At(0)
	if outer.Args == nil || outer.Args.Args.Len() != 1 {
		t.Fatal("outer Vec should carry one generic argument")
	}
	argTy, ok := outer.Args.Args.At(0).(*ast.GenericArgType)
	if !ok {
		t.Fatalf("expected type argument, got %T", outer.Args.Args.At(0))
	}
	inner, ok := argTy.Ty.(*ast.TypePath)
	if !ok {
		t.Fatalf("expected inner path type, got %T", argTy.Ty)
	}
	if inner.Path.Segments.At(0).Args == nil {
		t.Fatal("inner Vec should carry its own generic argument")
	}
}

func TestGenericArgKinds(t *testing.T) {
	ty := typeOf(t, "Map<'a, K, Item = V>")
	p := ty.(*ast.TypePath)
	args := p.Path.Segments.At(0).Args
	if args == nil || args.Args.Len() != 3 {
		t.Fatal("expected 3 generic arguments")
	}
	if _, ok := args.Args.At(0).(*ast.GenericArgLifetime); !ok {
		t.Error("first argument should be a lifetime")
	}
	if _, ok := args.Args.At(1).(*ast.GenericArgType); !ok {
		t.Error("second argument should be a type")
	}
	if b, ok := args.Args.At(2).(*ast.GenericArgBinding); !ok || b.Ident.Name != "Item" {
		t.Error("third argument should be an associated type binding")
	}
}

func TestTurbofishOnlyInExprPaths(t *testing.T) {
	// Expression paths need `::<`; a bare `<` begins a comparison.
	e := exprOf(t, "parse::<u32>(text)")
	call, ok := e.(*ast.ExprCall)
	if !ok {
		t.Fatalf("expected call, got %T", e)
	}
	fn := call.Func.(*ast.ExprPath)
	if fn.Path.Segments.At(0).Args == nil {
		t.Fatal("turbofish arguments should attach to the path segment")
	}
	if !fn.Path.Segments.At(0).Args.Turbofish {
		t.Error("arguments should be marked turbofish")
	}

	cmp := exprOf(t, "a < b")
	if _, ok := cmp.(*ast.ExprBinary); !ok {
		t.Fatalf("a < b should parse as a comparison, got %T", cmp)
	}
}
