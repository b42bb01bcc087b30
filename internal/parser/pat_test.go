package parser

import (
	"testing"

	"graft/internal/ast"
)

func TestPatternForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(ast.Pat) bool
	}{
		{"wildcard", "_", func(p ast.Pat) bool {
			_, ok := p.(*ast.PatWild)
			return ok
		}},
		{"binding", "x", func(p ast.Pat) bool {
			b, ok := p.(*ast.PatIdent)
			return ok && b.Ident.Name == "x" && !b.Mut && !b.ByRef
		}},
		{"mut_binding", "mut x", func(p ast.Pat) bool {
			b, ok := p.(*ast.PatIdent)
			return ok && b.Mut
		}},
		{"ref_binding", "ref x", func(p ast.Pat) bool {
			b, ok := p.(*ast.PatIdent)
			return ok && b.ByRef
		}},
		{"subpattern", "n @ 1..=9", func(p ast.Pat) bool {
			b, ok := p.(*ast.PatIdent)
			if !ok || b.Sub == nil {
				return false
			}
			_, ok = b.Sub.(*ast.PatRange)
			return ok
		}},
		{"literal", "42", func(p ast.Pat) bool {
			_, ok := p.(*ast.PatLit)
			return ok
		}},
		{"negative_literal", "-1", func(p ast.Pat) bool {
			l, ok := p.(*ast.PatLit)
			if !ok {
				return false
			}
			_, ok = l.Expr.(*ast.ExprUnary)
			return ok
		}},
		{"range", "0..=255", func(p ast.Pat) bool {
			r, ok := p.(*ast.PatRange)
			return ok && r.Inclusive
		}},
		{"legacy_range", "'a'...'z'", func(p ast.Pat) bool {
			r, ok := p.(*ast.PatRange)
			return ok && r.Inclusive
		}},
		{"path_range", "MIN..=MAX", func(p ast.Pat) bool {
			r, ok := p.(*ast.PatRange)
			if !ok {
				return false
			}
			_, lo := r.Lo.(*ast.ExprPath)
			_, hi := r.Hi.(*ast.ExprPath)
			return lo && hi
		}},
		{"unit_path", "Option::None", func(p ast.Pat) bool {
			_, ok := p.(*ast.PatPath)
			return ok
		}},
		{"tuple", "(a, b)", func(p ast.Pat) bool {
			tp, ok := p.(*ast.PatTuple)
			return ok && tp.Elems.Len() == 2
		}},
		{"grouping", "(a)", func(p ast.Pat) bool {
			_, ok := p.(*ast.PatIdent)
			return ok
		}},
		{"tuple_struct", "Some(x)", func(p ast.Pat) bool {
			ts, ok := p.(*ast.PatTupleStruct)
			return ok && ts.Elems.Len() == 1
		}},
		{"rest_in_tuple", "(first, ..)", func(p ast.Pat) bool {
			tp, ok := p.(*ast.PatTuple)
			if !ok || tp.Elems.Len() != 2 {
				return false
			}
			_, ok = tp.Elems.At(1).(*ast.PatRest)
			return ok
		}},
		{"reference", "&mut x", func(p ast.Pat) bool {
			r, ok := p.(*ast.PatReference)
			return ok && r.Mut
		}},
		{"double_reference", "&&x", func(p ast.Pat) bool {
			r, ok := p.(*ast.PatReference)
			if !ok {
				return false
			}
			_, ok = r.Pat.(*ast.PatReference)
			return ok
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := patOf(t, tt.input); !tt.check(p) {
				t.Errorf("unexpected pattern shape %T", p)
			}
		})
	}
}

func TestStructPattern(t *testing.T) {
	p := patOf(t, "Point { x, y: ref inner, .. }")
	st, ok := p.(*ast.PatStruct)
	if !ok {
		t.Fatalf("expected struct pattern, got %T", p)
	}
	if st.Fields.Len() != 2 {
		t.Fatalf("expected 2 fields, got %d", st.Fields.Len())
	}
	if !st.Fields.At(0).Shorthand {
		t.Error("first field should be shorthand")
	}
	named := st.Fields.At(1)
	if named.Shorthand {
		t.Error("second field should be named")
	}
	sub, ok := named.Pat.(*ast.PatIdent)
	if !ok || !sub.ByRef {
		t.Error("second field should bind by reference")
	}
	if !st.Rest {
		t.Error("pattern should record the .. tail")
	}
}

func TestBareIdentBindsEvenWhenUppercase(t *testing.T) {
	// Without name resolution a bare ident always binds; only qualified
	// paths become path patterns.
	p := patOf(t, "None")
	if _, ok := p.(*ast.PatIdent); !ok {
		t.Fatalf("bare ident should bind, got %T", p)
	}
}
