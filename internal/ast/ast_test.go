package ast

import (
	"testing"

	"graft/internal/source"
	"graft/internal/token"
)

func ident(name string) Ident {
	return Ident{Name: name}
}

func pathOf(names ...string) Path {
	var p Path
	for i, name := range names {
		p.Segments.Push(PathSegment{Ident: ident(name)})
		if i < len(names)-1 {
			p.Segments.PushSep(token.Token{Kind: token.ColonColon, Text: "::"})
		}
	}
	return p
}

func intLit(digits string, value uint64) Expr {
	return &ExprLit{Lit: &LitInt{Digits: digits, Base: 10, Value: value}}
}

// sampleExpr builds `f(x, 1 + 2 * 3)`.
func sampleExpr() Expr {
	sum := &ExprBinary{
		Op:   OpAdd,
		Left: intLit("1", 1),
		Right: &ExprBinary{
			Op:    OpMul,
			Left:  intLit("2", 2),
			Right: intLit("3", 3),
		},
	}
	call := &ExprCall{
		Func: &ExprPath{Path: pathOf("f")},
	}
	call.Args.Push(Expr(&ExprPath{Path: pathOf("x")}))
	call.Args.PushSep(token.Token{Kind: token.Comma, Text: ","})
	call.Args.Push(Expr(sum))
	return call
}

type exprRecorder struct {
	NoopVisitor
	paths []string
	lits  []uint64
}

func (r *exprRecorder) VisitExprPath(e *ExprPath) bool {
	r.paths = append(r.paths, e.Path.Segments.At(0).Ident.Name)
	return true
}

func (r *exprRecorder) VisitLit(l Lit) bool {
	if n, ok := l.(*LitInt); ok {
		r.lits = append(r.lits, n.Value)
	}
	return true
}

func TestWalkSourceOrder(t *testing.T) {
	rec := &exprRecorder{}
	Walk(rec, sampleExpr())

	wantPaths := []string{"f", "x"}
	if len(rec.paths) != len(wantPaths) {
		t.Fatalf("paths = %v, want %v", rec.paths, wantPaths)
	}
	for i, p := range wantPaths {
		if rec.paths[i] != p {
			t.Errorf("paths[%d] = %q, want %q", i, rec.paths[i], p)
		}
	}

	wantLits := []uint64{1, 2, 3}
	if len(rec.lits) != len(wantLits) {
		t.Fatalf("lits = %v, want %v", rec.lits, wantLits)
	}
	for i, n := range wantLits {
		if rec.lits[i] != n {
			t.Errorf("lits[%d] = %d, want %d", i, rec.lits[i], n)
		}
	}
}

type pruner struct {
	NoopVisitor
	visited int
}

func (p *pruner) VisitExprBinary(*ExprBinary) bool {
	p.visited++
	return false
}

func (p *pruner) VisitLit(Lit) bool {
	p.visited++
	return true
}

func TestWalkPrunesSubtree(t *testing.T) {
	p := &pruner{}
	Walk(p, sampleExpr())
	// The outer binary is pruned, so none of the three literals fire and
	// only the one binary hook runs.
	if p.visited != 1 {
		t.Fatalf("visited = %d, want 1", p.visited)
	}
}

func TestIdentityFoldEqual(t *testing.T) {
	e := sampleExpr()
	out := FoldExpr(IdentityFolder{}, e)
	if !Equal(e, out) {
		t.Fatal("identity fold changed the tree")
	}
	if out == e {
		t.Fatal("identity fold returned the input node")
	}
}

type negater struct {
	IdentityFolder
}

func (negater) FoldExprBinary(e *ExprBinary) Expr {
	if e.Op == OpAdd {
		e.Op = OpSub
	}
	return e
}

func TestFoldRewritesWithoutMutatingInput(t *testing.T) {
	e := sampleExpr()
	out := FoldExpr(negater{}, e)

	call, ok := out.(*ExprCall)
	if !ok {
		t.Fatalf("folded root is %T, want *ExprCall", out)
	}
	bin, ok := call.Args.At(1).(*ExprBinary)
	if !ok {
		t.Fatalf("folded arg is %T, want *ExprBinary", call.Args.At(1))
	}
	if bin.Op != OpSub {
		t.Errorf("folded op = %v, want OpSub", bin.Op)
	}

	orig := e.(*ExprCall).Args.At(1).(*ExprBinary)
	if orig.Op != OpAdd {
		t.Error("fold mutated the input tree")
	}
}

func TestEqualIgnoresSpans(t *testing.T) {
	a := intLit("1", 1)
	b := intLit("1", 1)
	b.(*ExprLit).Span = source.Span{Start: 10, End: 11}
	if !Equal(a, b) {
		t.Error("spans should not affect equality")
	}

	c := intLit("2", 2)
	if Equal(a, c) {
		t.Error("distinct literals compare equal")
	}
}

func TestEqualComparesTokensByKindAndText(t *testing.T) {
	mk := func(spanStart uint32) Node {
		return &ExprMacro{Mac: Macro{
			Path:  pathOf("vec"),
			Delim: DelimBracket,
			Tokens: []token.Token{
				{Kind: token.IntLit, Text: "1", Span: source.Span{Start: spanStart}},
			},
		}}
	}
	if !Equal(mk(0), mk(42)) {
		t.Error("token spans should not affect equality")
	}
}

func TestPunctuatedTrailing(t *testing.T) {
	comma := token.Token{Kind: token.Comma, Text: ","}

	var p Punctuated[Expr]
	p.Push(intLit("1", 1))
	p.PushSep(comma)
	p.Push(intLit("2", 2))
	if p.Trailing {
		t.Error("no trailing separator yet")
	}
	if err := p.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}

	p.PushSep(comma)
	if !p.Trailing {
		t.Error("trailing separator not recorded")
	}
	if err := p.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}

	var q Punctuated[Expr]
	q.Push(intLit("1", 1))
	q.PushSep(comma)
	q.Push(intLit("2", 2))
	if Equal(&ExprTuple{Elems: p}, &ExprTuple{Elems: q}) {
		t.Error("trailing flag should distinguish the sequences")
	}
}

func TestPathIsIdent(t *testing.T) {
	p := pathOf("x")
	if !p.IsIdent() {
		t.Error("single segment path should be a bare ident")
	}
	q := pathOf("std", "mem")
	if q.IsIdent() {
		t.Error("multi segment path is not a bare ident")
	}
	g := pathOf("x")
	g.Global = true
	if g.IsIdent() {
		t.Error("globally qualified path is not a bare ident")
	}
}

func TestVisibilityString(t *testing.T) {
	cases := []struct {
		vis  Visibility
		want string
	}{
		{VisInherited, ""},
		{VisPub, "pub"},
		{VisCrate, "pub(crate)"},
	}
	for _, tc := range cases {
		if got := tc.vis.String(); got != tc.want {
			t.Errorf("Visibility(%d).String() = %q, want %q", tc.vis, got, tc.want)
		}
	}
}
