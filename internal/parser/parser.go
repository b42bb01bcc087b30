package parser

import (
	"fmt"

	"graft/internal/ast"
	"graft/internal/combinator"
	"graft/internal/diag"
	"graft/internal/lexer"
	"graft/internal/source"
	"graft/internal/token"
)

// GrammarProfile selects which item forms the grammar accepts.
type GrammarProfile uint8

const (
	// ProfileFull accepts the whole grammar.
	ProfileFull GrammarProfile = iota
	// ProfileDerive restricts items to the data-shape subset a derive
	// consumer needs: structs, enums, type aliases, use declarations,
	// constants and modules. Executable items are rejected.
	ProfileDerive
)

func (p GrammarProfile) String() string {
	switch p {
	case ProfileDerive:
		return "derive"
	default:
		return "full"
	}
}

// ParseProfile maps a profile name from configuration to its value.
func ParseProfile(name string) (GrammarProfile, error) {
	switch name {
	case "", "full":
		return ProfileFull, nil
	case "derive":
		return ProfileDerive, nil
	default:
		return ProfileFull, fmt.Errorf("unknown grammar profile %q", name)
	}
}

// Options configure a parse.
type Options struct {
	Profile GrammarProfile
}

// DisabledError reports an item form that the active grammar profile
// rejects.
type DisabledError struct {
	Span source.Span
	Form string
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("%s items are disabled by the grammar profile", e.Form)
}

// Diagnostic converts the error for CLI rendering.
func (e *DisabledError) Diagnostic() diag.Diagnostic {
	return diag.New(diag.SynItemDisabled, e.Span, e.Error())
}

// UnclosedError reports a delimiter group that reached end of input before
// its closing token.
type UnclosedError struct {
	Span source.Span
	Open token.Kind
}

func (e *UnclosedError) Error() string {
	return fmt.Sprintf("unclosed %s group", e.Open)
}

// Diagnostic converts the error for CLI rendering.
func (e *UnclosedError) Diagnostic() diag.Diagnostic {
	return diag.New(diag.SynUnclosedDelimiter, e.Span, e.Error())
}

type parser struct {
	opts Options
}

type cur = combinator.Cursor

// ParseFile parses a whole compilation unit: inner attributes followed by
// items, through end of input.
func ParseFile(file *source.File, opts Options) (*ast.File, error) {
	c, err := tokenize(file)
	if err != nil {
		return nil, err
	}
	p := &parser{opts: opts}
	f, c, err := p.parseFile(c)
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, combinator.Expected(c, "an item")
	}
	return f, nil
}

// ParseItem parses exactly one item, requiring end of input after it.
func ParseItem(file *source.File, opts Options) (ast.Item, error) {
	c, err := tokenize(file)
	if err != nil {
		return nil, err
	}
	p := &parser{opts: opts}
	it, c, err := p.parseItem(c)
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, combinator.Expected(c, "end of input")
	}
	return it, nil
}

// ParseExpr parses exactly one expression, requiring end of input after it.
func ParseExpr(file *source.File, opts Options) (ast.Expr, error) {
	c, err := tokenize(file)
	if err != nil {
		return nil, err
	}
	p := &parser{opts: opts}
	e, c, err := p.parseExpr(c, false)
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, combinator.Expected(c, "end of input")
	}
	return e, nil
}

// ParseType parses exactly one type, requiring end of input after it.
func ParseType(file *source.File, opts Options) (ast.Type, error) {
	c, err := tokenize(file)
	if err != nil {
		return nil, err
	}
	p := &parser{opts: opts}
	t, c, err := p.parseType(c)
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, combinator.Expected(c, "end of input")
	}
	return t, nil
}

// ParsePat parses exactly one pattern, requiring end of input after it.
func ParsePat(file *source.File, opts Options) (ast.Pat, error) {
	c, err := tokenize(file)
	if err != nil {
		return nil, err
	}
	p := &parser{opts: opts}
	pt, c, err := p.parsePat(c)
	if err != nil {
		return nil, err
	}
	if !c.EOF() {
		return nil, combinator.Expected(c, "end of input")
	}
	return pt, nil
}

func tokenize(file *source.File) (cur, error) {
	toks, err := lexer.Tokenize(file)
	if err != nil {
		return cur{}, err
	}
	return combinator.NewCursor(toks), nil
}

func (p *parser) parseFile(c cur) (*ast.File, cur, error) {
	start := c.Span()
	f := &ast.File{}
	attrs, c, err := p.parseInnerAttrs(c)
	if err != nil {
		return nil, c, err
	}
	f.Attrs = attrs
	for !c.EOF() {
		it, rest, err := p.parseItem(c)
		if err != nil {
			return nil, c, err
		}
		f.Items = append(f.Items, it)
		c = rest
	}
	f.Span = start
	if n := len(f.Items); n > 0 {
		f.Span = start.Cover(f.Items[n-1].NodeSpan())
	} else if n := len(f.Attrs); n > 0 {
		f.Span = start.Cover(f.Attrs[n-1].Span)
	}
	return f, c, nil
}

// expect consumes one token of kind k or fails without advancing.
func expect(c cur, k token.Kind) (token.Token, cur, error) {
	tok := c.Peek()
	if tok.Kind != k {
		return token.Token{}, c, combinator.Expected(c, k.String())
	}
	return tok, c.Advance(), nil
}

// eat consumes one token of kind k if present.
func eat(c cur, k token.Kind) (token.Token, cur, bool) {
	tok := c.Peek()
	if tok.Kind != k {
		return token.Token{}, c, false
	}
	return tok, c.Advance(), true
}

// identFrom converts an identifier-like token to an AST identifier.
// Path-segment keywords (self, Self, crate, super) convert too.
func identFrom(tok token.Token) ast.Ident {
	id := ast.Ident{Name: tok.IdentName(), Raw: tok.IsRawIdent()}
	id.Span = tok.Span
	return id
}

func lifetimeFrom(tok token.Token) ast.Lifetime {
	lt := ast.Lifetime{Name: tok.Text[1:]}
	lt.Span = tok.Span
	return lt
}

// parseIdent consumes a plain identifier.
func parseIdent(c cur) (ast.Ident, cur, error) {
	tok := c.Peek()
	if tok.Kind != token.Ident {
		return ast.Ident{}, c, combinator.Expected(c, "identifier")
	}
	return identFrom(tok), c.Advance(), nil
}
