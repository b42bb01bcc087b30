package printer

import (
	"errors"

	"graft/internal/ast"
)

// Options control rendering.
type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

type printer struct {
	writer *Writer
	opt    Options
}

// FormatFile renders a parsed compilation unit back to source text. The
// output is canonical: original spacing and comments other than doc
// comments are not preserved.
func FormatFile(f *ast.File, opt Options) ([]byte, error) {
	if f == nil {
		return nil, errors.New("printer: nil file")
	}
	opt = opt.withDefaults()
	w := NewWriter(opt)
	pr := printer{writer: w, opt: opt}
	pr.printFile(f)
	return w.Bytes(), nil
}

// Expr renders a single expression on one logical line.
func Expr(e ast.Expr) string {
	pr := printer{writer: NewWriter(Options{})}
	pr.printExpr(e)
	return string(pr.writer.Bytes())
}

// Type renders a single type.
func Type(t ast.Type) string {
	pr := printer{writer: NewWriter(Options{})}
	pr.printType(t)
	return string(pr.writer.Bytes())
}

// Pat renders a single pattern.
func Pat(p ast.Pat) string {
	pr := printer{writer: NewWriter(Options{})}
	pr.printPat(p)
	return string(pr.writer.Bytes())
}

// Item renders a single item.
func Item(it ast.Item) string {
	pr := printer{writer: NewWriter(Options{})}
	pr.printItem(it)
	return string(pr.writer.Bytes())
}

func (p *printer) printFile(f *ast.File) {
	for i := range f.Attrs {
		p.printAttr(&f.Attrs[i])
		p.writer.Newline()
	}
	for i, it := range f.Items {
		if i > 0 || len(f.Attrs) > 0 {
			p.writer.BlankLine()
		}
		p.printItem(it)
		p.writer.Newline()
	}
}
