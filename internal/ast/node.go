package ast

import (
	"graft/internal/source"
)

// Info carries the source span shared by every node. It is embedded, so
// parsed nodes expose a Span field while programmatically built nodes can
// leave it zero; constructors work fine outside the parsing path.
type Info struct {
	Span source.Span
}

// NodeSpan returns the node's source span.
func (n Info) NodeSpan() source.Span { return n.Span }

// Node is anything with a source location: expressions, patterns, types,
// items, and the auxiliary composites between them.
type Node interface {
	NodeSpan() source.Span
}

// Ident is an identifier. Name never carries the raw escape prefix; `r#type`
// parses as Name "type" with Raw set.
type Ident struct {
	Info
	Name string
	Raw  bool
}

// Lifetime is a lifetime marker; Name omits the leading apostrophe.
type Lifetime struct {
	Info
	Name string
}
