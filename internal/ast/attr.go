package ast

import (
	"graft/internal/token"
)

// AttrStyle distinguishes `#[...]` (outer, on the following construct)
// from `#![...]` (inner, on the enclosing one).
type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// Attr is one attribute. Doc comments are represented as attributes with
// IsDoc set and the comment body in DocText; ordinary attributes keep their
// bracketed contents as an opaque token sequence after the path, e.g.
// `#[cfg(feature = "full")]` stores path `cfg` and tokens `( feature = "full" )`.
type Attr struct {
	Info
	Style   AttrStyle
	Path    Path
	Tokens  []token.Token
	IsDoc   bool
	DocText string
}
