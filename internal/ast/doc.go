// Package ast defines the typed syntax tree produced by the parser and the
// traversals over it.
//
// Every node embeds Info, which carries the node's source span; the closed
// variant sets (Expr, Pat, Type, Item, Stmt, Lit and the smaller sums) use
// unexported marker methods, so type switches over them are exhaustive.
// Nodes are plain structs and may be built directly; the parser is just one
// producer among others.
//
// Two traversals are provided. Walk visits nodes read-only in source order,
// pre-order, with per-kind hooks that can prune subtrees. Fold rebuilds the
// tree bottom-up through per-kind rewriting hooks, leaving the input
// untouched. Equal compares trees structurally with spans ignored.
package ast
