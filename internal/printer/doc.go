// Package printer renders syntax trees back to source text.
//
// Output is canonical rather than faithful: one statement per line, four
// space indents, single spaces around binary operators. Doc comments
// survive because they live in the tree as attributes; other trivia does
// not. Re-parsing the output yields a tree structurally equal to the
// input, spans aside.
package printer
