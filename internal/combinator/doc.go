// Package combinator is the generic parsing engine the grammar rules are
// built from: a value-typed cursor over an immutable token stream and a
// small set of composable primitives (match-one, alternation, repetition,
// optional, delimited groups, punctuated lists).
//
// Every primitive honors one contract: either it matches its whole
// sub-grammar and returns the advanced cursor, or it fails and returns the
// cursor exactly where it found it. Because cursors are values this costs
// nothing; failure paths just hand back the argument.
package combinator
