// Package parser turns token streams into the typed syntax tree in
// internal/ast.
//
// The grammar is recursive descent over a combinator cursor. Rules take a
// cursor value and return the parsed node plus the cursor past it; on
// failure they return the original cursor, so alternation never observes
// partial consumption. Expression parsing climbs a precedence table, with
// assignment and ranges layered outside it.
//
// Entry points exist for whole files, single items, expressions, types and
// patterns. Each requires the input to be fully consumed. Options select a
// grammar profile: the derive profile accepts only data-shape items and
// reports everything else as disabled.
package parser
