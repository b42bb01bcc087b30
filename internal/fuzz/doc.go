// Package fuzztests houses Go fuzz harnesses that exercise the
// source -> lexer -> parser -> printer pipeline. Its goal is to smoke test
// robustness and guard against panics on arbitrary inputs, and to verify
// that rendering a parsed tree and reparsing it yields the same tree.
package fuzztests
