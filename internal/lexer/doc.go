// Package lexer scans UTF-8 source text into tokens. It is a byte-cursor
// scanner with per-class scan functions: identifiers and keywords, numeric
// literals in several radixes, cooked and raw string forms, character and
// byte literals, lifetimes, and longest-match punctuation. Whitespace and
// plain comments are dropped; doc comments survive as tokens. The scan stops
// at the first malformed construct with an *Error pointing at its start.
package lexer
