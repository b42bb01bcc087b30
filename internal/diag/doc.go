// Package diag defines the diagnostic model surfaced by the CLI: stable
// codes for lexical and syntactic failures, severities, and the Diagnostic
// value rendered by diagfmt. Parsing itself reports errors as typed Go
// errors; this package is how those errors are presented to people.
package diag
