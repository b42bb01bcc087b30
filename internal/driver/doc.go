// Package driver wires the pipeline stages together for the CLI: loading
// files, tokenizing, parsing, batch checking with a worker pool and an
// on-disk result cache, and formatting.
package driver
