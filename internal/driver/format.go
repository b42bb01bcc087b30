package driver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"graft/internal/ast"
	"graft/internal/parser"
	"graft/internal/printer"
)

// Format parses a file and renders it back in canonical form. Parse
// failures surface as errors since there is no tree to render.
func Format(path string, popts parser.Options, fopts printer.Options) ([]byte, error) {
	res, err := Parse(path, popts)
	if err != nil {
		return nil, err
	}
	if res.AST == nil {
		return nil, fmt.Errorf("%s: %s", path, res.Diags[0].Message)
	}
	return printer.FormatFile(res.AST, fopts)
}

// FormatOptions configure a batch format run.
type FormatOptions struct {
	Parser  parser.Options
	Printer printer.Options
	// Write rewrites changed files in place.
	Write bool
}

// FormatResult is the outcome of formatting one file. Err covers both IO
// failures and parse errors; Formatted is nil in that case.
type FormatResult struct {
	Path      string
	Formatted []byte
	Changed   bool
	Err       error
}

// FormatPaths formats every listed file concurrently and returns one result
// per file, in input order. Per-file failures land in the result rather
// than aborting the run.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	results := make([]FormatResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(p, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func formatOne(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}
	original, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	parsed := ParseBytes(path, original, opts.Parser)
	if parsed.AST == nil {
		res.Err = fmt.Errorf("%s", parsed.Diags[0].Message)
		return res
	}
	formatted, err := printer.FormatFile(parsed.AST, opts.Printer)
	if err != nil {
		res.Err = err
		return res
	}
	res.Formatted = formatted
	res.Changed = !bytes.Equal(original, formatted)
	if opts.Write && res.Changed {
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			res.Err = err
		}
	}
	return res
}

// CheckRoundTrip renders a parsed file and re-parses the output, verifying
// that the tree survives unchanged. Used by fmt --check and the fuzzers.
func CheckRoundTrip(path string, popts parser.Options, fopts printer.Options) (ok bool, msg string) {
	res, err := Parse(path, popts)
	if err != nil {
		return false, "fmt-check: " + err.Error()
	}
	if res.AST == nil {
		return false, "fmt-check: initial parse failed: " + res.Diags[0].Message
	}
	rendered, err := printer.FormatFile(res.AST, fopts)
	if err != nil {
		return false, "fmt-check: printer failed: " + err.Error()
	}
	again := ParseBytes(path, rendered, popts)
	if again.AST == nil {
		return false, "fmt-check: reparse failed: " + again.Diags[0].Message
	}
	if !ast.Equal(res.AST, again.AST) {
		return false, "fmt-check: tree differs after round-trip"
	}
	return true, "fmt-check: OK"
}
