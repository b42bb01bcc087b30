package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"graft/internal/diag"
	"graft/internal/source"
)

// Pretty formats diagnostics in a human-readable way. For each diagnostic it
// prints
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//
// followed by the source line with a caret underline under the primary span
// and opts.Context lines of surrounding code.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityColor(d.Severity)
	if opts.Color {
		sev.EnableColor()
	} else {
		sev.DisableColor()
	}

	f := fs.Get(d.Primary.File)
	if f == nil {
		fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity.String()), d.Code, d.Message)
		return
	}

	line, col := f.LineCol(d.Primary.Start)
	path := formatPath(f.Path, opts.PathMode)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, line, col, sev.Sprint(d.Severity.String()), d.Code, d.Message)

	first := int(line) - opts.Context
	if first < 1 {
		first = 1
	}
	last := int(line) + opts.Context
	if last > len(f.LineIdx) {
		last = len(f.LineIdx)
	}
	gutter := len(fmt.Sprintf("%d", last))

	for n := first; n <= last; n++ {
		ls := f.LineSpan(uint32(n))
		text := string(f.Slice(ls))
		fmt.Fprintf(w, "%*d | %s\n", gutter, n, text)
		if n == int(line) {
			fmt.Fprintf(w, "%s | %s\n", strings.Repeat(" ", gutter), sev.Sprint(underline(f, d.Primary, ls)))
		}
	}
}

// underline builds the ^~~~ marker for the part of the span that falls on
// the given line. Widths are display cells so the marker stays aligned under
// tabs and wide runes.
func underline(f *source.File, sp, lineSpan source.Span) string {
	start := sp.Start
	if start < lineSpan.Start {
		start = lineSpan.Start
	}
	end := sp.End
	if end > lineSpan.End {
		end = lineSpan.End
	}
	prefix := string(f.Content[lineSpan.Start:start])
	pad := displayWidth(prefix)

	width := 0
	if end > start {
		width = displayWidth(string(f.Content[start:end]))
	}
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", pad) + "^" + strings.Repeat("~", width-1)
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += 4
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
