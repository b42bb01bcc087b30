package diagfmt

import (
	"encoding/json"
	"io"

	"graft/internal/diag"
	"graft/internal/source"
)

// LocationJSON is a span resolved for machine consumption. Line and column
// fields are filled only when requested.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON is one diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput is the root structure of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	loc := LocationJSON{
		StartByte: span.Start,
		EndByte:   span.End,
	}
	f := fs.Get(span.File)
	if f == nil {
		return loc
	}
	loc.File = formatPath(f.Path, opts.PathMode)
	if opts.IncludePositions {
		loc.StartLine, loc.StartCol = f.LineCol(span.Start)
		loc.EndLine, loc.EndCol = f.LineCol(span.End)
	}
	return loc
}

// BuildDiagnosticsOutput assembles the JSON output structure without
// serializing it.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	maxItems := len(diags)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	out := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range diags[:maxItems] {
		out = append(out, DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts),
		})
	}
	return DiagnosticsOutput{Diagnostics: out, Count: len(out)}
}

// JSON writes diagnostics as indented JSON.
func JSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	output := BuildDiagnosticsOutput(diags, fs, opts)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
