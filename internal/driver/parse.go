package driver

import (
	"graft/internal/ast"
	"graft/internal/diag"
	"graft/internal/parser"
	"graft/internal/source"
)

// ParseResult carries the syntax tree for one file. AST is nil when the
// parse failed; the failure is then the single entry in Diags.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.File
	Diags   []diag.Diagnostic
}

// Parse loads a file and parses it as a compilation unit.
func Parse(path string, opts parser.Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	return parseLoaded(fs, file, opts), nil
}

// ParseBytes parses an in-memory buffer under the given display path.
func ParseBytes(path string, content []byte, opts parser.Options) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.Add(path, content)
	return parseLoaded(fs, fs.Get(fileID), opts)
}

func parseLoaded(fs *source.FileSet, file *source.File, opts parser.Options) *ParseResult {
	res := &ParseResult{FileSet: fs, File: file}
	f, err := parser.ParseFile(file, opts)
	if err != nil {
		res.Diags = append(res.Diags, toDiagnostic(err))
		return res
	}
	res.AST = f
	return res
}

// Ok reports whether the parse produced a tree with no diagnostics.
func (r *ParseResult) Ok() bool {
	return r.AST != nil && len(r.Diags) == 0
}
