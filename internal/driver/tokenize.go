package driver

import (
	"graft/internal/diag"
	"graft/internal/lexer"
	"graft/internal/source"
	"graft/internal/token"
)

// TokenizeResult carries the token stream for one file plus anything the
// lexer reported.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Diags   []diag.Diagnostic
}

// Tokenize loads a file and runs the lexer over it. Lexical errors land in
// Diags; the returned error covers I/O problems only.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	res := &TokenizeResult{FileSet: fs, File: file}
	toks, err := lexer.Tokenize(file)
	if err != nil {
		res.Diags = append(res.Diags, toDiagnostic(err))
		return res, nil
	}
	res.Tokens = toks
	return res, nil
}

// diagnoser is implemented by every terminal error in the lexer and parser.
type diagnoser interface {
	Diagnostic() diag.Diagnostic
}

func toDiagnostic(err error) diag.Diagnostic {
	if d, ok := err.(diagnoser); ok {
		return d.Diagnostic()
	}
	return diag.New(diag.UnknownCode, source.Span{}, err.Error())
}
