package diag

import (
	"graft/internal/source"
)

// Diagnostic is one reportable finding with a primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

// New builds an error-severity diagnostic.
func New(code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	}
}
