package diag

// Severity ranks diagnostics. The parser only ever emits errors; Info and
// Warning exist for tooling built on top (the check command, caches).
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "unknown"
	}
}
