package diag

import (
	"fmt"
)

// Code identifies a diagnostic category. Lexical codes live in the 1000
// range, syntactic codes in the 2000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical errors.
	LexUnknownChar          Code = 1001
	LexUnterminatedString   Code = 1002
	LexUnterminatedChar     Code = 1003
	LexUnterminatedComment  Code = 1004
	LexBadEscape            Code = 1005
	LexBadNumber            Code = 1006

	// Syntactic errors.
	SynUnexpectedToken   Code = 2001
	SynUnexpectedEOF     Code = 2002
	SynUnclosedDelimiter Code = 2003
	SynItemDisabled      Code = 2004
)

var codeNames = map[Code]string{
	UnknownCode:            "E0000",
	LexUnknownChar:         "L1001",
	LexUnterminatedString:  "L1002",
	LexUnterminatedChar:    "L1003",
	LexUnterminatedComment: "L1004",
	LexBadEscape:           "L1005",
	LexBadNumber:           "L1006",
	SynUnexpectedToken:     "S2001",
	SynUnexpectedEOF:       "S2002",
	SynUnclosedDelimiter:   "S2003",
	SynItemDisabled:        "S2004",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("E%04d", uint16(c))
}
