package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedEOF      Code = 2002
	SynBadQualifier       Code = 2003
	SynMissingWhitespace  Code = 2004
	SynUnbalancedTemplate Code = 2005
	SynMissingName        Code = 2006

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001

	// Golden fixtures
	FixInfo     Code = 5000
	FixDecode   Code = 5001
	FixMismatch Code = 5002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unrecognized character",
		SynInfo:               "Syntax information",
		SynUnexpectedToken:    "Unexpected token",
		SynUnexpectedEOF:      "Unexpected end of input",
		SynBadQualifier:       "Invalid trailing qualifier",
		SynMissingWhitespace:  "Missing whitespace separator",
		SynUnbalancedTemplate: "Unbalanced template brackets",
		SynMissingName:        "Missing member name",
		IOInfo:                "I/O information",
		IOLoadFileError:       "I/O load file error",
		FixInfo:               "Fixture information",
		FixDecode:             "Malformed fixture record",
		FixMismatch:           "Fixture mismatch",
		ObsInfo:               "Observability information",
		ObsTimings:            "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("FIX%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
