package yeast

import "fmt"

// FormatError reports a record that cannot be interpreted at all:
// an empty line, or a code outside the YEAST alphabet.
type FormatError struct {
	// Line is the 1-based input line number.
	Line int

	// Code is the offending code character; zero for an empty line.
	Code byte

	// Reason describes the failure.
	Reason string
}

func (e *FormatError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, string(e.Code))
}

// StructureError reports broken begin/end nesting: an end record whose
// title does not match the innermost open begin, or an end record with
// no open scope at all.
type StructureError struct {
	// EndLine, EndCode and EndTitle identify the offending end record.
	EndLine  int
	EndCode  byte
	EndTitle string

	// OpenLine, OpenCode and OpenTitle identify the begin record that
	// was open when the end record arrived. OpenLine is zero when no
	// scope was open.
	OpenLine  int
	OpenCode  byte
	OpenTitle string
}

func (e *StructureError) Error() string {
	if e.OpenLine == 0 {
		return fmt.Sprintf("line %d: end of %s (%q) with no open scope",
			e.EndLine, e.EndTitle, string(e.EndCode))
	}
	return fmt.Sprintf("line %d: end of %s (%q) does not match %s (%q) opened at line %d",
		e.EndLine, e.EndTitle, string(e.EndCode),
		e.OpenTitle, string(e.OpenCode), e.OpenLine)
}
