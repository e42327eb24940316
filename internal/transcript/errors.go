package transcript

import "fmt"

// FormatError reports a malformed timing line, timestamp line, or numeric
// field. It is recoverable: the batch path logs it and moves on to the next
// file.
type FormatError struct {
	Line   int    // 1-based line number, 0 when not applicable
	Input  string // offending text
	Reason string
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("format error at line %d: %s: %q", e.Line, e.Reason, e.Input)
	case e.Input != "":
		return fmt.Sprintf("format error: %s: %q", e.Reason, e.Input)
	default:
		return "format error: " + e.Reason
	}
}

// AlignmentError reports a disagreement between the slide deck, the timestamp
// list, and the transcript timeline. It is always fatal for the run it occurs
// in: producing output would misattribute transcript text to the wrong slide.
type AlignmentError struct {
	Rule string // the specific rule violated
	Line int    // 1-based line or slide index, 0 when not applicable
}

func (e *AlignmentError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("alignment error at entry %d: %s", e.Line, e.Rule)
	}
	return "alignment error: " + e.Rule
}
