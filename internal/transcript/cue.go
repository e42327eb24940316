package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Cue is one timed entry from a WebVTT transcript.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

var speakerTagRe = regexp.MustCompile(`</?v[^>]*>`)

// Texts returns the cue texts in cue order. Empty texts are kept: they still
// participate in sentence reconstruction, contributing no content.
func Texts(cues []Cue) []string {
	texts := make([]string, len(cues))
	for i, c := range cues {
		texts[i] = c.Text
	}
	return texts
}

// ParseCues splits raw WebVTT content into ordered cues.
//
// The first two lines (WEBVTT header and its blank separator) are discarded,
// then the remainder is split into blocks on blank lines. Each block holds an
// optional identifier line, a timing line "HH:MM:SS.mmm --> HH:MM:SS.mmm",
// and text lines; the last line of the block is taken as the cue text.
// Speaker markup (<v Name>, <v ->, </v>) is stripped from the text. Blocks
// without a timing line are skipped; a timing line that does not parse yields
// a FormatError.
func ParseCues(content string) ([]Cue, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	// Drop the WEBVTT header and the blank line after it.
	for n := 0; n < 2; n++ {
		idx := strings.IndexByte(content, '\n')
		if idx < 0 {
			return nil, nil
		}
		content = content[idx+1:]
	}

	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(block, "\n")
		for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
		for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
			lines = lines[:len(lines)-1]
		}

		timing := -1
		for i, line := range lines {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue // not a cue block
		}

		start, end, err := parseTimingLine(lines[timing])
		if err != nil {
			return nil, err
		}

		text := ""
		if timing+1 < len(lines) {
			text = lines[len(lines)-1]
		}
		text = strings.TrimSpace(speakerTagRe.ReplaceAllString(text, ""))

		cues = append(cues, Cue{Start: start, End: end, Text: text})
	}

	return cues, nil
}

func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.SplitN(line, "-->", 2)
	start, err := parseCueTime(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, &FormatError{Input: line, Reason: "bad cue start time"}
	}
	end, err := parseCueTime(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, &FormatError{Input: line, Reason: "bad cue end time"}
	}
	return start, end, nil
}

// parseCueTime parses the VTT timestamp form HH:MM:SS.mmm.
func parseCueTime(s string) (time.Duration, error) {
	clock, msPart, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("missing millisecond part in %q", s)
	}

	hms := strings.Split(clock, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS.mmm, got %q", s)
	}

	var fields [3]int
	for i, f := range hms {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("non-numeric field %q in %q", f, s)
		}
		fields[i] = n
	}

	ms, err := strconv.Atoi(msPart)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("non-numeric millisecond field %q in %q", msPart, s)
	}

	return time.Duration(fields[0])*time.Hour +
		time.Duration(fields[1])*time.Minute +
		time.Duration(fields[2])*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
