package transcript

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamps parses a slide timestamp list, one [H:]MM:SS entry per
// line, into durations from video start. Blank lines are skipped.
//
// Malformed lines fail with a FormatError naming the line. The parsed list
// must start at zero and be strictly ascending; violations fail with an
// AlignmentError naming the offending entry.
func ParseTimestamps(content string) ([]time.Duration, error) {
	var stamps []time.Duration
	var lineNos []int

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		d, reason := parseClock(line)
		if reason != "" {
			return nil, &FormatError{Line: i + 1, Input: line, Reason: reason}
		}

		stamps = append(stamps, d)
		lineNos = append(lineNos, i+1)
	}

	if len(stamps) == 0 {
		return nil, &FormatError{Reason: "timestamp list contains no entries"}
	}

	if stamps[0] != 0 {
		return nil, &AlignmentError{
			Rule: fmt.Sprintf("first timestamp must be 00:00, got %s", FormatTimestamp(stamps[0])),
			Line: lineNos[0],
		}
	}

	for i := 1; i < len(stamps); i++ {
		if stamps[i] <= stamps[i-1] {
			return nil, &AlignmentError{
				Rule: fmt.Sprintf("timestamps must be ascending: %s is not greater than %s",
					FormatTimestamp(stamps[i]), FormatTimestamp(stamps[i-1])),
				Line: lineNos[i],
			}
		}
	}

	return stamps, nil
}

// parseClock parses one [H:]MM:SS entry. Hours default to zero when omitted.
// An empty reason means success.
func parseClock(s string) (time.Duration, string) {
	parts := strings.Split(s, ":")

	var hStr, mStr, sStr string
	switch len(parts) {
	case 2:
		hStr, mStr, sStr = "0", parts[0], parts[1]
	case 3:
		hStr, mStr, sStr = parts[0], parts[1], parts[2]
	default:
		return 0, "expected HH:MM:SS or MM:SS"
	}

	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, "expected numeric values"
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return 0, "expected numeric values"
	}
	sec, err := strconv.Atoi(sStr)
	if err != nil {
		return 0, "expected numeric values"
	}

	if h < 0 || m < 0 || sec < 0 {
		return 0, "values must be >= 0"
	}
	if m >= 60 {
		return 0, "minutes must be < 60"
	}
	if sec >= 60 {
		return 0, "seconds must be < 60"
	}

	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, ""
}

// FormatTimestamp renders a duration as H:MM:SS. Sub-second precision is
// dropped; parsing the result yields the same whole-second duration.
func FormatTimestamp(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
