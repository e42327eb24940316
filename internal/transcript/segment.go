package transcript

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Unbounded marks the open end of the last segment, which extends to the end
// of the video.
const Unbounded = time.Duration(math.MaxInt64)

// Segment is the time-bounded slice of the transcript shown alongside one
// slide: the half-open interval [Start, End) plus the cues starting inside it
// and their reconstructed sentences.
type Segment struct {
	Index     int
	Start     time.Duration
	End       time.Duration
	Cues      []Cue
	Sentences []string
}

// AlignSegments partitions cues across slides by the timestamp list.
//
// The timestamp count must equal slideCount, the cue list must be non-empty,
// and every timestamp must fall within the timeline spanned by the cues; any
// disagreement fails with an AlignmentError and no partial result. Cues are
// sorted by start time once and bucketed with a single forward pass over the
// boundaries, so each cue lands in exactly one segment and the segments cover
// the whole timeline with no gap or overlap. Sentences are reconstructed
// fresh per segment: a sentence never spans a slide boundary.
//
// A segment may end up with no cues; it carries an empty sentence list and is
// valid.
func AlignSegments(cues []Cue, timestamps []time.Duration, slideCount int) ([]Segment, error) {
	if len(timestamps) != slideCount {
		return nil, &AlignmentError{
			Rule: fmt.Sprintf("slide count (%d) does not match timestamp count (%d)", slideCount, len(timestamps)),
		}
	}
	if len(cues) == 0 {
		return nil, &AlignmentError{Rule: "transcript contains no cues"}
	}

	var videoEnd time.Duration
	for _, c := range cues {
		if c.End > videoEnd {
			videoEnd = c.End
		}
	}
	for i, ts := range timestamps {
		if ts > videoEnd {
			return nil, &AlignmentError{
				Rule: fmt.Sprintf("timestamp %s exceeds video duration %s",
					FormatTimestamp(ts), FormatTimestamp(videoEnd)),
				Line: i + 1,
			}
		}
	}

	sorted := make([]Cue, len(cues))
	copy(sorted, cues)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	segments := make([]Segment, slideCount)
	next := 0
	for i := 0; i < slideCount; i++ {
		end := Unbounded
		if i+1 < slideCount {
			end = timestamps[i+1]
		}

		seg := Segment{Index: i, Start: timestamps[i], End: end}
		for next < len(sorted) && sorted[next].Start < end {
			seg.Cues = append(seg.Cues, sorted[next])
			next++
		}

		seg.Sentences = ReconstructSentences(Texts(seg.Cues))

		segments[i] = seg
	}

	return segments, nil
}
