package transcript

import (
	"errors"
	"testing"
	"time"
)

func sec(n int) time.Duration { return time.Duration(n) * time.Second }

func TestAlignSegments(t *testing.T) {
	cues := []Cue{
		{Start: sec(0), End: sec(4), Text: "Hello"},
		{Start: sec(5), End: sec(9), Text: "world."},
		{Start: sec(40), End: sec(42), Text: "Next slide"},
		{Start: sec(41), End: sec(45), Text: "starts."},
	}
	timestamps := []time.Duration{sec(0), sec(30)}

	segments, err := AlignSegments(cues, timestamps, 2)
	if err != nil {
		t.Fatalf("AlignSegments() error = %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("AlignSegments() returned %d segments, want 2", len(segments))
	}

	if len(segments[0].Cues) != 2 {
		t.Errorf("segment 0 has %d cues, want 2", len(segments[0].Cues))
	}
	if len(segments[0].Sentences) != 1 || segments[0].Sentences[0] != "Hello world." {
		t.Errorf("segment 0 sentences = %v, want [\"Hello world.\"]", segments[0].Sentences)
	}

	if len(segments[1].Cues) != 2 {
		t.Errorf("segment 1 has %d cues, want 2", len(segments[1].Cues))
	}
	if len(segments[1].Sentences) != 1 || segments[1].Sentences[0] != "Next slide starts." {
		t.Errorf("segment 1 sentences = %v, want [\"Next slide starts.\"]", segments[1].Sentences)
	}

	if segments[1].End != Unbounded {
		t.Errorf("last segment End = %v, want Unbounded", segments[1].End)
	}
}

func TestAlignSegmentsEmptySegment(t *testing.T) {
	cues := []Cue{
		{Start: sec(0), End: sec(5), Text: "Only the first slide speaks."},
		{Start: sec(65), End: sec(70), Text: "And the third."},
	}
	timestamps := []time.Duration{sec(0), sec(30), sec(60)}

	segments, err := AlignSegments(cues, timestamps, 3)
	if err != nil {
		t.Fatalf("AlignSegments() error = %v", err)
	}

	if len(segments[1].Cues) != 0 {
		t.Errorf("segment 1 has %d cues, want 0", len(segments[1].Cues))
	}
	if len(segments[1].Sentences) != 0 {
		t.Errorf("segment 1 sentences = %v, want none", segments[1].Sentences)
	}
	if len(segments[2].Sentences) != 1 {
		t.Errorf("segment 2 sentences = %v, want one", segments[2].Sentences)
	}
}

func TestAlignSegmentsBoundaryCueGoesToLaterSegment(t *testing.T) {
	cues := []Cue{
		{Start: sec(0), End: sec(5), Text: "Before."},
		{Start: sec(30), End: sec(35), Text: "Exactly on the boundary."},
	}
	timestamps := []time.Duration{sec(0), sec(30)}

	segments, err := AlignSegments(cues, timestamps, 2)
	if err != nil {
		t.Fatalf("AlignSegments() error = %v", err)
	}
	if len(segments[0].Cues) != 1 || len(segments[1].Cues) != 1 {
		t.Errorf("cue on boundary must open the next segment: %d/%d",
			len(segments[0].Cues), len(segments[1].Cues))
	}
}

func TestAlignSegmentsUnsortedCues(t *testing.T) {
	cues := []Cue{
		{Start: sec(40), End: sec(45), Text: "Late."},
		{Start: sec(0), End: sec(5), Text: "Early."},
	}
	timestamps := []time.Duration{sec(0), sec(30)}

	segments, err := AlignSegments(cues, timestamps, 2)
	if err != nil {
		t.Fatalf("AlignSegments() error = %v", err)
	}
	if len(segments[0].Cues) != 1 || segments[0].Cues[0].Text != "Early." {
		t.Errorf("segment 0 cues = %v, want the early cue", segments[0].Cues)
	}
}

func TestAlignSegmentsErrors(t *testing.T) {
	cues := []Cue{
		{Start: sec(0), End: sec(20), Text: "Short video."},
	}

	tests := []struct {
		name       string
		cues       []Cue
		timestamps []time.Duration
		slideCount int
	}{
		{
			name:       "count mismatch",
			cues:       cues,
			timestamps: []time.Duration{sec(0), sec(10)},
			slideCount: 3,
		},
		{
			name:       "timestamp beyond video end",
			cues:       cues,
			timestamps: []time.Duration{sec(0), sec(25)},
			slideCount: 2,
		},
		{
			name:       "no cues",
			cues:       nil,
			timestamps: []time.Duration{sec(0)},
			slideCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AlignSegments(tt.cues, tt.timestamps, tt.slideCount)
			var ae *AlignmentError
			if !errors.As(err, &ae) {
				t.Fatalf("AlignSegments() error = %v, want AlignmentError", err)
			}
		})
	}
}

// Every cue lands in exactly one segment, in order.
func TestAlignSegmentsPartition(t *testing.T) {
	var cues []Cue
	for i := 0; i < 20; i++ {
		cues = append(cues, Cue{Start: sec(i * 7), End: sec(i*7 + 5), Text: "x."})
	}
	timestamps := []time.Duration{sec(0), sec(25), sec(50), sec(100)}

	segments, err := AlignSegments(cues, timestamps, 4)
	if err != nil {
		t.Fatalf("AlignSegments() error = %v", err)
	}

	total := 0
	for _, seg := range segments {
		for _, c := range seg.Cues {
			if c.Start < seg.Start {
				t.Errorf("cue at %v assigned to segment starting at %v", c.Start, seg.Start)
			}
			if seg.End != Unbounded && c.Start >= seg.End {
				t.Errorf("cue at %v assigned to segment ending at %v", c.Start, seg.End)
			}
			total++
		}
	}
	if total != len(cues) {
		t.Errorf("segments hold %d cues, want %d", total, len(cues))
	}
}
