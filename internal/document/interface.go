package document

import (
	"context"

	"github.com/accessible-media/lecture-flow/internal/transcript"
)

// Writer renders pipeline output documents. It receives fully ordered
// sentence lists; it decides presentation only (placeholders, styling),
// never content.
type Writer interface {
	// WriteTranscript writes the plain-text path output, one sentence per line.
	WriteTranscript(ctx context.Context, sentences []string, outputPath string) error

	// WriteLecture writes the combined slide+transcript Word document. Slide
	// images and segments must be equal in count and in slide order.
	WriteLecture(ctx context.Context, title string, slideImages []string, segments []transcript.Segment, outputPath string) error
}
