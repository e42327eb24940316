package document

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"

	"github.com/accessible-media/lecture-flow/internal/transcript"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	// Shown in place of transcript text for a slide whose segment holds no
	// cues.
	emptySegmentPlaceholder = "(No transcript for this section)"

	slideWidthInches = 6.0
)

// WriteTranscript writes reconstructed sentences as plain text, one per line.
func (w *implWriter) WriteTranscript(ctx context.Context, sentences []string, outputPath string) error {
	var b strings.Builder
	for _, s := range sentences {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	w.logger.Debug(ctx, "Wrote %d sentence(s) to %s", len(sentences), outputPath)
	return nil
}

// WriteLecture writes the combined document: per slide, the slide image, a
// spacing paragraph, the segment text (italic placeholder when empty), and a
// page break before the next slide.
func (w *implWriter) WriteLecture(ctx context.Context, title string, slideImages []string, segments []transcript.Segment, outputPath string) error {
	if len(slideImages) != len(segments) {
		return fmt.Errorf("got %d slide image(s) for %d segment(s)", len(slideImages), len(segments))
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)

	for i, seg := range segments {
		width, height, err := imageExtent(slideImages[i])
		if err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}

		if _, err := doc.AddPicture(slideImages[i], width, height); err != nil {
			return fmt.Errorf("add slide %d image: %w", i+1, err)
		}

		doc.AddParagraph("")

		text, placeholder := segmentText(seg.Sentences)
		run := doc.AddParagraph("").AddText(text).Font(fontName).Size(fontSize).Color("000000")
		if placeholder {
			run.Italic(true)
		}

		if i < len(segments)-1 {
			doc.AddPageBreak()
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	w.logger.Debug(ctx, "Wrote %d slide(s) to %s", len(segments), outputPath)
	return nil
}

// segmentText joins a segment's sentences for display. The second return
// reports whether the placeholder was substituted for an empty segment.
func segmentText(sentences []string) (string, bool) {
	if len(sentences) == 0 {
		return emptySegmentPlaceholder, true
	}
	return strings.Join(sentences, " "), false
}

// imageExtent sizes a slide image to the fixed document width, preserving
// its aspect ratio.
func imageExtent(path string) (units.Inch, units.Inch, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open slide image: %w", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode slide image: %w", err)
	}
	if cfg.Width == 0 {
		return 0, 0, fmt.Errorf("slide image %s has zero width", path)
	}

	height := slideWidthInches * float64(cfg.Height) / float64(cfg.Width)
	return units.Inch(slideWidthInches), units.Inch(height), nil
}
