package processor

import "context"

// Processor runs the two conversion pipelines.
type Processor interface {
	// ProcessTranscript converts one WebVTT file into a plain-text transcript
	// of reconstructed sentences and returns the output path.
	ProcessTranscript(ctx context.Context, vttPath string) (string, error)

	// ProcessTranscriptDir converts every WebVTT file found in dir. A file
	// that fails to convert is logged and skipped; it never aborts its
	// siblings.
	ProcessTranscriptDir(ctx context.Context, dir string) error

	// ProcessLecture converts the slide deck, transcript and slide timestamp
	// triple found in inputDir into a combined Word document and returns the
	// output path. Alignment failures abort with no partial document.
	ProcessLecture(ctx context.Context, inputDir string) (string, error)
}
