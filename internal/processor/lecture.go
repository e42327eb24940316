package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/accessible-media/lecture-flow/internal/transcript"
)

// ProcessLecture runs the multimedia path end to end. Any alignment failure
// between the slide deck, the timestamp list and the transcript timeline
// aborts the run before a document is written.
func (p *implProcessor) ProcessLecture(ctx context.Context, inputDir string) (string, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting lecture conversion: %s", inputDir)
	p.logger.Info(ctx, "========================================")

	pdfPath, vttPath, txtPath, err := discoverLectureFiles(inputDir)
	if err != nil {
		return "", err
	}
	p.logger.Info(ctx, "Found slide deck: %s", filepath.Base(pdfPath))
	p.logger.Info(ctx, "Found transcript: %s", filepath.Base(vttPath))
	p.logger.Info(ctx, "Found timestamps: %s", filepath.Base(txtPath))

	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	renderDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "slides-*")
	if err != nil {
		return "", fmt.Errorf("create render dir: %w", err)
	}
	defer os.RemoveAll(renderDir)

	slideImages, err := p.rasterizer.Rasterize(ctx, pdfPath, renderDir)
	if err != nil {
		return "", fmt.Errorf("rasterize slides: %w", err)
	}
	p.logger.Info(ctx, "Rendered %d slide(s)", len(slideImages))

	vttData, err := os.ReadFile(vttPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	cues, err := transcript.ParseCues(string(vttData))
	if err != nil {
		return "", fmt.Errorf("parse transcript %s: %w", vttPath, err)
	}
	p.logger.Info(ctx, "Parsed %d cue(s)", len(cues))

	txtData, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read timestamps: %w", err)
	}
	timestamps, err := transcript.ParseTimestamps(string(txtData))
	if err != nil {
		return "", fmt.Errorf("parse timestamps %s: %w", txtPath, err)
	}
	p.logger.Info(ctx, "Parsed %d timestamp(s)", len(timestamps))

	segments, err := transcript.AlignSegments(cues, timestamps, len(slideImages))
	if err != nil {
		return "", fmt.Errorf("align transcript with slides: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Paths.LectureOutput, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	outputPath := filepath.Join(p.cfg.Paths.LectureOutput, p.cfg.Output.LecturePrefix+stem+".docx")

	if err := p.writer.WriteLecture(ctx, stem, slideImages, segments, outputPath); err != nil {
		return "", err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Lecture converted successfully!")
	p.logger.Info(ctx, "Output document: %s", outputPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return outputPath, nil
}
