package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/accessible-media/lecture-flow/internal/transcript"
)

// ProcessTranscript runs the plain-text path: parse cues, reconstruct
// sentences, write one sentence per line.
func (p *implProcessor) ProcessTranscript(ctx context.Context, vttPath string) (string, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Converting transcript: %s", vttPath)

	data, err := os.ReadFile(vttPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	cues, err := transcript.ParseCues(string(data))
	if err != nil {
		return "", fmt.Errorf("parse transcript %s: %w", vttPath, err)
	}

	sentences := transcript.ReconstructSentences(transcript.Texts(cues))

	if err := os.MkdirAll(p.cfg.Paths.TranscriptOutput, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(vttPath), filepath.Ext(vttPath))
	outputPath := filepath.Join(p.cfg.Paths.TranscriptOutput, p.cfg.Output.TranscriptPrefix+stem+".txt")

	if err := p.writer.WriteTranscript(ctx, sentences, outputPath); err != nil {
		return "", err
	}

	p.logger.Info(ctx, "Transcript converted: %s (%d cues, %d sentences, %s)",
		outputPath, len(cues), len(sentences), time.Since(startTime))
	return outputPath, nil
}

// ProcessTranscriptDir converts all WebVTT files in dir. Each file's pipeline
// is independent, so files are converted with bounded concurrency; a failure
// in one file is logged and never aborts the rest of the batch.
func (p *implProcessor) ProcessTranscriptDir(ctx context.Context, dir string) error {
	vttFiles, err := discoverTranscripts(dir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}

	if len(vttFiles) == 0 {
		p.logger.Info(ctx, "No VTT files found in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d transcript(s) to convert", len(vttFiles))

	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup

	for _, vttPath := range vttFiles {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			if _, err := p.ProcessTranscript(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			}
		}(vttPath)
	}

	wg.Wait()
	return nil
}

func discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".vtt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
