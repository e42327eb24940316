package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/accessible-media/lecture-flow/internal/config"
	"github.com/accessible-media/lecture-flow/internal/document"
	"github.com/accessible-media/lecture-flow/internal/logger"
	"github.com/accessible-media/lecture-flow/internal/processor"
	"github.com/accessible-media/lecture-flow/internal/slides"
	"github.com/accessible-media/lecture-flow/internal/watcher"
	"github.com/accessible-media/lecture-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Accessibility Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	rast := slides.New(cfg.Rasterizer, exec, log)
	writer := document.New(log)
	proc := processor.New(cfg, rast, writer, log)

	mode := "watch"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "watch":
		if err := runWatch(ctx, cfg, proc, log); err != nil {
			log.Error(ctx, "Watch mode failed: %v", err)
			os.Exit(1)
		}

	case "batch":
		// One-shot plain-text conversion of every VTT in the input directory
		if err := proc.ProcessTranscriptDir(ctx, cfg.Paths.TranscriptInput); err != nil {
			log.Error(ctx, "Batch conversion failed: %v", err)
			os.Exit(1)
		}

	case "lecture":
		// One-shot combined slide+transcript document
		outputPath, err := proc.ProcessLecture(ctx, cfg.Paths.LectureInput)
		if err != nil {
			log.Error(ctx, "Lecture conversion failed: %v", err)
			os.Exit(1)
		}
		log.Info(ctx, "Created: %s", outputPath)

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode %q. Usage: lectureflow [watch|batch|lecture]\n", mode)
		os.Exit(2)
	}
}

// runWatch monitors the transcript input directory and converts each new VTT
// file as it arrives.
func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	handler := func(ctx context.Context, filePath string) error {
		_, err := proc.ProcessTranscript(ctx, filePath)
		return err
	}

	w, err := watcher.New(cfg.Paths.TranscriptInput, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.TranscriptInput)
	log.Info(ctx, "Output: %s", cfg.Paths.TranscriptOutput)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("watcher: %w", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.TranscriptInput,
		cfg.Paths.TranscriptOutput,
		cfg.Paths.LectureInput,
		cfg.Paths.LectureOutput,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
