package slides

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Rasterize renders each page of the deck to a PNG in destDir.
//
// pdftoppm numbers its output files with zero-padded page numbers, so a
// lexical sort of the generated names recovers slide order. The rendered
// image count is checked against the page count reported by pdfinfo.
func (r *implRasterizer) Rasterize(ctx context.Context, pdfPath, destDir string) ([]string, error) {
	pages, err := r.pageCount(ctx, pdfPath)
	if err != nil {
		return nil, err
	}

	r.logger.Info(ctx, "Rendering %d slide(s) at %d DPI: %s", pages, r.cfg.DPI, pdfPath)

	prefix := filepath.Join(destDir, "slide")
	args := []string{
		"-png",
		"-r", strconv.Itoa(r.cfg.DPI),
		pdfPath,
		prefix,
	}

	if _, err := r.executor.Execute(ctx, r.cfg.RenderBinary, args...); err != nil {
		return nil, fmt.Errorf("render slides: %w", err)
	}

	entries, err := os.ReadDir(destDir)
	if err != nil {
		return nil, fmt.Errorf("read render dir: %w", err)
	}

	var images []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "slide-") || filepath.Ext(name) != ".png" {
			continue
		}
		images = append(images, filepath.Join(destDir, name))
	}
	sort.Strings(images)

	if len(images) != pages {
		return nil, fmt.Errorf("rendered %d image(s) for a %d-page deck", len(images), pages)
	}

	return images, nil
}

func (r *implRasterizer) pageCount(ctx context.Context, pdfPath string) (int, error) {
	out, err := r.executor.Execute(ctx, r.cfg.InfoBinary, pdfPath)
	if err != nil {
		return 0, fmt.Errorf("inspect slide deck: %w", err)
	}

	pages, err := parsePageCount(out)
	if err != nil {
		return 0, fmt.Errorf("inspect slide deck %s: %w", pdfPath, err)
	}
	return pages, nil
}

// parsePageCount extracts the Pages field from pdfinfo output.
func parsePageCount(out string) (int, error) {
	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) != "Pages" {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("bad Pages field %q", strings.TrimSpace(value))
		}
		if n <= 0 {
			return 0, fmt.Errorf("slide deck contains no pages")
		}
		return n, nil
	}

	return 0, fmt.Errorf("no Pages field in pdfinfo output")
}
