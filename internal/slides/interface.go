package slides

import "context"

// Rasterizer renders a slide deck into ordered per-slide raster images.
type Rasterizer interface {
	// Rasterize writes one PNG per slide into destDir and returns the image
	// paths in source slide order.
	Rasterize(ctx context.Context, pdfPath, destDir string) ([]string, error)
}
