package slides

import (
	"github.com/accessible-media/lecture-flow/internal/config"
	"github.com/accessible-media/lecture-flow/internal/logger"
	"github.com/accessible-media/lecture-flow/pkg/executor"
)

type implRasterizer struct {
	cfg      config.RasterizerConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Rasterizer backed by the poppler utilities (pdftoppm and
// pdfinfo).
func New(cfg config.RasterizerConfig, exec executor.Executor, log logger.Logger) Rasterizer {
	return &implRasterizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
