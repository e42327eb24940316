package processor

import (
	"github.com/accessible-media/lecture-flow/internal/config"
	"github.com/accessible-media/lecture-flow/internal/document"
	"github.com/accessible-media/lecture-flow/internal/logger"
	"github.com/accessible-media/lecture-flow/internal/slides"
)

type implProcessor struct {
	cfg        *config.Config
	rasterizer slides.Rasterizer
	writer     document.Writer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, rast slides.Rasterizer, writer document.Writer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		rasterizer: rast,
		writer:     writer,
		logger:     log,
	}
}
