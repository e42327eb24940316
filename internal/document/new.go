package document

import (
	"github.com/accessible-media/lecture-flow/internal/logger"
)

type implWriter struct {
	logger logger.Logger
}

// New creates a Writer instance.
func New(log logger.Logger) Writer {
	return &implWriter{logger: log}
}
