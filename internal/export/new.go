package export

import (
	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/logger"
)

type implExporter struct {
	outputDir string
	logger    logger.Logger
}

// New creates an Exporter writing into the configured output directory.
func New(cfg *config.Config, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: cfg.Paths.Output,
		logger:    log,
	}
}
