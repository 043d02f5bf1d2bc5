package aggregator

import (
	"sync"

	"github.com/danghoanglong/briefcast/internal/logger"
)

type implAggregator struct {
	mu      sync.Mutex
	items   []PendingInput
	textSeq int
	logger  logger.Logger
}

// New creates an empty Aggregator for one client session.
func New(log logger.Logger) Aggregator {
	return &implAggregator{
		logger: log,
	}
}
