package recorder

import (
	"sync"
	"time"

	"github.com/danghoanglong/briefcast/internal/api"
	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/logger"
	"github.com/danghoanglong/briefcast/pkg/executor"
)

type implRecorder struct {
	cfg     *config.Config
	capture CaptureDevice
	client  api.Client
	exec    executor.Executor
	logger  logger.Logger

	mu         sync.Mutex
	state      State
	startedAt  time.Time
	sessionDir string
	artifact   *artifact
}

// New creates a Recorder in the idle state.
func New(cfg *config.Config, capture CaptureDevice, client api.Client, exec executor.Executor, log logger.Logger) Recorder {
	return &implRecorder{
		cfg:     cfg,
		capture: capture,
		client:  client,
		exec:    exec,
		logger:  log,
		state:   StateIdle,
	}
}
