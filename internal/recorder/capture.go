package recorder

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/logger"
	"github.com/danghoanglong/briefcast/pkg/executor"
)

// chunkPattern names the periodic segment files ffmpeg writes while recording.
const chunkPattern = "chunk_%03d.wav"

type ffmpegCapture struct {
	cfg    *config.Config
	exec   executor.Executor
	logger logger.Logger
	proc   executor.Process
	stderr func() string
}

// NewFFmpegCapture creates the production CaptureDevice over ffmpeg.
func NewFFmpegCapture(cfg *config.Config, exec executor.Executor, log logger.Logger) CaptureDevice {
	return &ffmpegCapture{
		cfg:    cfg,
		exec:   exec,
		logger: log,
	}
}

func (c *ffmpegCapture) Available() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return &EnvironmentError{Reason: ReasonUnsupported}
	}
	if c.cfg.Recording.Device == "" {
		return &EnvironmentError{Reason: ReasonNoDevice}
	}
	return nil
}

// Start launches ffmpeg capturing 16kHz mono WAV in ~1s segments, the
// transcription-friendly format, with each chunk flushed as its own file.
func (c *ffmpegCapture) Start(ctx context.Context, dir string) error {
	args := []string{
		"-f", c.cfg.Recording.InputFormat,
		"-i", c.cfg.Recording.Device,
		"-ac", "1", // Mono
		"-ar", "16000", // 16kHz sample rate
		"-f", "segment",
		"-segment_time", strconv.Itoa(c.cfg.Recording.ChunkSeconds),
		"-reset_timestamps", "1",
		"-y",
		filepath.Join(dir, chunkPattern),
	}

	c.logger.Info(ctx, "Starting audio capture (%s, device %s)", c.cfg.Recording.InputFormat, c.cfg.Recording.Device)

	proc, err := c.exec.Start(ctx, "ffmpeg", args...)
	if err != nil {
		return fmt.Errorf("start capture: %w", err)
	}
	c.proc = proc

	if sp, ok := proc.(interface{ Stderr() string }); ok {
		c.stderr = sp.Stderr
	}
	return nil
}

func (c *ffmpegCapture) Stop() (string, error) {
	if c.proc == nil {
		return "", ErrNotRecording
	}
	err := c.proc.Stop()
	c.proc = nil

	var output string
	if c.stderr != nil {
		output = c.stderr()
	}
	return output, err
}
