package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

// Start launches an external command and returns a handle to stop it later.
// Used for capture processes that run until explicitly interrupted.
func (e *implExecutor) Start(ctx context.Context, name string, args ...string) (Process, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command '%s': %w", name, err)
	}

	return &implProcess{cmd: cmd, name: name, stderr: &stderr}, nil
}

type implProcess struct {
	cmd    *exec.Cmd
	name   string
	stderr *bytes.Buffer
}

// Stop sends an interrupt so the command can finalize its output, then waits.
// An exit error after an interrupt is the expected shutdown path (ffmpeg exits
// non-zero on SIGINT) and is not reported.
func (p *implProcess) Stop() error {
	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		// Interrupt is unsupported on some platforms; fall back to kill.
		if killErr := p.cmd.Process.Kill(); killErr != nil {
			return fmt.Errorf("stop command '%s': %w", p.name, killErr)
		}
	}

	p.cmd.Wait()
	return nil
}

// Stderr returns what the command wrote to stderr so far.
func (p *implProcess) Stderr() string {
	return strings.TrimSpace(p.stderr.String())
}
