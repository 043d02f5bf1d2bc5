package recorder

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// wavHeaderBytes is the size of a RIFF/WAV header; a file this small carries
// no samples.
const wavHeaderBytes = 44

// Start acquires the capture device and begins buffering audio chunks.
func (r *implRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRecording {
		r.logger.Debug(ctx, "Start ignored: already recording")
		return nil
	}

	if err := r.checkEnvironment(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	dir, err := os.MkdirTemp(r.cfg.Paths.Temp, "record-*")
	if err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	if err := r.capture.Start(ctx, dir); err != nil {
		os.RemoveAll(dir)
		return err
	}

	r.sessionDir = dir
	r.startedAt = time.Now()
	r.state = StateRecording

	r.logger.Info(ctx, "Recording started")
	return nil
}

// Stop releases the capture device and assembles the buffered chunks into a
// single audio artifact.
func (r *implRecorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRecording {
		return ErrNotRecording
	}

	output, err := r.capture.Stop()
	if err != nil {
		r.logger.Warn(ctx, "Capture stop reported: %v", err)
	}

	chunks, err := filepath.Glob(filepath.Join(r.sessionDir, "chunk_*.wav"))
	if err != nil {
		chunks = nil
	}
	sort.Strings(chunks)

	if len(chunks) == 0 {
		r.resetLocked(ctx)
		if reason := classifyCaptureFailure(output); reason != nil {
			return reason
		}
		return ErrEmptyRecording
	}

	path, err := r.assemble(ctx, chunks)
	if err != nil {
		r.resetLocked(ctx)
		return fmt.Errorf("assemble recording: %w", err)
	}

	if info, err := os.Stat(path); err != nil || info.Size() <= wavHeaderBytes {
		r.resetLocked(ctx)
		return ErrEmptyRecording
	}

	r.artifact = &artifact{path: path}
	r.state = StateStopped

	r.logger.Info(ctx, "Recording stopped after %s (%d chunks)", time.Since(r.startedAt).Round(time.Second), len(chunks))
	return nil
}

// ReRecord discards the current artifact and starts a fresh capture session.
func (r *implRecorder) ReRecord(ctx context.Context) error {
	r.mu.Lock()
	r.resetLocked(ctx)
	r.mu.Unlock()

	return r.Start(ctx)
}

// Play replays the assembled artifact through ffplay.
func (r *implRecorder) Play(ctx context.Context) error {
	r.mu.Lock()
	if r.state != StateStopped || r.artifact == nil {
		r.mu.Unlock()
		return ErrNoArtifact
	}
	path := r.artifact.Path()
	r.mu.Unlock()

	if _, err := r.exec.Execute(ctx, "ffplay", "-autoexit", "-nodisp", "-loglevel", "error", path); err != nil {
		return fmt.Errorf("play recording: %w", err)
	}
	return nil
}

// AcceptForTranscription hands the artifact to the transcription endpoint.
// On success the artifact is discarded; on failure the state stays stopped
// so the user can retry or re-record.
func (r *implRecorder) AcceptForTranscription(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.state != StateStopped || r.artifact == nil {
		r.mu.Unlock()
		return "", ErrNoArtifact
	}
	path := r.artifact.Path()
	r.mu.Unlock()

	// The network call runs without the lock; the caller disables the
	// triggering control while one hand-off is in flight.
	text, err := r.client.TranscribeAudio(ctx, path)
	if err != nil {
		return "", fmt.Errorf("transcribe recording: %w", err)
	}

	r.mu.Lock()
	r.resetLocked(ctx)
	r.mu.Unlock()

	r.logger.Info(ctx, "Transcription received (%d chars)", len(text))
	return text, nil
}

// Discard drops any recorded audio and returns to idle.
func (r *implRecorder) Discard(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked(ctx)
}

func (r *implRecorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// resetLocked releases the artifact and session directory and returns to
// idle. Callers hold r.mu.
func (r *implRecorder) resetLocked(ctx context.Context) {
	if r.artifact != nil {
		if r.artifact.Release() {
			r.logger.Debug(ctx, "Released recording artifact")
		}
		r.artifact = nil
	}
	if r.sessionDir != "" {
		os.RemoveAll(r.sessionDir)
		r.sessionDir = ""
	}
	r.state = StateIdle
}

// checkEnvironment verifies capture capability and that the backend target
// is https or loopback, mirroring the secure-context requirement for
// microphone access.
func (r *implRecorder) checkEnvironment() error {
	if err := r.capture.Available(); err != nil {
		return err
	}

	u, err := url.Parse(r.cfg.Server.BaseURL)
	if err != nil {
		return &EnvironmentError{Reason: ReasonInsecureContext}
	}
	if u.Scheme == "https" {
		return nil
	}
	host := u.Hostname()
	if host == "localhost" || host == "::1" || strings.HasPrefix(host, "127.") {
		return nil
	}
	return &EnvironmentError{Reason: ReasonInsecureContext}
}

// assemble merges chunk files into one artifact. A single chunk is renamed;
// multiple chunks go through the ffmpeg concat demuxer.
func (r *implRecorder) assemble(ctx context.Context, chunks []string) (string, error) {
	outputPath := filepath.Join(r.sessionDir, "recording.wav")

	if len(chunks) == 1 {
		if err := os.Rename(chunks[0], outputPath); err != nil {
			return "", fmt.Errorf("rename chunk: %w", err)
		}
		return outputPath, nil
	}

	var list strings.Builder
	for _, chunk := range chunks {
		fmt.Fprintf(&list, "file '%s'\n", filepath.Base(chunk))
	}
	listPath := filepath.Join(r.sessionDir, "chunks.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return "", fmt.Errorf("write chunk list: %w", err)
	}

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-y",
		outputPath,
	}
	if _, err := r.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg concat: %w", err)
	}

	return outputPath, nil
}

// classifyCaptureFailure maps ffmpeg output from a failed capture to a
// distinct environment error, or nil when it looks like a plain empty take.
func classifyCaptureFailure(output string) error {
	lower := strings.ToLower(output)
	switch {
	case strings.Contains(lower, "permission denied"), strings.Contains(lower, "not permitted"):
		return &EnvironmentError{Reason: ReasonPermissionDenied}
	case strings.Contains(lower, "no such device"), strings.Contains(lower, "cannot find"), strings.Contains(lower, "input/output error"):
		return &EnvironmentError{Reason: ReasonNoDevice}
	default:
		return nil
	}
}
