package recorder

import "context"

// State is the capture state machine position.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
	StateStopped   State = "stopped"
)

// Recorder owns microphone acquisition, the capture state machine, artifact
// assembly, and the transcription hand-off.
type Recorder interface {
	// Start begins capturing. A Start while already recording is a no-op.
	Start(ctx context.Context) error
	// Stop flushes captured chunks and assembles the audio artifact.
	Stop(ctx context.Context) error
	// ReRecord discards the current artifact and starts a fresh capture.
	ReRecord(ctx context.Context) error
	// Play replays the recorded artifact.
	Play(ctx context.Context) error
	// AcceptForTranscription sends the artifact to the backend and returns
	// the transcript. On failure the artifact is kept for retry.
	AcceptForTranscription(ctx context.Context) (string, error)
	// Discard drops any artifact and returns to idle.
	Discard(ctx context.Context)
	State() State
}

// CaptureDevice abstracts the platform audio input (ffmpeg in production,
// fakes in tests).
type CaptureDevice interface {
	// Available checks environment capability before capture starts.
	Available() error
	// Start begins writing periodic chunk files into dir.
	Start(ctx context.Context, dir string) error
	// Stop ends capture and returns whatever the capture process reported.
	Stop() (output string, err error)
}
