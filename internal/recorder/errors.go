package recorder

import "errors"

// ErrEmptyRecording means capture produced no usable audio. The controller
// resets to idle; the user can simply record again.
var ErrEmptyRecording = errors.New("recording captured no audio")

// ErrNotRecording is returned by Stop when no capture is running.
var ErrNotRecording = errors.New("no recording in progress")

// ErrNoArtifact is returned when an operation needs a stopped recording with audio.
var ErrNoArtifact = errors.New("no recorded audio available")

// EnvReason classifies why audio capture is unavailable.
type EnvReason string

const (
	ReasonUnsupported      EnvReason = "unsupported"
	ReasonNoDevice         EnvReason = "no_device"
	ReasonPermissionDenied EnvReason = "permission_denied"
	ReasonInsecureContext  EnvReason = "insecure_context"
)

// EnvironmentError means the environment cannot capture audio at all.
// These are never retried automatically.
type EnvironmentError struct {
	Reason EnvReason
}

func (e *EnvironmentError) Error() string {
	switch e.Reason {
	case ReasonUnsupported:
		return "audio capture is not supported: ffmpeg was not found on PATH"
	case ReasonNoDevice:
		return "no audio input device is configured"
	case ReasonPermissionDenied:
		return "microphone access was denied; grant capture permission and try again"
	case ReasonInsecureContext:
		return "recording requires an https or local backend URL"
	default:
		return "audio capture is unavailable"
	}
}
