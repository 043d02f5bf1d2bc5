package submitter

// Phase is the observable position of one submission attempt.
type Phase string

const (
	PhaseSummaryPending Phase = "summary_pending"
	PhaseSummaryReady   Phase = "summary_ready"
	PhaseAudioPending   Phase = "audio_pending"
	PhaseAudioReady     Phase = "audio_ready"
	PhaseFailed         Phase = "failed"
)

// Event reports a phase transition to the Listener.
type Event struct {
	Phase    Phase
	Summary  string
	AudioURL string
	Err      error
}

// Listener receives phase transitions. It is called from the submitting
// flow and, for audio phases, from the background goroutine.
type Listener func(Event)
