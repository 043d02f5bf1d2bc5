package submitter

import (
	"context"
	"time"

	"github.com/danghoanglong/briefcast/internal/api"
)

// Options selects how a submission is analyzed.
type Options struct {
	SummaryLevel string // quick, standard, detailed
	Voice        string
}

// Result is the primary (summary) outcome of one submission. The audio
// enhancement arrives later through the Listener.
type Result struct {
	Summary string
	Results []api.BatchItemResult
}

// Submitter reads the aggregated inputs, dispatches the correct request
// shape, and runs the two-phase summary-then-audio protocol.
type Submitter interface {
	Submit(ctx context.Context, opts Options) (*Result, error)
	// Wait blocks until any background audio phase has finished.
	Wait()
}

// Scheduler injects the delay before the audio-synthesis phase so tests do
// not depend on wall-clock time.
type Scheduler interface {
	Sleep(ctx context.Context, d time.Duration) error
}
