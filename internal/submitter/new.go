package submitter

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danghoanglong/briefcast/internal/aggregator"
	"github.com/danghoanglong/briefcast/internal/api"
	"github.com/danghoanglong/briefcast/internal/logger"
)

// audioDelay is the pause between a delivered summary and the best-effort
// audio-synthesis request.
const audioDelay = 500 * time.Millisecond

type implSubmitter struct {
	agg      aggregator.Aggregator
	client   api.Client
	sched    Scheduler
	listener Listener
	logger   logger.Logger

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

// New creates a Submitter over the given aggregator and backend client.
// A nil scheduler gets the real clock; a nil listener drops events.
func New(agg aggregator.Aggregator, client api.Client, sched Scheduler, listener Listener, log logger.Logger) Submitter {
	if sched == nil {
		sched = &clockScheduler{}
	}
	if listener == nil {
		listener = func(Event) {}
	}
	return &implSubmitter{
		agg:      agg,
		client:   client,
		sched:    sched,
		listener: listener,
		logger:   log,
	}
}

type clockScheduler struct{}

func (*clockScheduler) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
