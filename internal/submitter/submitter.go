package submitter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danghoanglong/briefcast/internal/aggregator"
	"github.com/danghoanglong/briefcast/internal/api"
)

// minAudioLength is the summary length below which no audio is synthesized.
const minAudioLength = 10

// ErrNoInput is returned when Submit is called with an empty aggregate.
var ErrNoInput = errors.New("no inputs to submit")

// ErrSubmissionInFlight rejects a second submission while one is outstanding.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Submit dispatches the aggregated inputs and runs the two-phase protocol:
// the summary is delivered first and the inputs cleared, then audio
// synthesis is attempted in the background and allowed to fail silently.
func (s *implSubmitter) Submit(ctx context.Context, opts Options) (*Result, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	items := s.agg.Items()
	if len(items) == 0 {
		return nil, ErrNoInput
	}

	s.emit(Event{Phase: PhaseSummaryPending})

	var result *Result
	var err error
	if isSimple(items) {
		result, err = s.submitSimple(ctx, items[0], opts)
	} else {
		result, err = s.submitBatch(ctx, items, opts)
	}
	if err != nil {
		s.emit(Event{Phase: PhaseFailed, Err: err})
		return nil, err
	}

	// Inputs are cleared only once delivery succeeded.
	s.agg.Clear()
	s.emit(Event{Phase: PhaseSummaryReady, Summary: result.Summary})

	if len(strings.TrimSpace(result.Summary)) > minAudioLength {
		s.wg.Add(1)
		go s.audioPhase(ctx, result.Summary, opts.Voice)
	}

	return result, nil
}

// Wait blocks until any background audio phase has finished.
func (s *implSubmitter) Wait() {
	s.wg.Wait()
}

// isSimple reports whether the aggregate is exactly one text item and
// nothing else. Any other mix, including one text plus one file, goes
// multi-part.
func isSimple(items []aggregator.PendingInput) bool {
	return len(items) == 1 && items[0].Type == aggregator.TypeText
}

func (s *implSubmitter) submitSimple(ctx context.Context, item aggregator.PendingInput, opts Options) (*Result, error) {
	s.logger.Info(ctx, "Submitting single text input (%s summary)", opts.SummaryLevel)

	res, err := s.client.ProcessText(ctx, item.Text, opts.SummaryLevel, opts.Voice)
	if err != nil {
		return nil, fmt.Errorf("process text: %w", err)
	}
	return &Result{Summary: res.Summary}, nil
}

func (s *implSubmitter) submitBatch(ctx context.Context, items []aggregator.PendingInput, opts Options) (*Result, error) {
	req := api.BatchRequest{
		SummaryLevel: opts.SummaryLevel,
		Voice:        opts.Voice,
	}

	var toClose []*os.File
	defer func() {
		for _, f := range toClose {
			f.Close()
		}
	}()

	textSeq := 0
	for _, item := range items {
		switch item.Type {
		case aggregator.TypeText:
			// Texts ride along as synthetic plain-text attachments so the
			// backend sees a uniform file list.
			textSeq++
			req.Files = append(req.Files, api.FilePart{
				Filename: fmt.Sprintf("pasted-text-%d.txt", textSeq),
				Reader:   strings.NewReader(item.Text),
			})
		case aggregator.TypeFile, aggregator.TypeMedia:
			f, err := os.Open(item.Path)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", item.Path, err)
			}
			toClose = append(toClose, f)
			part := api.FilePart{Filename: item.Title, Reader: f}
			if item.Type == aggregator.TypeMedia {
				req.MediaFiles = append(req.MediaFiles, part)
			} else {
				req.Files = append(req.Files, part)
			}
		case aggregator.TypeURL:
			req.URLs = append(req.URLs, item.URL)
		}
	}

	s.logger.Info(ctx, "Submitting batch: %d files, %d media, %d urls (%s summary)",
		len(req.Files), len(req.MediaFiles), len(req.URLs), opts.SummaryLevel)

	res, err := s.client.UploadBatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("upload batch: %w", err)
	}
	return &Result{Summary: res.CombinedSummary, Results: res.Results}, nil
}

// audioPhase requests speech synthesis for the delivered summary. Failures
// are logged and swallowed; the summary result is already on screen and
// audio is an enhancement, not a required result.
func (s *implSubmitter) audioPhase(ctx context.Context, summary, voice string) {
	defer s.wg.Done()

	s.emit(Event{Phase: PhaseAudioPending, Summary: summary})

	if err := s.sched.Sleep(ctx, audioDelay); err != nil {
		s.logger.Debug(ctx, "Audio phase cancelled: %v", err)
		return
	}

	audioURL, err := s.client.GenerateAudio(ctx, summary, voice)
	if err != nil {
		s.logger.Warn(ctx, "Audio synthesis failed (summary already delivered): %v", err)
		return
	}

	s.emit(Event{Phase: PhaseAudioReady, Summary: summary, AudioURL: audioURL})
}

func (s *implSubmitter) emit(ev Event) {
	s.listener(ev)
}
