package app

import (
	"os"

	"github.com/danghoanglong/briefcast/internal/aggregator"
	"github.com/danghoanglong/briefcast/internal/api"
	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/export"
	"github.com/danghoanglong/briefcast/internal/logger"
	"github.com/danghoanglong/briefcast/internal/output"
	"github.com/danghoanglong/briefcast/internal/recorder"
	"github.com/danghoanglong/briefcast/internal/submitter"
	"github.com/danghoanglong/briefcast/pkg/executor"
)

// App wires one client session: the aggregator, recorder, and submitter
// share this instance and nothing is process-global.
type App struct {
	Config     *config.Config
	Logger     logger.Logger
	Client     api.Client
	Aggregator aggregator.Aggregator
	Recorder   recorder.Recorder
	Submitter  submitter.Submitter
	Exporter   export.Exporter
	Formatter  *output.Formatter
}

// New assembles a session from configuration.
func New(cfg *config.Config) *App {
	log := logger.New(cfg.Logging.Level)
	exec := executor.New()
	client := api.New(cfg, log)
	agg := aggregator.New(log)
	formatter := output.NewFormatter(os.Stdout)

	capture := recorder.NewFFmpegCapture(cfg, exec, log)
	rec := recorder.New(cfg, capture, client, exec, log)

	listener := func(ev submitter.Event) {
		switch ev.Phase {
		case submitter.PhaseAudioPending:
			formatter.AudioPending()
		case submitter.PhaseAudioReady:
			formatter.AudioReady(ev.AudioURL)
		}
	}
	sub := submitter.New(agg, client, nil, listener, log)

	return &App{
		Config:     cfg,
		Logger:     log,
		Client:     client,
		Aggregator: agg,
		Recorder:   rec,
		Submitter:  sub,
		Exporter:   export.New(cfg, log),
		Formatter:  formatter,
	}
}
