package watcher

import (
	"fmt"

	"github.com/danghoanglong/briefcast/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// New creates a Watcher over the inbox directory. Dropped files are handed
// to the handler after a short settle delay.
func New(inboxDir string, handler DropHandler, log logger.Logger) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(inboxDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  fsWatcher,
	}, nil
}
