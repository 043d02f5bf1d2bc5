package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/danghoanglong/briefcast/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// settleDelay gives the OS time to finish writing a dropped file before it
// is picked up.
const settleDelay = 500 * time.Millisecond

var supportedExtensions = map[string]bool{
	// documents
	".pdf": true, ".docx": true, ".txt": true,
	// audio
	".mp3": true, ".wav": true, ".m4a": true, ".aac": true,
	".ogg": true, ".flac": true, ".wma": true, ".opus": true,
	// video
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".webm": true, ".mkv": true, ".m4v": true,
	".3gp": true, ".mpeg": true, ".mpg": true,
}

type implWatcher struct {
	inboxDir string
	handler  DropHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// Start monitors the inbox directory until the context is cancelled.
// Each supported dropped file is routed to the handler.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Drop folder watcher started. Monitoring: %s", w.inboxDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Drop folder watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isSupportedFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New file dropped: %s", event.Name)
			time.Sleep(settleDelay)

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to take in %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func isSupportedFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsMediaPath reports whether a dropped file should be treated as media
// rather than a document.
func IsMediaPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf", ".docx", ".txt":
		return false
	default:
		return supportedExtensions[ext]
	}
}
