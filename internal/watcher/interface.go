package watcher

import "context"

// Watcher monitors the inbox directory for dropped files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// DropHandler receives the path of a newly dropped file.
type DropHandler func(ctx context.Context, filePath string) error
