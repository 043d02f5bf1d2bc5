package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	Start(ctx context.Context, name string, args ...string) (Process, error)
}

// Process is a handle to a started long-running command
type Process interface {
	// Stop interrupts the command and waits for it to exit.
	Stop() error
}
