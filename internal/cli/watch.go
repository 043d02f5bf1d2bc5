package cli

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/danghoanglong/briefcast/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	var (
		level string
		voice string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Collect files dropped into the inbox directory",
		Long: "Watches the inbox directory; dropped documents and media become\n" +
			"pending inputs. Press Enter to submit the current batch, Ctrl+C to quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps.App
			f := a.Formatter

			if err := os.MkdirAll(a.Config.Paths.Inbox, 0755); err != nil {
				return err
			}

			handler := func(ctx context.Context, path string) error {
				add := a.Aggregator.AddFiles
				if watcher.IsMediaPath(path) {
					add = a.Aggregator.AddMedia
				}
				items, rejected, err := add([]string{path})
				if err != nil {
					f.Error(err.Error())
					return err
				}
				for _, item := range items {
					f.InputAdded(item)
				}
				for _, r := range rejected {
					f.InputRejected(r.Path, r.Reason)
				}
				if a.Aggregator.NearCapacity() {
					f.NearCapacity(a.Aggregator.Remaining())
				}
				return nil
			}

			w, err := watcher.New(a.Config.Paths.Inbox, handler, a.Logger)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			watchErr := make(chan error, 1)
			go func() {
				watchErr <- w.Start(ctx)
			}()

			f.Info("Watching " + a.Config.Paths.Inbox + ". Drop files there; press Enter to submit the batch.")

			lines := make(chan struct{})
			go func() {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					select {
					case lines <- struct{}{}:
					case <-ctx.Done():
						return
					}
				}
			}()

			for {
				select {
				case <-ctx.Done():
					return nil
				case err := <-watchErr:
					// A dead watcher means dropped files go unnoticed; stop
					// rather than keep running blind.
					if err != nil && !errors.Is(err, context.Canceled) {
						f.Error("Inbox watcher stopped: " + err.Error())
						return err
					}
					return nil
				case <-lines:
					if a.Aggregator.Count() == 0 {
						f.Info("No pending inputs yet.")
						continue
					}
					if err := runSubmission(ctx, deps, level, voice, save); err != nil {
						f.Warning("Batch kept; fix the problem and press Enter to retry.")
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "summary level: quick, standard, detailed")
	cmd.Flags().StringVar(&voice, "voice", "", "voice for synthesized audio")
	cmd.Flags().BoolVar(&save, "save", false, "export each summary to the output directory")

	return cmd
}
