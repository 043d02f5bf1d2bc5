package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danghoanglong/briefcast/internal/submitter"
)

func NewSubmitCmd(deps *Dependencies) *cobra.Command {
	var (
		texts  []string
		urls   []string
		files  []string
		media  []string
		level  string
		voice  string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit up to five inputs and receive a summary",
		Example: `  briefcast submit --text "Paste of an article body..."
  briefcast submit --file report.pdf --media talk.mp3 --url https://example.com/post
  briefcast submit --file notes.txt --level detailed --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps.App
			f := a.Formatter

			for _, text := range texts {
				item, err := a.Aggregator.AddText(text)
				if err != nil {
					return fmt.Errorf("add text: %w", err)
				}
				f.InputAdded(item)
			}
			for _, raw := range urls {
				item, err := a.Aggregator.AddURL(raw)
				if err != nil {
					return fmt.Errorf("add url %s: %w", raw, err)
				}
				f.InputAdded(item)
			}
			if len(files) > 0 {
				added, rejected, err := a.Aggregator.AddFiles(files)
				if err != nil {
					return fmt.Errorf("add files: %w", err)
				}
				for _, item := range added {
					f.InputAdded(item)
				}
				for _, r := range rejected {
					f.InputRejected(r.Path, r.Reason)
				}
			}
			if len(media) > 0 {
				added, rejected, err := a.Aggregator.AddMedia(media)
				if err != nil {
					return fmt.Errorf("add media: %w", err)
				}
				for _, item := range added {
					f.InputAdded(item)
				}
				for _, r := range rejected {
					f.InputRejected(r.Path, r.Reason)
				}
			}

			if a.Aggregator.NearCapacity() {
				f.NearCapacity(a.Aggregator.Remaining())
			}

			return runSubmission(cmd.Context(), deps, level, voice, save)
		},
	}

	cmd.Flags().StringArrayVar(&texts, "text", nil, "pasted text input (repeatable)")
	cmd.Flags().StringArrayVar(&urls, "url", nil, "web URL input (repeatable)")
	cmd.Flags().StringArrayVar(&files, "file", nil, "document file input (repeatable)")
	cmd.Flags().StringArrayVar(&media, "media", nil, "audio/video file input (repeatable)")
	cmd.Flags().StringVar(&level, "level", "", "summary level: quick, standard, detailed")
	cmd.Flags().StringVar(&voice, "voice", "", "voice for synthesized audio")
	cmd.Flags().BoolVar(&save, "save", false, "export the summary to the output directory")

	return cmd
}

// runSubmission performs one submission with the session's aggregated
// inputs and renders the two-phase outcome.
func runSubmission(ctx context.Context, deps *Dependencies, level, voice string, save bool) error {
	a := deps.App
	f := a.Formatter

	if level == "" {
		level = a.Config.Defaults.SummaryLevel
	}
	if voice == "" {
		voice = a.Config.Defaults.Voice
	}

	f.Submitting(a.Aggregator.Count())

	result, err := a.Submitter.Submit(ctx, submitter.Options{SummaryLevel: level, Voice: voice})
	if err != nil {
		f.Error(err.Error())
		return err
	}

	f.SummaryReady(result.Summary)
	for _, r := range result.Results {
		f.ItemResult(r)
	}

	if save {
		path, err := a.Exporter.SaveSummary(ctx, "Content Summary", result.Summary)
		if err != nil {
			f.Warning("Export failed: " + err.Error())
		} else {
			f.Success("Saved: " + path)
		}
	}

	// Let the background audio phase finish before the process exits.
	a.Submitter.Wait()
	return nil
}
