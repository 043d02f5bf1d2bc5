package export

import "context"

// Exporter persists delivered summaries into the output directory.
type Exporter interface {
	// SaveSummary writes the summary as markdown and a styled docx and
	// returns the docx path.
	SaveSummary(ctx context.Context, title, summary string) (string, error)
}
