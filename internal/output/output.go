package output

import (
	"fmt"
	"io"

	"github.com/danghoanglong/briefcast/internal/aggregator"
	"github.com/danghoanglong/briefcast/internal/api"
)

// Formatter renders user-facing status messages.
type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) InputAdded(item aggregator.PendingInput) {
	fmt.Fprintf(f.w, "➕ Added %s: %s\n", item.Type, item.Title)
}

func (f *Formatter) InputRejected(path, reason string) {
	fmt.Fprintf(f.w, "❌ Skipped %s: %s\n", path, reason)
}

func (f *Formatter) NearCapacity(remaining int) {
	fmt.Fprintf(f.w, "⚠️  Almost full: %d slot(s) left of %d\n", remaining, aggregator.MaxInputs)
}

func (f *Formatter) Submitting(count int) {
	fmt.Fprintf(f.w, "📤 Submitting %d input(s)...\n", count)
}

func (f *Formatter) SummaryReady(summary string) {
	fmt.Fprintf(f.w, "\n📋 Summary:\n\n%s\n\n", summary)
}

func (f *Formatter) ItemResult(r api.BatchItemResult) {
	name := r.Filename
	if name == "" {
		name = r.URL
	}
	if r.Success {
		fmt.Fprintf(f.w, "  ✅ %s\n", name)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, r.Error)
	}
}

func (f *Formatter) AudioPending() {
	fmt.Fprintf(f.w, "🔊 Generating audio...\n")
}

func (f *Formatter) AudioReady(url string) {
	fmt.Fprintf(f.w, "🔊 Audio ready: %s\n", url)
}

func (f *Formatter) Recording() {
	fmt.Fprintf(f.w, "🎙️  Recording... press Enter to stop\n")
}

func (f *Formatter) Transcript(text string) {
	fmt.Fprintf(f.w, "\n📝 Transcript:\n\n%s\n\n", text)
}

func (f *Formatter) Answer(answer string) {
	fmt.Fprintf(f.w, "\n💬 %s\n", answer)
}

func (f *Formatter) DocumentListHeader(count int) {
	fmt.Fprintf(f.w, "📁 Stored documents (%d):\n\n", count)
}

func (f *Formatter) DocumentListItem(d api.Document) {
	fmt.Fprintf(f.w, "  %s  %s (%d chunks, %s)\n", d.DocID, d.Title, d.ChunkCount, d.UploadTime)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}
