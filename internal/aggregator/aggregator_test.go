package aggregator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/danghoanglong/briefcast/internal/logger"
)

func newTestAggregator() Aggregator {
	return New(logger.NewWithWriter(io.Discard, "error"))
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAddText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid text", "this is long enough to be admitted", false},
		{"too short", "short", true},
		{"whitespace only", "              ", true},
		{"whitespace padding trimmed before check", "   tiny    ", true},
		{"multibyte counted as characters not bytes", "日本語は", true},
		{"ten multibyte characters admitted", "日本語で書かれた文章", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAggregator()
			item, err := a.AddText(tt.content)

			if (err != nil) != tt.wantErr {
				t.Fatalf("AddText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("error type = %T, want *ValidationError", err)
				}
				if a.Count() != 0 {
					t.Error("rejected add mutated the aggregate")
				}
				return
			}
			if item.Type != TypeText || item.ID == "" {
				t.Errorf("item = %+v", item)
			}
			if a.Count() != 1 {
				t.Errorf("Count() = %d, want 1", a.Count())
			}
		})
	}
}

func TestAddTextPreviewAndTitle(t *testing.T) {
	a := newTestAggregator()

	long := strings.Repeat("a", 150)
	first, err := a.AddText(long)
	if err != nil {
		t.Fatal(err)
	}
	if first.Preview != strings.Repeat("a", 100)+"..." {
		t.Errorf("Preview = %q", first.Preview)
	}
	if first.Title != "Pasted text 1" {
		t.Errorf("Title = %q", first.Title)
	}

	second, _ := a.AddText("another pasted snippet of text")
	if second.Title != "Pasted text 2" {
		t.Errorf("Title = %q", second.Title)
	}
	if second.Preview != "another pasted snippet of text" {
		t.Errorf("short text should be its own preview, got %q", second.Preview)
	}
}

func TestAddTextMultibytePreview(t *testing.T) {
	a := newTestAggregator()

	item, err := a.AddText(strings.Repeat("語", 150))
	if err != nil {
		t.Fatal(err)
	}
	if !utf8.ValidString(item.Preview) {
		t.Fatalf("preview is not valid UTF-8: %q", item.Preview)
	}
	if item.Preview != strings.Repeat("語", 100)+"..." {
		t.Errorf("Preview = %q, want 100 characters plus ellipsis", item.Preview)
	}
}

func TestAddURL(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantErr   bool
		wantTitle string
	}{
		{"https with query", "https://example.com/a?b=1", false, "example.com"},
		{"www stripped", "https://www.example.com/page", false, "example.com"},
		{"plain http", "http://news.site.org", false, "news.site.org"},
		{"not a url", "not-a-url", true, ""},
		{"ftp scheme", "ftp://x", true, ""},
		{"relative path", "/just/a/path", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAggregator()
			item, err := a.AddURL(tt.raw)

			if (err != nil) != tt.wantErr {
				t.Fatalf("AddURL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				if a.Count() != 0 {
					t.Error("rejected URL mutated the aggregate")
				}
				return
			}
			if item.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", item.Title, tt.wantTitle)
			}
		})
	}
}

func TestCapacityNeverExceeded(t *testing.T) {
	a := newTestAggregator()

	for i := 0; i < MaxInputs; i++ {
		if _, err := a.AddText(fmt.Sprintf("pending input number %d for capacity", i)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	if _, err := a.AddText("the sixth item must always be rejected"); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("sixth AddText error = %v, want ErrCapacityExceeded", err)
	}
	if _, err := a.AddURL("https://example.com"); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("sixth AddURL error = %v, want ErrCapacityExceeded", err)
	}
	path := writeTempFile(t, "doc.txt", "contents")
	if _, _, err := a.AddFiles([]string{path}); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("sixth AddFiles error = %v, want ErrCapacityExceeded", err)
	}

	if a.Count() != MaxInputs {
		t.Errorf("Count() = %d after rejections, want %d", a.Count(), MaxInputs)
	}
}

func TestAddFilesBatchAllOrNothing(t *testing.T) {
	a := newTestAggregator()

	// Fill to 3, leaving room for 2.
	for i := 0; i < 3; i++ {
		a.AddText(fmt.Sprintf("pending input number %d for capacity", i))
	}

	paths := []string{
		writeTempFile(t, "one.txt", "1"),
		writeTempFile(t, "two.txt", "2"),
		writeTempFile(t, "three.txt", "3"),
	}

	// Batch of 3 with 2 slots free: whole batch rejected, nothing admitted.
	if _, _, err := a.AddFiles(paths); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("AddFiles() error = %v, want ErrCapacityExceeded", err)
	}
	if a.Count() != 3 {
		t.Errorf("Count() = %d, partial admission happened", a.Count())
	}

	added, rejected, err := a.AddFiles(paths[:2])
	if err != nil {
		t.Fatalf("AddFiles() error = %v", err)
	}
	if len(added) != 2 || len(rejected) != 0 {
		t.Errorf("added = %d, rejected = %d", len(added), len(rejected))
	}
}

func TestAddMediaFiltering(t *testing.T) {
	a := newTestAggregator()

	song := writeTempFile(t, "song.mp3", "fake-audio")
	clip := writeTempFile(t, "clip.mp4", "fake-video")
	doc := writeTempFile(t, "notes.pdf", "not media")

	added, rejected, err := a.AddMedia([]string{song, clip, doc})
	if err != nil {
		t.Fatalf("AddMedia() error = %v", err)
	}

	if len(added) != 2 {
		t.Fatalf("added = %d, want 2", len(added))
	}
	if added[0].Kind != KindAudio {
		t.Errorf("song kind = %s, want audio", added[0].Kind)
	}
	if added[1].Kind != KindVideo {
		t.Errorf("clip kind = %s, want video", added[1].Kind)
	}

	if len(rejected) != 1 || rejected[0].Path != doc {
		t.Fatalf("rejected = %+v", rejected)
	}
	if !strings.Contains(rejected[0].Reason, "unsupported") {
		t.Errorf("rejection reason = %q", rejected[0].Reason)
	}
}

func TestRemoveAndClear(t *testing.T) {
	a := newTestAggregator()

	item, _ := a.AddText("the first pending input in the list")
	a.AddText("the second pending input in the list")

	if !a.Remove(item.ID) {
		t.Error("Remove() = false for present id")
	}
	if a.Remove(item.ID) {
		t.Error("Remove() = true for already-removed id")
	}
	if a.Remove("no-such-id") {
		t.Error("Remove() = true for unknown id")
	}
	if a.Count() != 1 {
		t.Errorf("Count() = %d, want 1", a.Count())
	}

	a.Clear()
	if a.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", a.Count())
	}

	// Second Clear is a no-op and both leave the aggregate empty.
	a.Clear()
	if a.Count() != 0 {
		t.Errorf("Count() = %d after second Clear, want 0", a.Count())
	}
}

func TestNearCapacity(t *testing.T) {
	a := newTestAggregator()

	for i := 0; i < 3; i++ {
		a.AddText(fmt.Sprintf("pending input number %d for capacity", i))
	}
	if a.NearCapacity() {
		t.Error("NearCapacity() = true at 3 items")
	}

	a.AddText("the fourth pending input in the list")
	if !a.NearCapacity() {
		t.Error("NearCapacity() = false at 4 items")
	}
	if a.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", a.Remaining())
	}
}
