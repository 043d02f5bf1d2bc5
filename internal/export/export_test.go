package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/logger"
)

func TestSaveSummary(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Paths: config.PathsConfig{Output: dir}}
	e := New(cfg, logger.NewWithWriter(io.Discard, "error"))

	docxPath, err := e.SaveSummary(context.Background(), "Batch Summary", "# Overview\n\nThe **key** points.\n- first\n- second\n")
	if err != nil {
		t.Fatalf("SaveSummary() error = %v", err)
	}

	if !strings.HasSuffix(docxPath, ".docx") {
		t.Errorf("docx path = %s", docxPath)
	}
	if info, err := os.Stat(docxPath); err != nil || info.Size() == 0 {
		t.Errorf("docx file missing or empty: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "batch-summary-*.md"))
	if len(matches) != 1 {
		t.Fatalf("markdown files = %v", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "The **key** points.") {
		t.Errorf("markdown content = %s", data)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Batch Summary", "batch-summary"},
		{"  Spaced  Out  ", "spaced-out"},
		{"***", ""},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
