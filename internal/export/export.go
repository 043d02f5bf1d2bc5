package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SaveSummary writes the summary markdown plus a docx rendition and returns
// the docx path.
func (e *implExporter) SaveSummary(ctx context.Context, title, summary string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := slugify(title)
	if base == "" {
		base = "summary"
	}
	base = fmt.Sprintf("%s-%s", base, time.Now().Format("20060102-150405"))

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		title,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	mdPath := filepath.Join(e.outputDir, base+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	docxPath := filepath.Join(e.outputDir, base+".docx")
	if err := markdownToDocx(title, summary, docxPath); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}

	e.logger.Info(ctx, "Summary exported: %s", docxPath)
	return docxPath, nil
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = reUnsafe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
