package aggregator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MaxInputs is the hard ceiling the backend enforces per upload.
	MaxInputs = 5

	minTextLength = 10
	previewLength = 100
	maxMediaBytes = 25 * 1024 * 1024
)

// ErrCapacityExceeded is returned when an add would push the aggregate past MaxInputs.
var ErrCapacityExceeded = errors.New("maximum of 5 inputs allowed")

// ValidationError rejects a single malformed user input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var audioExtensions = map[string]bool{
	".mp3": true, ".wav": true, ".m4a": true, ".aac": true,
	".ogg": true, ".flac": true, ".wma": true, ".opus": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".flv": true, ".webm": true, ".mkv": true, ".m4v": true,
	".3gp": true, ".mpeg": true, ".mpg": true,
}

// AddText appends a pasted-text input with a derived preview and ordinal title.
func (a *implAggregator) AddText(content string) (PendingInput, error) {
	trimmed := strings.TrimSpace(content)
	if utf8.RuneCountInString(trimmed) < minTextLength {
		return PendingInput{}, &ValidationError{Reason: "text must be at least 10 characters"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.items) >= MaxInputs {
		return PendingInput{}, ErrCapacityExceeded
	}

	a.textSeq++
	item := PendingInput{
		ID:        uuid.NewString(),
		Type:      TypeText,
		Title:     fmt.Sprintf("Pasted text %d", a.textSeq),
		Preview:   makePreview(trimmed),
		SizeBytes: int64(len(trimmed)),
		Text:      trimmed,
	}
	a.items = append(a.items, item)

	a.logger.Debug(context.Background(), "Added text input %s (%d chars)", item.ID, item.SizeBytes)
	return item, nil
}

// AddURL appends a link input. Only absolute http/https URLs are admitted.
func (a *implAggregator) AddURL(raw string) (PendingInput, error) {
	raw = strings.TrimSpace(raw)

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return PendingInput{}, &ValidationError{Reason: "not a valid absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return PendingInput{}, &ValidationError{Reason: "only http and https URLs are supported"}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.items) >= MaxInputs {
		return PendingInput{}, ErrCapacityExceeded
	}

	item := PendingInput{
		ID:      uuid.NewString(),
		Type:    TypeURL,
		Title:   strings.TrimPrefix(u.Host, "www."),
		Preview: raw,
		URL:     raw,
	}
	a.items = append(a.items, item)

	a.logger.Debug(context.Background(), "Added URL input %s (%s)", item.ID, item.Title)
	return item, nil
}

// AddFiles admits a batch of document files. Admission is all-or-nothing with
// respect to capacity; files that cannot be read are individually excluded.
func (a *implAggregator) AddFiles(paths []string) ([]PendingInput, []Rejection, error) {
	return a.addFileBatch(paths, TypeFile)
}

// AddMedia admits a batch of audio/video files. Capacity is all-or-nothing;
// unsupported formats and files over the 25 MB transcription ceiling are
// individually excluded while the rest of the batch is admitted.
func (a *implAggregator) AddMedia(paths []string) ([]PendingInput, []Rejection, error) {
	return a.addFileBatch(paths, TypeMedia)
}

func (a *implAggregator) addFileBatch(paths []string, typ InputType) ([]PendingInput, []Rejection, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(paths) > MaxInputs-len(a.items) {
		return nil, nil, ErrCapacityExceeded
	}

	var added []PendingInput
	var rejected []Rejection

	for _, path := range paths {
		item, reason := a.buildFileInput(path, typ)
		if reason != "" {
			rejected = append(rejected, Rejection{Path: path, Reason: reason})
			continue
		}
		a.items = append(a.items, item)
		added = append(added, item)
	}

	a.logger.Debug(context.Background(), "Admitted %d of %d %s files", len(added), len(paths), typ)
	return added, rejected, nil
}

func (a *implAggregator) buildFileInput(path string, typ InputType) (PendingInput, string) {
	info, err := os.Stat(path)
	if err != nil {
		return PendingInput{}, "file not found or unreadable"
	}
	if info.IsDir() {
		return PendingInput{}, "is a directory"
	}

	item := PendingInput{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     filepath.Base(path),
		Preview:   fmt.Sprintf("%s (%s)", strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), ".")), formatSize(info.Size())),
		SizeBytes: info.Size(),
		Path:      path,
	}

	if typ == TypeMedia {
		ext := strings.ToLower(filepath.Ext(path))
		switch {
		case audioExtensions[ext]:
			item.Kind = KindAudio
		case videoExtensions[ext]:
			item.Kind = KindVideo
		default:
			return PendingInput{}, "unsupported media format"
		}
		if info.Size() > maxMediaBytes {
			return PendingInput{}, "media file exceeds the 25 MB transcription limit"
		}
	}

	return item, ""
}

// Remove deletes the entry with the given id; absent ids are a no-op.
func (a *implAggregator) Remove(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, item := range a.items {
		if item.ID == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the aggregate. Calling it on an empty aggregate is a no-op.
func (a *implAggregator) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.items = nil
	a.textSeq = 0
}

// Items returns a copy of the current pending inputs in insertion order.
func (a *implAggregator) Items() []PendingInput {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]PendingInput, len(a.items))
	copy(out, a.items)
	return out
}

func (a *implAggregator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

func (a *implAggregator) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return MaxInputs - len(a.items)
}

// NearCapacity reports whether the aggregate is one item away from full.
func (a *implAggregator) NearCapacity() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items) >= MaxInputs-1
}

// makePreview truncates to previewLength characters, never mid-rune.
func makePreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
