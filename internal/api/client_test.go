package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/danghoanglong/briefcast/internal/config"
	"github.com/danghoanglong/briefcast/internal/logger"
)

func newTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{BaseURL: srv.URL, TimeoutSeconds: 5},
	}
	return New(cfg, logger.NewWithWriter(io.Discard, "error"))
}

func TestProcessText(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/process-content" {
			t.Errorf("path = %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		for _, want := range []string{`"type":"text"`, `"summary_level":"quick"`, `"voice":"nova"`} {
			if !strings.Contains(string(body), want) {
				t.Errorf("request body missing %s: %s", want, body)
			}
		}
		w.Write([]byte(`{"success": true, "summary": "a short summary", "qa_stored": true}`))
	}))

	result, err := c.ProcessText(context.Background(), "some pasted text", "quick", "nova")
	if err != nil {
		t.Fatalf("ProcessText() error = %v", err)
	}
	if result.Summary != "a short summary" {
		t.Errorf("Summary = %q", result.Summary)
	}
	if !result.QAStored {
		t.Error("QAStored = false, want true")
	}
}

func TestUploadBatchFields(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := len(r.MultipartForm.File["files"]); got != 2 {
			t.Errorf("files parts = %d, want 2", got)
		}
		if got := len(r.MultipartForm.File["media_files"]); got != 1 {
			t.Errorf("media_files parts = %d, want 1", got)
		}
		if got := r.Form["urls"]; len(got) != 2 || got[0] != "https://a.example.com" {
			t.Errorf("urls = %v", got)
		}
		if r.FormValue("summary_level") != "standard" || r.FormValue("voice") != "echo" {
			t.Errorf("summary_level=%s voice=%s", r.FormValue("summary_level"), r.FormValue("voice"))
		}
		w.Write([]byte(`{"success": true, "combined_summary": "combined", "results": [{"type":"file","filename":"a.txt","success":true}]}`))
	}))

	result, err := c.UploadBatch(context.Background(), BatchRequest{
		Files: []FilePart{
			{Filename: "a.txt", Reader: strings.NewReader("aaa")},
			{Filename: "pasted-text-1.txt", Reader: strings.NewReader("bbb")},
		},
		MediaFiles: []FilePart{
			{Filename: "talk.mp3", Reader: strings.NewReader("fake-audio")},
		},
		URLs:         []string{"https://a.example.com", "https://b.example.com"},
		SummaryLevel: "standard",
		Voice:        "echo",
	})
	if err != nil {
		t.Fatalf("UploadBatch() error = %v", err)
	}
	if result.CombinedSummary != "combined" {
		t.Errorf("CombinedSummary = %q", result.CombinedSummary)
	}
	if len(result.Results) != 1 || result.Results[0].Filename != "a.txt" {
		t.Errorf("Results = %+v", result.Results)
	}
}

func TestTranscribeAudio(t *testing.T) {
	audioFile, err := os.CreateTemp(t.TempDir(), "rec-*.wav")
	if err != nil {
		t.Fatal(err)
	}
	audioFile.WriteString("RIFF-fake-wav")
	audioFile.Close()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if !strings.HasPrefix(header.Filename, "rec-") {
			t.Errorf("filename = %s", header.Filename)
		}
		w.Write([]byte(`{"success": true, "text": "what is this about"}`))
	}))

	text, err := c.TranscribeAudio(context.Background(), audioFile.Name())
	if err != nil {
		t.Fatalf("TranscribeAudio() error = %v", err)
	}
	if text != "what is this about" {
		t.Errorf("text = %q", text)
	}
}

func TestGenerateAudio(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "audio_url": "/static/audio/abc.mp3"}`))
	}))

	url, err := c.GenerateAudio(context.Background(), "summary text", "nova")
	if err != nil {
		t.Fatalf("GenerateAudio() error = %v", err)
	}
	if url != "/static/audio/abc.mp3" {
		t.Errorf("url = %q", url)
	}
}

func TestDeleteDocument(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"doc_id":"doc-1"`) {
			t.Errorf("body = %s", body)
		}
		w.Write([]byte(`{"success": true, "doc_id": "doc-1", "chunks_removed": 7}`))
	}))

	removed, err := c.DeleteDocument(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("DeleteDocument() error = %v", err)
	}
	if removed != 7 {
		t.Errorf("chunks removed = %d, want 7", removed)
	}
}

func TestErrorDerivation(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "structured json error",
			status:      400,
			body:        `{"error": "Maximum 5 inputs allowed per upload"}`,
			wantMessage: "Maximum 5 inputs allowed per upload",
		},
		{
			name:        "html title",
			status:      404,
			body:        `<html><head><title>404 Not Found</title></head><body>nope</body></html>`,
			wantMessage: "404 Not Found",
		},
		{
			name:        "raw text excerpt",
			status:      400,
			body:        strings.Repeat("x", 300),
			wantMessage: strings.Repeat("x", 200) + "...",
		},
		{
			name:   "multibyte excerpt cut on a rune boundary",
			status: 400,
			body:   strings.Repeat("語", 100),
			// 200 bytes lands mid-rune; the cut backs up to 198.
			wantMessage: strings.Repeat("語", 66) + "...",
		},
		{
			name:        "5xx is generic regardless of body",
			status:      500,
			body:        `{"error": "stack trace here"}`,
			wantMessage: "the server is busy or timed out, please try again shortly",
		},
		{
			name:        "gateway timeout",
			status:      504,
			body:        "",
			wantMessage: "the server is busy or timed out, please try again shortly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := c.ProcessText(context.Background(), "text", "standard", "nova")
			if err == nil {
				t.Fatal("expected error")
			}

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error type = %T", err)
			}
			if statusErr.Code != tt.status {
				t.Errorf("Code = %d, want %d", statusErr.Code, tt.status)
			}
			if statusErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", statusErr.Message, tt.wantMessage)
			}
		})
	}
}
