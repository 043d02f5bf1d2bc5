package api

import (
	"context"
	"io"
)

// Client talks to the content-analysis backend over HTTP.
type Client interface {
	// ProcessText submits a single pasted text for analysis.
	ProcessText(ctx context.Context, text, summaryLevel, voice string) (*AnalysisResult, error)
	// UploadBatch submits a mixed bundle of files, media, and URLs.
	UploadBatch(ctx context.Context, req BatchRequest) (*BatchResult, error)
	// TranscribeAudio sends a recorded audio file and returns the transcript.
	TranscribeAudio(ctx context.Context, audioPath string) (string, error)
	// GenerateAudio synthesizes speech for already-delivered summary text.
	GenerateAudio(ctx context.Context, text, voice string) (string, error)
	// AskQuestion sends a follow-up question about submitted content.
	AskQuestion(ctx context.Context, question, voice string) (*Answer, error)
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, docID string) (int, error)
}

// FilePart is one attachment of a multipart batch submission.
type FilePart struct {
	Filename string
	Reader   io.Reader
}

// BatchRequest carries everything for one multi-part submission.
type BatchRequest struct {
	Files        []FilePart
	MediaFiles   []FilePart
	URLs         []string
	SummaryLevel string
	Voice        string
}
