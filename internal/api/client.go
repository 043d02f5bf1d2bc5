package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// ProcessText submits one pasted text as a simple JSON request.
func (c *implClient) ProcessText(ctx context.Context, text, summaryLevel, voice string) (*AnalysisResult, error) {
	payload := map[string]string{
		"type":          "text",
		"text":          text,
		"summary_level": summaryLevel,
		"voice":         voice,
	}

	var result AnalysisResult
	if err := c.postJSON(ctx, "/api/process-content", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadBatch sends files, media files, and URLs as one multipart request.
func (c *implClient) UploadBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, f := range req.Files {
		part, err := writer.CreateFormFile("files", f.Filename)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, fmt.Errorf("write file part %s: %w", f.Filename, err)
		}
	}

	for _, m := range req.MediaFiles {
		part, err := writer.CreateFormFile("media_files", m.Filename)
		if err != nil {
			return nil, fmt.Errorf("create media part: %w", err)
		}
		if _, err := io.Copy(part, m.Reader); err != nil {
			return nil, fmt.Errorf("write media part %s: %w", m.Filename, err)
		}
	}

	for _, u := range req.URLs {
		if err := writer.WriteField("urls", u); err != nil {
			return nil, fmt.Errorf("write url field: %w", err)
		}
	}

	if err := writer.WriteField("summary_level", req.SummaryLevel); err != nil {
		return nil, err
	}
	if err := writer.WriteField("voice", req.Voice); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var result BatchResult
	if err := c.postMultipart(ctx, "/api/upload-multiple-files", writer.FormDataContentType(), body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TranscribeAudio uploads a recorded audio file and returns the transcript text.
func (c *implClient) TranscribeAudio(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("write audio part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	var result transcriptionResponse
	if err := c.postMultipart(ctx, "/api/transcribe-audio", writer.FormDataContentType(), body, &result); err != nil {
		return "", err
	}
	return result.Text, nil
}

// GenerateAudio requests speech synthesis for summary text.
func (c *implClient) GenerateAudio(ctx context.Context, text, voice string) (string, error) {
	payload := map[string]string{
		"text":  text,
		"voice": voice,
	}

	var result audioResponse
	if err := c.postJSON(ctx, "/api/generate-audio", payload, &result); err != nil {
		return "", err
	}
	return result.AudioURL, nil
}

// AskQuestion sends a follow-up question about the stored documents.
func (c *implClient) AskQuestion(ctx context.Context, question, voice string) (*Answer, error) {
	payload := map[string]string{
		"question": question,
		"voice":    voice,
	}

	var result Answer
	if err := c.postJSON(ctx, "/api/ask-question", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDocuments returns the documents stored for the current session.
func (c *implClient) ListDocuments(ctx context.Context) ([]Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/user-documents", nil)
	if err != nil {
		return nil, err
	}

	var result documentsResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result.Documents, nil
}

// DeleteDocument removes one stored document and reports how many chunks went with it.
func (c *implClient) DeleteDocument(ctx context.Context, docID string) (int, error) {
	jsonBody, err := json.Marshal(map[string]string{"doc_id": docID})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/delete-document", bytes.NewReader(jsonBody))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	var result deleteResponse
	if err := c.do(req, &result); err != nil {
		return 0, err
	}
	return result.ChunksRemoved, nil
}

func (c *implClient) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *implClient) postMultipart(ctx context.Context, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, out)
}

func (c *implClient) do(req *http.Request, out interface{}) error {
	c.logger.Debug(req.Context(), "%s %s", req.Method, req.URL.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}
