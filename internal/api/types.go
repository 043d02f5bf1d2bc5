package api

// AnalysisResult is the response of the single-content endpoint.
type AnalysisResult struct {
	Success      bool   `json:"success"`
	Summary      string `json:"summary"`
	SummaryLevel string `json:"summary_level"`
	QAStored     bool   `json:"qa_stored"`
	AudioURL     string `json:"audio_url"`
}

// BatchResult is the response of the batch endpoint.
type BatchResult struct {
	Success           bool              `json:"success"`
	CombinedSummary   string            `json:"combined_summary"`
	Results           []BatchItemResult `json:"results"`
	SuccessfulUploads int               `json:"successful_uploads"`
	TotalInputs       int               `json:"total_inputs"`
}

// BatchItemResult reports the backend's outcome for one input of a batch.
type BatchItemResult struct {
	Type      string `json:"type"`
	Filename  string `json:"filename,omitempty"`
	URL       string `json:"url,omitempty"`
	Title     string `json:"title,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Summary   string `json:"summary,omitempty"`
	DocID     string `json:"doc_id,omitempty"`
	QAStored  bool   `json:"qa_stored,omitempty"`
}

// Answer is the response of the question endpoint.
type Answer struct {
	Success  bool   `json:"success"`
	Answer   string `json:"answer"`
	AudioURL string `json:"audio_url"`
}

// Document describes one stored document of the current session.
type Document struct {
	DocID      string `json:"doc_id"`
	Title      string `json:"title"`
	UploadTime string `json:"upload_time"`
	ChunkCount int    `json:"chunk_count"`
}

type transcriptionResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

type audioResponse struct {
	Success  bool   `json:"success"`
	AudioURL string `json:"audio_url"`
}

type documentsResponse struct {
	Documents  []Document `json:"documents"`
	TotalCount int        `json:"total_count"`
}

type deleteResponse struct {
	Success       bool   `json:"success"`
	DocID         string `json:"doc_id"`
	ChunksRemoved int    `json:"chunks_removed"`
}
