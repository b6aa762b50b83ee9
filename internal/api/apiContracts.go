package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	ChatId    string            `json:"chat_id" example:"chat_550"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type ChatResponse struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	Segments []Segment `json:"segments,omitempty"`
	Sources  []string  `json:"sources,omitempty"`
}

type Result struct {
	Status       string        `json:"status"`
	ChatResponse *ChatResponse `json:"chat_response,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// Segment mirrors marker.Segment on the wire so internal type changes do
// not leak into the API contract.
type Segment struct {
	Type     string              `json:"type" example:"text"`
	Text     string              `json:"text,omitempty"`
	Document *DocumentReference  `json:"document,omitempty"`
	LoadMore *LoadMoreDescriptor `json:"load_more,omitempty"`
}

type DocumentReference struct {
	DocumentID string   `json:"document_id" example:"doc-42"`
	Filename   string   `json:"filename" example:"report.pdf"`
	Extension  string   `json:"extension,omitempty"`
	MIMEType   string   `json:"mime_type,omitempty"`
	FileSize   int      `json:"file_size,omitempty"`
	FolderPath string   `json:"folder_path,omitempty"`
	Language   string   `json:"language,omitempty"`
	Topics     []string `json:"topics,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
	UpdatedAt  string   `json:"updated_at,omitempty"`
	PageCount  int      `json:"page_count,omitempty"`
	SlideCount int      `json:"slide_count,omitempty"`
	Context    string   `json:"context,omitempty"`
}

type LoadMoreDescriptor struct {
	Total     int    `json:"total" example:"50"`
	Shown     int    `json:"shown" example:"10"`
	Remaining int    `json:"remaining" example:"40"`
	ContextID string `json:"context_id,omitempty"`
}

type MarkerCounts struct {
	Documents int `json:"documents" example:"2"`
	LoadMore  int `json:"load_more" example:"1"`
}

// requests---------------------

type ChatRequest struct {
	Message string `json:"message" validate:"required" `
	ChatID  string `json:"chatID,omitempty" `
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}

type IngestDocumentRequest struct {
	DocumentName string `json:"document_name" validate:"required"`
}

type ParseRequest struct {
	Text    string `json:"text" validate:"required"`
	Dialect string `json:"dialect,omitempty" example:"v3"`
}

type ParseResponse struct {
	Segments []Segment    `json:"segments"`
	Counts   MarkerCounts `json:"counts"`
}

type StripResponse struct {
	Text string `json:"text"`
}

type CreateSessionRequest struct {
	Dialect       string `json:"dialect,omitempty" example:"v3"`
	HoldbackChars int    `json:"holdback_chars,omitempty" example:"512"`
}

type SessionResponse struct {
	Id string `json:"id"`
}

type ChunkRequest struct {
	Text string `json:"text"`
}

type ChunkResponse struct {
	Segments      []Segment `json:"segments"`
	HeldBackChars int       `json:"held_back_chars"`
}

type FlushResponse struct {
	Segments []Segment `json:"segments"`
}

type DocumentResponse struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Extension  string    `json:"extension,omitempty"`
	MIMEType   string    `json:"mime_type,omitempty"`
	FileSize   int       `json:"file_size,omitempty"`
	PageCount  int       `json:"page_count,omitempty"`
	IngestedAt time.Time `json:"ingested_at"`
}
