// Package marker segments assistant-generated text into plain-text runs and
// structured records carried by an inline {{KIND::key=value::...}} grammar.
// It is pure computation over strings, safe to call per stream chunk.
package marker

// Kind is the marker keyword right after the opening braces.
type Kind string

const (
	KindDocument Kind = "DOC"
	KindLoadMore Kind = "LOAD_MORE"
)

// Span is one complete marker located in a buffer. Start is the offset of
// the opening "{{", End is one past the closing "}}".
type Span struct {
	Kind       Kind
	RawPayload string
	Start      int
	End        int
}

// DocumentReference is the decoded form of a DOC marker.
type DocumentReference struct {
	DocumentID string   `json:"document_id"`
	Filename   string   `json:"filename"`
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

// LoadMoreDescriptor is the decoded form of a LOAD_MORE marker.
// Remaining is always total minus shown, never the literal payload value.
type LoadMoreDescriptor struct {
	Total     int    `json:"total"`
	Shown     int    `json:"shown"`
	Remaining int    `json:"remaining"`
	ContextID string `json:"context_id,omitempty"`
}

type SegmentType string

const (
	SegmentText     SegmentType = "text"
	SegmentDocument SegmentType = "document"
	SegmentLoadMore SegmentType = "load_more"
)

// Segment is one unit of parsed output. Exactly one of Text, Document or
// LoadMore is meaningful depending on Type.
type Segment struct {
	Type     SegmentType         `json:"type"`
	Text     string              `json:"text,omitempty"`
	Document *DocumentReference  `json:"document,omitempty"`
	LoadMore *LoadMoreDescriptor `json:"load_more,omitempty"`
}

// Counts is a per-kind marker tally.
type Counts struct {
	Documents int `json:"documents"`
	LoadMore  int `json:"load_more"`
}
