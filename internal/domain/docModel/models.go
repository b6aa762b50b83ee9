package docModel

import (
	"context"
	"time"
)

type Document struct {
	Id                  string    `json:"source_doc_id"`
	Name                string    `json:"doc_name"`
	Extension           string    `json:"extension"`
	MIMEType            string    `json:"mime_type"`
	FileSize            int       `json:"file_size"`
	PageCount           int       `json:"page_count"`
	LastIngestTimestamp time.Time `json:"ingested_at"`
	ContentType         DocType   `json:"contentType"`
}

type DocChunk struct {
	Doc                Document
	ChunkId            string `json:"chunk_id"`
	Chunk              string `json:"content"`
	PageNum            int    `json:"page_num"`
	ChunkPageOrder     int    `json:"chunk_order"`
	EmbeddingDimension string `json:"embeddingModel"`
}

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var ERR DocType = "ERROR"

// DocumentStore keeps the metadata that fleshes out DOC markers whose
// payload only carries an id and a name.
type DocumentStore interface {
	SaveDocument(ctx context.Context, doc Document) error
	GetDocument(ctx context.Context, docId string) (Document, bool)
	DeleteDocument(ctx context.Context, docId string)
}

// SearchHit is one vector-search match with the payload the chat prompt
// needs to describe citable documents to the model.
type SearchHit struct {
	Content string
	DocId   string
	DocName string
	PageNum int64
}
