package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pedrogillet1/koda-api/internal/chat/embedding"
	"github.com/pedrogillet1/koda-api/internal/chat/vectorDB"
	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
	"github.com/pedrogillet1/koda-api/internal/domain/jobModel"
	"github.com/pedrogillet1/koda-api/internal/marker"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var logger *logger_i.Logger

func ProcessDocumentIngestion(ctx context.Context, job jobModel.Job, e embedding.Embedder, vectorDatabase vectorDB.DataProcessor, documents docModel.DocumentStore) jobModel.Job {
	logger = logger_i.NewLogger("Document Ingestion ")
	logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string))

	//ideally return batches of upserts
	docName := job.JobPayload.IngestFileName
	docPath := job.JobPayload.IngestURL

	logger.Debug("Processing document", "filename", docName, "path", docPath)

	job.CurrentStep = jobModel.IngestProcessing
	err := vectorDatabase.CreateCollection(ctx, config.EmbeddingDBName)
	if err != nil {
		logger.Error("Error creating collection", "error", err)
		job.Status = jobModel.JobStatusError
		return job
	}

	docType := getDocType(docPath)
	logger.Debug("Processing document", "type", docType)
	if docType == docModel.ERR {
		logger.Error("Unsupported document type", "path", docPath)
		job.Status = jobModel.JobStatusError
		return job
	}

	doc := docModel.Document{
		Id:                  job.Id,
		Name:                docName,
		Extension:           strings.TrimPrefix(strings.ToLower(filepath.Ext(docName)), "."),
		LastIngestTimestamp: time.Now(),
		ContentType:         docType,
	}
	doc.MIMEType = marker.MIMEForExtension(doc.Extension)
	if info, statErr := os.Stat(docPath); statErr == nil {
		doc.FileSize = int(info.Size())
	}

	rawPages, err := extractText(job.JobPayload.IngestURL, doc.ContentType)
	if err != nil {
		logger.Error("Error processing document", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error extracting document content"
		return job
	}
	doc.PageCount = len(rawPages)

	logger.Debug("Processing document", "Number of raw pages: ", len(rawPages))
	chunks := PrepareChunks(rawPages, doc, config.GoogleEmbeddingModel)

	logger.Debug("Processing document", "Number of chunks: ", len(chunks))
	err = BatchIngest(ctx, chunks, vectorDatabase, e)

	if err != nil {
		job.Status = jobModel.JobStatusError
		logger.Error("Error processing document", "error", err)
		return job
	}

	// register metadata so DOC markers citing this document get enriched
	if documents != nil {
		if err := documents.SaveDocument(ctx, doc); err != nil {
			logger.Error("Error saving document metadata", "error", err)
		}
	}

	err = os.Remove(job.JobPayload.IngestURL)
	if err != nil {
		logger.Error("Error removing file", "error", err)
	}
	job.Status = jobModel.JobStatusComplete
	return job
}
