package chat

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
	"github.com/pedrogillet1/koda-api/internal/domain/jobModel"
	"github.com/pedrogillet1/koda-api/internal/marker"
	"github.com/pedrogillet1/koda-api/internal/metrics"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

// returnOutput finishes a job whose answer arrived as one blob (cache hit),
// it still goes through the segmenter so the caller gets structure.
func (s *service) returnOutput(ctx context.Context, job jobModel.Job, rawAnswer string) jobModel.Job {
	return s.finishOutput(ctx, job, rawAnswer, s.parser.Parse(rawAnswer))
}

// finishOutput assembles the final payload: stripped answer, enriched
// segments and the cited document ids.
func (s *service) finishOutput(ctx context.Context, job jobModel.Job, rawAnswer string, segments []marker.Segment) jobModel.Job {
	job.CurrentStep = jobModel.SegmentationCall
	s.enrichDocumentSegments(ctx, segments)

	job.JobPayload.Answer = s.parser.StripMarkers(rawAnswer)
	job.JobPayload.Segments = segments
	if cited := s.parser.ExtractDocumentIDs(rawAnswer); len(cited) > 0 {
		job.JobPayload.Sources = cited
	}

	countSegmentMetrics(segments)
	job.CurrentStep = jobModel.Complete
	return job
}

// enrichDocumentSegments fills in metadata the marker payload omitted from
// what ingestion stored. Fields the model supplied are never overridden.
func (s *service) enrichDocumentSegments(ctx context.Context, segments []marker.Segment) {
	if s.documentStore == nil {
		return
	}
	for _, seg := range segments {
		if seg.Type != marker.SegmentDocument {
			continue
		}
		stored, found := s.documentStore.GetDocument(ctx, seg.Document.DocumentID)
		if !found {
			continue
		}
		if seg.Document.Extension == "" {
			seg.Document.Extension = stored.Extension
		}
		if seg.Document.MIMEType == "" {
			seg.Document.MIMEType = stored.MIMEType
		}
		if seg.Document.FileSize == 0 {
			seg.Document.FileSize = stored.FileSize
		}
		if seg.Document.PageCount == 0 {
			seg.Document.PageCount = stored.PageCount
		}
	}
}

func countSegmentMetrics(segments []marker.Segment) {
	for _, seg := range segments {
		switch seg.Type {
		case marker.SegmentDocument, marker.SegmentLoadMore:
			metrics.CountParsedMarker(string(seg.Type))
		case marker.SegmentText:
			// a text segment shaped like a marker is one that failed decoding
			if strings.HasPrefix(seg.Text, "{{") && strings.Contains(seg.Text, "::") {
				metrics.CountMalformedMarker()
			}
		}
	}
}

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("ProcessRequest", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) executeEmbeddingStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job) ([]float32, error) {
	*job = logOutput(*job, jobModel.EmbeddingAPICall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("embedding", time.Since(start)) }()

	return s.embedder.GetEmbedding(ctx, job.JobPayload.Question)
}

func (s *service) executeCacheCheckStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, emb []float32) (string, bool) {
	*job = logOutput(*job, jobModel.CacheCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("cache_lookup", time.Since(start)) }()

	ans, found, _ := s.vectorDB.GetCachedAnswer(ctx, emb)
	return ans, found
}

func (s *service) executeVectorSearchStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, emb []float32) ([]docModel.SearchHit, error) {
	*job = logOutput(*job, jobModel.VectorDBCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	hits, err := s.vectorDB.Search(ctx, emb)
	for _, hit := range hits {
		job.JobPayload.Sources = append(job.JobPayload.Sources, hit.DocId)
	}
	return hits, err
}

// executeLLMStep streams the model output chunk by chunk through a holdback
// session so an incomplete marker never leaks into the segment list, then
// returns the full raw answer alongside the assembled segments.
func (s *service) executeLLMStep(ctx context.Context, log *logger_i.Logger, job *jobModel.Job, hits []docModel.SearchHit, history []string) (string, []marker.Segment, error) {
	*job = logOutput(*job, jobModel.LLMCall, log)

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	session := marker.NewStreamSession(s.parser, config.HoldbackChars)
	var raw []byte
	var segments []marker.Segment

	err := s.llmProvider.GenerateStream(ctx, job.JobPayload.Question, matchTexts(hits), history, func(chunk string) error {
		raw = append(raw, chunk...)
		segments = append(segments, session.Feed(chunk)...)
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	segments = append(segments, session.Flush()...)

	return string(raw), segments, nil
}

func matchTexts(hits []docModel.SearchHit) []string {
	matches := make([]string, 0, len(hits))
	for _, hit := range hits {
		matches = append(matches, "Content: "+hit.Content+", DocumentName: "+hit.DocName+", DocumentId: "+hit.DocId)
	}
	return matches
}
