package chat

import (
	"context"
	"errors"
	"time"

	"github.com/pedrogillet1/koda-api/internal/adapter/utils"
	"github.com/pedrogillet1/koda-api/internal/chat/embedding"
	"github.com/pedrogillet1/koda-api/internal/chat/ingest"
	"github.com/pedrogillet1/koda-api/internal/chat/llm"
	"github.com/pedrogillet1/koda-api/internal/chat/vectorDB"
	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
	"github.com/pedrogillet1/koda-api/internal/domain/jobModel"
	"github.com/pedrogillet1/koda-api/internal/marker"
	"github.com/pedrogillet1/koda-api/internal/metrics"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

/*
ARCHITECTURE NOTE: OPAQUE INTERFACE PATTERN
---------------------------------------------------------

1. Service (Interface):
  - This is the PUBLIC contract.
  - It defines the "behavior" (what the worker can do).
  - We expose this to keep the worker decoupled from our specific logic.

2. service (Private Struct):
  - This is the PRIVATE implementation.
  - It holds the "state" (database connections and LLM clients).
  - It is lowercase to prevent external packages from accessing our
    internal dependencies (vectorDB, llmProvider) directly.

3. Pointer Receiver (*service):
  - By defining methods on (*service), the struct IMPLICITLY satisfies
    the Service interface.

4. Dependency Injection (NewService):
  - This constructor links the private struct to the public interface.
  - It allows us to swap real DBs for mocks during testing without
    changing the worker's code.
*/

// Service Worker will only call this service - it doesn't need to know the llm or the vector
type Service interface {
	ProcessRequest(ctx context.Context, job jobModel.Job, messageHistory []string) jobModel.Job
	IngestDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	vectorDB      vectorDB.DataProcessor
	llmProvider   llm.Provider
	embedder      embedding.Embedder
	documentStore docModel.DocumentStore
	parser        *marker.Parser
	logger        *logger_i.Logger
}

// NewService constructor
func NewService(vector vectorDB.DataProcessor, llm llm.Provider, em embedding.Embedder, docs docModel.DocumentStore) Service {
	dialect, _ := marker.DialectByName(config.DefaultMarkerDialect)
	return &service{
		vectorDB:      vector,
		llmProvider:   llm,
		embedder:      em,
		documentStore: docs,
		parser:        marker.NewParser(dialect),
		logger:        logger_i.NewLogger("Chat Service :"),
	}
}

func (s *service) ProcessRequest(ctx context.Context, jobt jobModel.Job, messageHistory []string) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY).(string), "JobId", jobt.Id)

	processContext, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	jobt.CurrentStep = jobModel.ChatCall

	// Embedding
	embeddingStep, err := s.executeEmbeddingStep(processContext, inMethodLogger, &jobt)
	if err != nil {
		return s.jobError(jobt, err, "EMBEDDING_FAILURE", true)
	}

	// Cache Check
	cachedAnswer, found := s.executeCacheCheckStep(ctx, inMethodLogger, &jobt, embeddingStep)
	if found {
		return s.returnOutput(ctx, jobt, cachedAnswer)
	}

	// Vector DB Search
	hits, err := s.executeVectorSearchStep(processContext, inMethodLogger, &jobt, embeddingStep)
	if err != nil {
		return s.jobError(jobt, err, "VECTOR_DB_FAILURE", true)
	}

	// LLM Generation - streamed through the holdback parser
	answer, segments, err := s.executeLLMStep(processContext, inMethodLogger, &jobt, hits, messageHistory)
	if err != nil {
		return s.jobError(jobt, err, "LLM_GENERATION_FAILURE", true)
	}

	//Background Cache Save
	go func() {
		err = s.vectorDB.SaveToCache(ctx, utils.GetNewUUID(), embeddingStep, answer)
		if err != nil {
			s.logger.Error("Failed to save to cache")
		}
	}()

	return s.finishOutput(ctx, jobt, answer, segments)
}

func (s *service) IngestDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("Document_ingestion", time.Since(start)) }()
	j := ingest.ProcessDocumentIngestion(ctx, job, s.embedder, s.vectorDB, s.documentStore)
	if j.Status != jobModel.JobStatusComplete {
		return s.jobError(j, errors.New("ingest Document Failed"), "INGESTION_FAILURE", true)
	}
	return j
}
