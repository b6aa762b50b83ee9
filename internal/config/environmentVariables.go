package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, fall back to in-memory stores
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5
	CacheSimilarityCutoff           = 0.97

	//auth
	NoAuthBypass = true //local dev only, flip for deployments
	AuthToken    = "koda-local-token"

	//marker engine
	DefaultMarkerDialect = "v3"
	HoldbackChars        = 512 //longest marker we will wait for on a live stream

	//embeddings collection
	EmbeddingOutputDimensionality int32 = 1536
	EmbeddingDBName                     = "koda-documents"

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false
	QdrantPoolSize          = 1
	QdrantKeepAliveTimeout  = 30 * time.Second

	//llm
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"
	GoogleEmbeddingAPIKey = ""

	ModelTemperature float32 = 0.7
	ModelContext             = "You are Koda, a document assistant. Answer from the provided document context. " +
		"When you cite a document, embed a marker of the form {{DOC::id=<document id>::name=\"<percent-encoded filename>\"}} " +
		"inline where the citation belongs. When more sources exist than you cite, append " +
		"{{LOAD_MORE::total=<available>::shown=<cited>}} at the end. Never invent document ids. " +
		"If you don't know the answer, say you don't know."

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore      = 0
	RedisMessageStore  = 1
	RedisSessionStore  = 2
	RedisDocumentStore = 3

	//redis timeouts
	RedisJobStoreTTL      = 24 * time.Hour
	RedisMessageStoreTTL  = 24 * time.Hour
	RedisSessionStoreTTL  = 30 * time.Minute //streaming parse sessions are short-lived
	RedisDocumentStoreTTL = 0                //document metadata does not expire
)
