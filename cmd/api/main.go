// @title           Koda Marker & Chat API
// @version         1.0
// @description     Marker segmentation of assistant output plus asynchronous chat and document ingestion.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pedrogillet1/koda-api/internal/chat"
	"github.com/pedrogillet1/koda-api/internal/chat/embedding/googleEmbedding"
	"github.com/pedrogillet1/koda-api/internal/chat/llm/gemini"
	"github.com/pedrogillet1/koda-api/internal/chat/vectorDB/qdrantDB"
	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/data/store"
	jobmodel "github.com/pedrogillet1/koda-api/internal/domain/jobModel"
	"github.com/pedrogillet1/koda-api/internal/handlers"
	"github.com/pedrogillet1/koda-api/internal/job"
	"github.com/pedrogillet1/koda-api/internal/server"
	"github.com/pedrogillet1/koda-api/internal/worker"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and the typed stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	jobStore := store.GetRedisJobStore(serviceContext)
	messageStore := store.GetRedisMessageStore(serviceContext)
	sessionStore := store.GetRedisSessionStore(serviceContext)
	documentStore := store.GetRedisDocumentStore(serviceContext)

	if jobStore == nil || messageStore == nil || sessionStore == nil || documentStore == nil {
		logger.Error("Redis stores are offline")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.MessageStore = store.InitMessageStore()
		serviceConfig.SessionStore = store.InitInMemorySessionStore()
		serviceConfig.DocumentStore = store.InitInMemoryDocumentStore()
	} else {
		serviceConfig.JobStore = jobStore
		serviceConfig.MessageStore = messageStore
		serviceConfig.SessionStore = sessionStore
		serviceConfig.DocumentStore = documentStore
	}
	service := job.InitJobService(serviceConfig)

	vectorDB := qdrantDB.GetQuadrantClient(serviceContext)
	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleEmbeddingAPIKey)
	llmProvider := gemini.GetGeminiClient(serviceContext, config.GoogleEmbeddingAPIKey, config.GeminiModelName)

	if vectorDB == nil || embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	chatService := chat.NewService(vectorDB, llmProvider, embeddingService, serviceConfig.DocumentStore)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, chatService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
