package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/pedrogillet1/koda-api/internal/config"
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var (
	pooledClient *http.Client
	once         sync.Once
)

// Client returns the shared pooled client the llm and embedding clients
// reuse, so repeated calls to the same host keep their connections warm.
func Client() *http.Client {
	once.Do(func() {
		pooledClient = &http.Client{Transport: customTransport}
	})
	return pooledClient
}
