package store

import (
	"context"
	"sync"

	"github.com/pedrogillet1/koda-api/internal/domain/sessionModel"
)

// InMemorySessionStore backs streaming parse sessions when redis is offline.
// Sessions then only survive within one process, which is fine for local dev.
type InMemorySessionStore struct {
	lock       *sync.RWMutex
	sessionMap map[string]sessionModel.StreamState
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		lock:       new(sync.RWMutex),
		sessionMap: make(map[string]sessionModel.StreamState),
	}
}

func (store *InMemorySessionStore) SaveSession(ctx context.Context, state sessionModel.StreamState) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.sessionMap[state.Id] = state
	return nil
}

func (store *InMemorySessionStore) GetSession(ctx context.Context, sessionId string) (sessionModel.StreamState, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	state, found := store.sessionMap[sessionId]
	return state, found
}

func (store *InMemorySessionStore) DeleteSession(ctx context.Context, sessionId string) {
	store.lock.Lock()
	defer store.lock.Unlock()
	delete(store.sessionMap, sessionId)
}
