package store

import (
	"context"
	"sync"

	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
)

type InMemoryDocumentStore struct {
	lock   *sync.RWMutex
	docMap map[string]docModel.Document
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		lock:   new(sync.RWMutex),
		docMap: make(map[string]docModel.Document),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.docMap[doc.Id] = doc
	inMemLogger.Debug("Saved document metadata", "docId", doc.Id)
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, docId string) (docModel.Document, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	doc, found := store.docMap[docId]
	return doc, found
}

func (store *InMemoryDocumentStore) DeleteDocument(ctx context.Context, docId string) {
	store.lock.Lock()
	defer store.lock.Unlock()
	delete(store.docMap, docId)
}
