package chat_test

import (
	"context"

	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
)

// MockVectorDB implements vectorDB.DataProcessor
type MockVectorDB struct {
	// Control fields to simulate different behaviors
	OnSearch           func(ctx context.Context, vectorVal []float32) ([]docModel.SearchHit, error)
	OnGetCachedAnswer  func(ctx context.Context, queryVector []float32) (string, bool, error)
	OnSaveToCache      func(ctx context.Context, id string, vector []float32, answer string) error
	OnCreateCollection func(ctx context.Context, name string) error
	OnUpsertBatch      func(ctx context.Context, name string, chunks []docModel.DocChunk, vectors [][]float32) error
}

func (m *MockVectorDB) Search(ctx context.Context, v []float32) ([]docModel.SearchHit, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, v)
	}
	return []docModel.SearchHit{{Content: "default context", DocId: "doc-1", DocName: "default.pdf"}}, nil
}

func (m *MockVectorDB) GetCachedAnswer(ctx context.Context, v []float32) (string, bool, error) {
	if m.OnGetCachedAnswer != nil {
		return m.OnGetCachedAnswer(ctx, v)
	}
	return "", false, nil
}

func (m *MockVectorDB) SaveToCache(ctx context.Context, id string, v []float32, a string) error {
	if m.OnSaveToCache != nil {
		return m.OnSaveToCache(ctx, id, v, a)
	}
	return nil
}

func (m *MockVectorDB) CreateCollection(ctx context.Context, name string) error {
	if m.OnCreateCollection != nil {
		return m.OnCreateCollection(ctx, name)
	}
	return nil
}

func (m *MockVectorDB) UpsertBatch(ctx context.Context, name string, chunks []docModel.DocChunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, name, chunks, vectors)
	}
	return nil
}

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error)
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks, isHuge)
	}
	// Return dummy vectors matching chunk size
	return make([][]float32, len(chunks)), nil
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, query string, matches []string, history []string) (string, error)
	// StreamChunks are emitted one by one from GenerateStream unless
	// OnGenerateStream overrides the behavior entirely.
	StreamChunks     []string
	OnGenerateStream func(ctx context.Context, query string, matches []string, history []string, emit func(chunk string) error) error
}

func (m *MockLLM) Generate(ctx context.Context, q string, mth []string, hist []string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, q, mth, hist)
	}
	return "mocked llm response", nil
}

func (m *MockLLM) GenerateStream(ctx context.Context, q string, mth []string, hist []string, emit func(chunk string) error) error {
	if m.OnGenerateStream != nil {
		return m.OnGenerateStream(ctx, q, mth, hist, emit)
	}
	chunks := m.StreamChunks
	if chunks == nil {
		chunks = []string{"mocked llm response"}
	}
	for _, chunk := range chunks {
		if err := emit(chunk); err != nil {
			return err
		}
	}
	return nil
}

// MockDocumentStore implements docModel.DocumentStore
type MockDocumentStore struct {
	OnGetDocument func(ctx context.Context, docId string) (docModel.Document, bool)
	Saved         []docModel.Document
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc docModel.Document) error {
	m.Saved = append(m.Saved, doc)
	return nil
}

func (m *MockDocumentStore) GetDocument(ctx context.Context, docId string) (docModel.Document, bool) {
	if m.OnGetDocument != nil {
		return m.OnGetDocument(ctx, docId)
	}
	return docModel.Document{}, false
}

func (m *MockDocumentStore) DeleteDocument(ctx context.Context, docId string) {}
