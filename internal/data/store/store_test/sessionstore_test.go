package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/data/redisStore"
	"github.com/pedrogillet1/koda-api/internal/data/store"
	"github.com/pedrogillet1/koda-api/internal/domain/docModel"
	"github.com/pedrogillet1/koda-api/internal/domain/sessionModel"
	"github.com/redis/go-redis/v9"
)

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionStore := store.TestSessionStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "session-trace")
	sessionID := "session_abc_123"

	state := sessionModel.StreamState{
		Id:            sessionID,
		Dialect:       "v3",
		HoldbackChars: 512,
		// An incomplete marker tail must survive the roundtrip byte for byte
		HeldBack:    `{{DOC::id=1::nam`,
		CreatedTime: time.Now(),
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := sessionStore.SaveSession(ctx, state); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		retrieved, found := sessionStore.GetSession(ctx, sessionID)
		if !found {
			t.Fatal("Session was saved but not found in Redis")
		}

		if retrieved.HeldBack != state.HeldBack {
			t.Errorf("HeldBack mismatch! Got %q, want %q", retrieved.HeldBack, state.HeldBack)
		}
		if retrieved.Dialect != "v3" || retrieved.HoldbackChars != 512 {
			t.Errorf("Session options mismatch: %+v", retrieved)
		}
	})

	t.Run("Get Non-Existent Session", func(t *testing.T) {
		_, found := sessionStore.GetSession(ctx, "ghost-session")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Session", func(t *testing.T) {
		sessionStore.DeleteSession(ctx, sessionID)

		if mr.Exists(sessionID) {
			t.Error("Session still exists in Redis after DeleteSession call")
		}
	})
}

func TestRedisDocumentStore_Lifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	docStore := store.TestDocumentStore(redisStore.NewTestStore(client))

	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "doc-trace")

	doc := docModel.Document{
		Id:        "doc_q3_report",
		Name:      "Q3 Report.pdf",
		Extension: "pdf",
		MIMEType:  "application/pdf",
		FileSize:  2048,
		PageCount: 12,
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := docStore.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		retrieved, found := docStore.GetDocument(ctx, doc.Id)
		if !found {
			t.Fatal("Document was saved but not found in Redis")
		}

		if retrieved.MIMEType != doc.MIMEType || retrieved.PageCount != doc.PageCount {
			t.Errorf("Metadata mismatch! Got %+v, want %+v", retrieved, doc)
		}
	})

	t.Run("Delete Document", func(t *testing.T) {
		docStore.DeleteDocument(ctx, doc.Id)

		if mr.Exists(doc.Id) {
			t.Error("Document still exists in Redis after DeleteDocument call")
		}
	})
}
