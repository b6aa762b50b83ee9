package store

import (
	"context"
	"encoding/json"

	"github.com/pedrogillet1/koda-api/internal/config"
	"github.com/pedrogillet1/koda-api/internal/data/redisStore"
	"github.com/pedrogillet1/koda-api/internal/domain/sessionModel"
	"github.com/pedrogillet1/koda-api/pkg/logger_i"
)

// RedisSessionStore persists streaming parse sessions so a chunked stream
// can span connections. Only the held-back tail and the session options are
// stored; sessions expire on the store TTL.
type RedisSessionStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisSessionStore(ctx context.Context) *RedisSessionStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if inner == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  inner,
		logger: logger_i.NewLogger("SessionStore"),
	}
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, state sessionModel.StreamState) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", state.Id)
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, state.Id, data, config.RedisSessionStoreTTL)
	if err == nil {
		log.Debug("Saved session to Redis", "held back bytes", len(state.HeldBack))
	}
	return err
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionId string) (sessionModel.StreamState, bool) {
	var state sessionModel.StreamState
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "session Id", sessionId)
	val, err := s.store.Get(ctx, sessionId)
	if s.store.IsNil(err) {
		return state, false
	} else if err != nil {
		log.Error("Error reading session", "error", err)
		return state, false
	}

	if err = json.Unmarshal([]byte(val), &state); err != nil {
		return state, false
	}
	return state, true
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionId string) {
	if err := s.store.Del(ctx, sessionId); err != nil {
		s.logger.Error("Error deleting session from Redis", "sessionId", sessionId)
		return
	}
	s.logger.Debug("Session deleted from Redis", "sessionId", sessionId)
}

func TestSessionStore(store *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
