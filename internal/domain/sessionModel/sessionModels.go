package sessionModel

import (
	"context"
	"time"
)

// StreamState is the persisted form of one streaming parse session. Only the
// held-back tail is state; the rest is configuration fixed at creation.
type StreamState struct {
	Id            string    `json:"id"`
	Dialect       string    `json:"dialect"`
	HoldbackChars int       `json:"holdback_chars"`
	HeldBack      string    `json:"held_back"`
	CreatedTime   time.Time `json:"created_time"`
}

type SessionStore interface {
	SaveSession(ctx context.Context, state StreamState) error
	GetSession(ctx context.Context, sessionId string) (StreamState, bool)
	DeleteSession(ctx context.Context, sessionId string)
}
