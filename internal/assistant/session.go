package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Session holds all conversational state for one conversation. It is owned
// by the caller and passed to every Engine.Respond call; the engine itself
// keeps no cross-call state. A Session is not safe for concurrent use —
// callers running turns in parallel must serialize access.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Context   Context   `json:"context"`
	Memory    Memory    `json:"-"`
}

// NewSession creates an empty session with default context.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Context:   newContext(),
	}
}
