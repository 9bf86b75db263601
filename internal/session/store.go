package session

import (
	"context"
	"time"
)

// TTL is how long a session (and its pending flashes) lives without
// being refreshed.
const TTL = 24 * time.Hour

// Session is the server-held state for one client. An empty Username
// means the session is anonymous; anonymous sessions still exist so
// flash messages survive redirects for logged-out users.
type Session struct {
	SessionID string    // unique session identifier
	Username  string    // identity, empty until login
	ExpiresAt time.Time // absolute expiry time
}

// Authenticated reports whether the session carries an identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Username != ""
}

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string `json:"category"` // success, danger, warning
	Text     string `json:"text"`
}

// Store defines how sessions and their flash queues are stored.
// Flashes are an ordered queue: DrainFlashes returns them in push
// order and empties the queue, so each message is consumed exactly
// once.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error

	PushFlash(ctx context.Context, sessionID string, f Flash) error
	DrainFlashes(ctx context.Context, sessionID string) ([]Flash, error)
}
