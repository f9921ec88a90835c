// Package session keeps server-side login sessions.  A session is created on
// successful admin login and looked up on every request through the id
// carried in the signed session cookie.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session id is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is the data stored for a signed-in user.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"userId"`
	IsAdmin   bool      `json:"isAdmin"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store persists sessions for a fixed TTL.
type Store interface {
	// Create stores a new session for the user and returns it with its id
	// and expiry filled in.
	Create(ctx context.Context, userID uint64, isAdmin bool) (*Session, error)
	// Get returns the live session with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Destroy removes the session.  Unknown ids are not an error.
	Destroy(ctx context.Context, id string) error
	// TTL is the lifetime given to new sessions.
	TTL() time.Duration
}

func newSession(userID uint64, isAdmin bool, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		IsAdmin:   isAdmin,
		ExpiresAt: now.UTC().Add(ttl),
	}
}
