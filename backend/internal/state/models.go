package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session tracks one chat conversation on the API surface. The agent
// itself is stateless between turns; the session records how much use
// a conversation has seen.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Turns     int       `json:"turns"`
}

// NewSessionID returns a fresh session identifier: a UUID suffixed
// with the first 8 characters of a second one
func NewSessionID() string {
	return fmt.Sprintf("%s-%s", uuid.NewString(), uuid.NewString()[:8])
}

// Validate checks if the Session is valid
func (s *Session) Validate() error {
	if s.ID == "" {
		return ErrInvalidSession{Field: "id", Reason: "cannot be empty"}
	}
	if s.Turns < 0 {
		return ErrInvalidSession{Field: "turns", Reason: "cannot be negative"}
	}
	return nil
}

// Errors

type ErrInvalidSession struct {
	Field  string
	Reason string
}

func (e ErrInvalidSession) Error() string {
	return fmt.Sprintf("invalid session: %s - %s", e.Field, e.Reason)
}
