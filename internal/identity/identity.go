// Package identity models the session identity attached to all backend
// calls. There is no real authentication: a session is built once from a
// display name and injected into the state objects that need it.
package identity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when a session is requested without a usable
// display name.
var ErrEmptyName = errors.New("display name is required")

// Session identifies one shopping session. UserID is the opaque display
// name sent to the backend as the user identifier.
type Session struct {
	ID        string
	UserID    string
	StartedAt time.Time
}

// NewSession builds a session from a display name. The name is trimmed
// and must be non-empty.
func NewSession(name string) (Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Session{}, ErrEmptyName
	}
	return Session{
		ID:        uuid.NewString(),
		UserID:    name,
		StartedAt: time.Now(),
	}, nil
}
