package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated caller. The lexicon core treats the user ID as an
// opaque identity key for counters and never inspects credentials.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash *string // nil for the aggregate (public lookup) identity
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin reports whether the user has a password credential.
// The aggregate identity has none and can never authenticate.
func (u *User) CanLogin() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
