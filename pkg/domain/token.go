package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is the server-side record of an issued bearer token. The token
// presented by the client is a signed JWT whose jti is this record's ID; a
// token without a live record is treated as revoked.
type AccessToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uint       `json:"user_id"`
	Name       string     `json:"name"`
	ExpiresAt  time.Time  `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	Created    time.Time  `json:"created_at"`
}

// NewAccessToken mints a token record for the given user.
func NewAccessToken(userID uint, name string, ttl time.Duration) *AccessToken {
	now := time.Now().UTC()
	return &AccessToken{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		ExpiresAt: now.Add(ttl),
		Created:   now,
	}
}

// Expired reports whether the token record is past its expiry.
func (t *AccessToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
