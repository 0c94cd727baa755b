package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAccessToken(t *testing.T) {
	t.Parallel()
	tok := NewAccessToken(7, "auth_token", time.Hour)
	assert.NotEqual(t, uuid.Nil, tok.ID)
	assert.Equal(t, uint(7), tok.UserID)
	assert.Equal(t, "auth_token", tok.Name)
	assert.False(t, tok.Expired())
	assert.Nil(t, tok.LastUsedAt)
}

func TestAccessToken_Expired(t *testing.T) {
	t.Parallel()
	tok := NewAccessToken(7, "auth_token", -time.Minute)
	assert.True(t, tok.Expired())
}
