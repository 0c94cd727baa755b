package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultsToUserRole(t *testing.T) {
	t.Parallel()
	u, err := NewUser("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, u.Role)
	assert.False(t, u.Role.IsAdmin())
}

func TestNewUser_HashesPassword(t *testing.T) {
	t.Parallel()
	u, err := NewUser("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("wrong-password"))
}

func TestNewAdmin(t *testing.T) {
	t.Parallel()
	u, err := NewAdmin("Root", "root@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)
	assert.True(t, u.Role.IsAdmin())
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
