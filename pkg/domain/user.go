package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role is the closed set of user roles. It is consulted at authorization
// time and is never bound from client input.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role grants unrestricted visibility.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is an authenticated identity. Password holds the bcrypt hash, never
// the plaintext.
type User struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Role     Role      `json:"role"`
	Created  time.Time `json:"created_at"`
	Updated  time.Time `json:"updated_at"`
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// NewUser hashes the password and returns a user with the default role.
func NewUser(name, email, password string) (*User, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     RoleUser,
		Created:  now,
		Updated:  now,
	}, nil
}

// NewAdmin is like NewUser but with the admin role. Only the bootstrap CLI
// creates admins; no HTTP endpoint can.
func NewAdmin(name, email, password string) (*User, error) {
	u, err := NewUser(name, email, password)
	if err != nil {
		return nil, err
	}
	u.Role = RoleAdmin
	return u, nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
