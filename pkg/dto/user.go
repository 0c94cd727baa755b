// Package dto holds the request and response shapes exchanged with API
// clients, with their validation rules as struct tags.
package dto

import (
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
)

// RegisterInput is the request body for user registration. Role is
// deliberately absent: it cannot be set from client input.
type RegisterInput struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// LoginInput is the request body for login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserRead is the API representation of a user.
type UserRead struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserRead maps a domain user to its API shape.
func NewUserRead(u *domain.User) *UserRead {
	return &UserRead{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.Created,
		UpdatedAt: u.Updated,
	}
}
