package dto

import (
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
)

// AccountCreate is the request body for account creation. UserID is optional
// and defaults to the caller; when supplied it is taken as-is, matching the
// API this service replaces. The balance cap keeps the stored cent value
// well inside int64.
type AccountCreate struct {
	UserID  *uint    `json:"user_id" validate:"omitempty,gt=0"`
	Name    string   `json:"name" validate:"required,max=255"`
	Type    string   `json:"type" validate:"required,oneof=income expense savings"`
	Balance *float64 `json:"balance" validate:"required,gte=0,lte=1000000000000"`
}

// AccountUpdate is the request body for a partial account update. Every
// field is optional; present fields are validated independently and merged.
type AccountUpdate struct {
	UserID  *uint    `json:"user_id" validate:"omitempty,gt=0"`
	Name    *string  `json:"name" validate:"omitempty,max=255"`
	Type    *string  `json:"type" validate:"omitempty,oneof=income expense savings"`
	Balance *float64 `json:"balance" validate:"omitempty,gte=0,lte=1000000000000"`
}

// Empty reports whether the update carries no fields.
func (u *AccountUpdate) Empty() bool {
	return u.UserID == nil && u.Name == nil && u.Type == nil && u.Balance == nil
}

// AccountRead is the API representation of an account. Balance is rendered
// as a two-decimal amount.
type AccountRead struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAccountRead maps a domain account to its API shape.
func NewAccountRead(a *domain.Account) *AccountRead {
	return &AccountRead{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.BalanceAmount(),
		CreatedAt: a.Created,
		UpdatedAt: a.Updated,
	}
}

// NewAccountReadList maps a slice of domain accounts, returning an empty
// slice (not nil) so lists always serialize as JSON arrays.
func NewAccountReadList(accounts []*domain.Account) []*AccountRead {
	out := make([]*AccountRead, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountRead(a))
	}
	return out
}
