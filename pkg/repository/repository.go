// Package repository defines the data-access contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	Get(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id uint, role domain.Role) error
	Delete(ctx context.Context, id uint) error
}

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	Get(ctx context.Context, id uint) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	ListByUser(ctx context.Context, userID uint) ([]*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	// Update applies a partial merge of the given column/value pairs and
	// returns the resulting row.
	Update(ctx context.Context, id uint, updates map[string]any) (*domain.Account, error)
	Delete(ctx context.Context, id uint) error
}

// TokenRepository defines the interface for access-token records. A token
// whose record is gone is revoked.
type TokenRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.AccessToken, error)
	Create(ctx context.Context, token *domain.AccessToken) error
	Delete(ctx context.Context, id uuid.UUID) error
	Touch(ctx context.Context, id uuid.UUID) error
}
