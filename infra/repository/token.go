package repository

import (
	"context"
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns a GORM-backed access-token repository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Get(ctx context.Context, id uuid.UUID) (*domain.AccessToken, error) {
	var m AccessToken
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return mapTokenToDomain(&m), nil
}

func (r *tokenRepository) Create(ctx context.Context, t *domain.AccessToken) error {
	m := AccessToken{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		ExpiresAt: t.ExpiresAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err)
	}
	t.Created = m.CreatedAt
	return nil
}

func (r *tokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&AccessToken{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Touch records token usage. Best effort: a failed touch never fails the
// request that used the token.
func (r *tokenRepository) Touch(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	return translateError(r.db.WithContext(ctx).Model(&AccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", now).Error)
}
