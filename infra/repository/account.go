package repository

import (
	"context"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/repository"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns a GORM-backed account repository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, id uint) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return mapAccountToDomain(&m), nil
}

func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	var models []Account
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, translateError(err)
	}
	return mapAccountsToDomain(models), nil
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Account, error) {
	var models []Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, translateError(err)
	}
	return mapAccountsToDomain(models), nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := Account{
		UserID:  a.UserID,
		Name:    a.Name,
		Type:    string(a.Type),
		Balance: a.Balance,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err)
	}
	a.ID = m.ID
	a.Created = m.CreatedAt
	a.Updated = m.UpdatedAt
	return nil
}

// Update applies only the given column/value pairs and returns the merged
// row. Callers build the map from fields actually present in the request.
func (r *accountRepository) Update(ctx context.Context, id uint, updates map[string]any) (*domain.Account, error) {
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&Account{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrNotFound
		}
	}
	return r.Get(ctx, id)
}

func (r *accountRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func mapAccountsToDomain(models []Account) []*domain.Account {
	accounts := make([]*domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, mapAccountToDomain(&models[i]))
	}
	return accounts
}
