// Package fixtures provides hand-written testify mocks for the repository
// contracts. The unit of work runs its callback against the same mocks, so
// transactional service paths are exercised without a database.
package fixtures

import (
	"context"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct{ mock.Mock }

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Get(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uint, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct{ mock.Mock }

func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Get(ctx context.Context, id uint) (*domain.Account, error) {
	args := m.Called(ctx, id)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	return accountsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.Account, error) {
	args := m.Called(ctx, userID)
	return accountsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, id uint, updates map[string]any) (*domain.Account, error) {
	args := m.Called(ctx, id, updates)
	return accountOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockTokenRepository mocks repository.TokenRepository.
type MockTokenRepository struct{ mock.Mock }

func NewMockTokenRepository(t testingT) *MockTokenRepository {
	m := &MockTokenRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenRepository) Get(ctx context.Context, id uuid.UUID) (*domain.AccessToken, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.AccessToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenRepository) Create(ctx context.Context, token *domain.AccessToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTokenRepository) Touch(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUnitOfWork hands back the mock repositories; Do runs its callback
// against the same instance, so expectations set on the repositories cover
// both transactional and plain paths.
type MockUnitOfWork struct {
	Users    *MockUserRepository
	Accounts *MockAccountRepository
	Tokens   *MockTokenRepository

	// DoErr, when set, makes Do fail without invoking the callback.
	DoErr error
}

func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	return &MockUnitOfWork{
		Users:    NewMockUserRepository(t),
		Accounts: NewMockAccountRepository(t),
		Tokens:   NewMockTokenRepository(t),
	}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if m.DoErr != nil {
		return m.DoErr
	}
	return fn(m)
}

func (m *MockUnitOfWork) UserRepository() repository.UserRepository       { return m.Users }
func (m *MockUnitOfWork) AccountRepository() repository.AccountRepository { return m.Accounts }
func (m *MockUnitOfWork) TokenRepository() repository.TokenRepository     { return m.Tokens }

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

func accountOrNil(v any) *domain.Account {
	if v == nil {
		return nil
	}
	return v.(*domain.Account)
}

func accountsOrNil(v any) []*domain.Account {
	if v == nil {
		return nil
	}
	return v.([]*domain.Account)
}
