// Package account implements the access-control gate over accounts.
//
// Two distinct rules apply. List and Show narrow scope: admins see every
// row, everyone else sees their own, and no row-level deny exists. Update
// and Destroy evaluate a per-row predicate (admin or owner) after the
// existence check, so an unknown id is always NOT_FOUND before any deny.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/fintrackhq/fintrack/pkg/dto"
	"github.com/fintrackhq/fintrack/pkg/repository"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// allow is the authorization predicate for mutating operations.
func allow(caller *domain.User, account *domain.Account) bool {
	return caller.Role.IsAdmin() || account.OwnedBy(caller.ID)
}

// List returns the caller's visible accounts: all rows for admins, own rows
// otherwise. No pagination, no filtering.
func (s *Service) List(ctx context.Context, caller *domain.User) ([]*domain.Account, error) {
	repo := s.uow.AccountRepository()
	if caller.Role.IsAdmin() {
		return repo.List(ctx)
	}
	return repo.ListByUser(ctx, caller.ID)
}

// Create stores a new account. The owner is taken from the payload when
// present, with no check against the caller — any authenticated user may
// create an account for any user id. That gap is inherited from the API
// this service replaces and is preserved deliberately; an omitted user_id
// falls back to the caller.
func (s *Service) Create(ctx context.Context, caller *domain.User, in *dto.AccountCreate) (*domain.Account, error) {
	ownerID := caller.ID
	if in.UserID != nil {
		ownerID = *in.UserID
	}
	account := domain.NewAccount(ownerID, in.Name, domain.AccountType(in.Type), *in.Balance)
	if err := s.uow.AccountRepository().Create(ctx, account); err != nil {
		s.logger.Error("account create failed", "user_id", ownerID, "error", err)
		return nil, err
	}
	s.logger.Info("account created", "account_id", account.ID, "user_id", account.UserID)
	return account, nil
}

// Show checks that the id exists, then returns the caller's scoped list,
// ignoring the id. This mirrors the API this service replaces; see the
// repository design notes before "fixing" it.
func (s *Service) Show(ctx context.Context, caller *domain.User, id uint) ([]*domain.Account, error) {
	if _, err := s.uow.AccountRepository().Get(ctx, id); err != nil {
		return nil, err
	}
	return s.List(ctx, caller)
}

// Update applies a partial merge to the account. NOT_FOUND is evaluated
// before the ownership predicate. The read and the merge share one
// transaction; an empty update reads back without opening one.
func (s *Service) Update(ctx context.Context, caller *domain.User, id uint, in *dto.AccountUpdate) (*domain.Account, error) {
	if in.Empty() {
		account, err := s.uow.AccountRepository().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !allow(caller, account) {
			return nil, domain.ErrForbidden
		}
		return account, nil
	}

	var updated *domain.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.AccountRepository()
		account, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !allow(caller, account) {
			return domain.ErrForbidden
		}
		updated, err = repo.Update(ctx, id, mergeColumns(in))
		return err
	})
	if err != nil {
		if isExpected(err) {
			return nil, err
		}
		s.logger.Error("account update failed", "account_id", id, "error", err)
		return nil, err
	}
	s.logger.Info("account updated", "account_id", id, "caller_id", caller.ID)
	return updated, nil
}

// Destroy permanently removes the account. No soft delete, no undo; the
// storage layer cascades to the account's transactions.
func (s *Service) Destroy(ctx context.Context, caller *domain.User, id uint) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo := uow.AccountRepository()
		account, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !allow(caller, account) {
			return domain.ErrForbidden
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		if isExpected(err) {
			return err
		}
		s.logger.Error("account destroy failed", "account_id", id, "error", err)
		return err
	}
	s.logger.Info("account destroyed", "account_id", id, "caller_id", caller.ID)
	return nil
}

// mergeColumns turns the present fields of a partial update into the
// column/value pairs for the storage merge.
func mergeColumns(in *dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if in.UserID != nil {
		updates["user_id"] = *in.UserID
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	if in.Balance != nil {
		updates["balance"] = domain.ToCents(*in.Balance)
	}
	return updates
}

func isExpected(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden)
}
