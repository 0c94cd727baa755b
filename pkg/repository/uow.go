package repository

import "context"

// UnitOfWork groups repositories behind one storage session.
//
// Repository accessors outside Do use the base session; inside Do they are
// bound to a single transaction, so a multi-step mutation either fully
// applies or fully rolls back. Services hold a UnitOfWork and never see
// *gorm.DB directly, which keeps them trivial to mock.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() UserRepository
	AccountRepository() AccountRepository
	TokenRepository() TokenRepository
}
