package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	u, err := domain.NewUser("Test User", "test@example.com", "password")
	require.NoError(err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), u))
	require.Equal(uint(1), u.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	require.Error(repo.Create(context.Background(), u))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password", "role", "created_at", "updated_at"}).
		AddRow(1, "Test User", "test@example.com", "hash", "admin", now, now)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("test@example.com", 1).WillReturnRows(rows)

	u, err := repo.GetByEmail(context.Background(), "test@example.com")
	require.NoError(err)
	assert.Equal(uint(1), u.ID)
	assert.Equal(domain.RoleAdmin, u.Role)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("missing@example.com", 1).WillReturnError(gorm.ErrRecordNotFound)

	_, err = repo.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(err, domain.ErrNotFound)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "taken@example.com")
	require.NoError(err)
	assert.True(exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
		WithArgs("free@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = repo.ExistsByEmail(context.Background(), "free@example.com")
	require.NoError(err)
	assert.False(exists)
}

func TestUserRepository_UpdateRole(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := userRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.UpdateRole(context.Background(), 1, domain.RoleAdmin))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+) WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateRole(context.Background(), 99, domain.RoleAdmin)
	require.ErrorIs(err, domain.ErrNotFound)
}

func TestAccountRepository_Get(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "created_at", "updated_at"}).
		AddRow(1, 5, "Cash", "savings", 15000, now, now)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(1, 1).WillReturnRows(rows)

	account, err := repo.Get(context.Background(), 1)
	require.NoError(err)
	assert.Equal(uint(5), account.UserID)
	assert.Equal(domain.AccountTypeSavings, account.Type)
	assert.Equal(int64(15000), account.Balance)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(99, 1).WillReturnError(gorm.ErrRecordNotFound)

	_, err = repo.Get(context.Background(), 99)
	assert.ErrorIs(err, domain.ErrNotFound)
}

func TestAccountRepository_ListByUser(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "created_at", "updated_at"}).
		AddRow(1, 5, "Cash", "savings", 0, now, now).
		AddRow(2, 5, "Rent", "expense", 5000, now, now)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_id = \$1 ORDER BY id`).
		WithArgs(5).WillReturnRows(rows)

	accounts, err := repo.ListByUser(context.Background(), 5)
	require.NoError(err)
	require.Len(accounts, 2)
	assert.Equal(uint(5), accounts[0].UserID)

	// No rows is an empty slice, not an error.
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE user_id = \$1 ORDER BY id`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "created_at", "updated_at"}))

	accounts, err = repo.ListByUser(context.Background(), 6)
	require.NoError(err)
	assert.Empty(accounts)
	assert.NotNil(accounts)
}

func TestAccountRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}

	account := domain.NewAccount(5, "Cash", domain.AccountTypeIncome, 100)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), account))
	require.Equal(uint(7), account.ID)
}

func TestAccountRepository_Update(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "created_at", "updated_at"}).
			AddRow(1, 5, "Cash", "savings", 15000, now, now))

	account, err := repo.Update(context.Background(), 1, map[string]any{"balance": int64(15000)})
	require.NoError(err)
	assert.Equal(int64(15000), account.Balance)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET (.+) WHERE id = \$`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err = repo.Update(context.Background(), 99, map[string]any{"name": "X"})
	assert.ErrorIs(err, domain.ErrNotFound)
}

func TestAccountRepository_Update_EmptyMapReadsBack(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "type", "balance", "created_at", "updated_at"}).
			AddRow(1, 5, "Cash", "savings", 0, now, now))

	account, err := repo.Update(context.Background(), 1, map[string]any{})
	require.NoError(err)
	require.Equal(uint(1), account.ID)
}

func TestAccountRepository_Delete(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := accountRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.Delete(context.Background(), 1))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.ErrorIs(repo.Delete(context.Background(), 99), domain.ErrNotFound)
}

func TestTokenRepository_CreateGetDelete(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := tokenRepository{db: db}

	token := domain.NewAccessToken(5, "auth_token", time.Hour)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "access_tokens" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), token))

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "expires_at", "last_used_at", "created_at", "updated_at"}).
		AddRow(token.ID, 5, "auth_token", now.Add(time.Hour), nil, now, now)
	mock.ExpectQuery(`SELECT \* FROM "access_tokens" WHERE id = \$1`).
		WithArgs(token.ID, 1).WillReturnRows(rows)

	got, err := repo.Get(context.Background(), token.ID)
	require.NoError(err)
	assert.Equal(uint(5), got.UserID)
	assert.Nil(got.LastUsedAt)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "access_tokens" WHERE id = \$1`).
		WithArgs(token.ID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.Delete(context.Background(), token.ID))

	// Deleting a jti that is already gone reports NOT_FOUND so logout of a
	// revoked token can map to unauthorized.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "access_tokens" WHERE id = \$1`).
		WithArgs(token.ID).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.ErrorIs(repo.Delete(context.Background(), token.ID), domain.ErrNotFound)
}
