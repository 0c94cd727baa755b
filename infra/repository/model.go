package repository

import (
	"time"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"github.com/google/uuid"
)

// User represents a user record in the database.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:16;not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Accounts       []Account       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Transactions   []Transaction   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Reports        []Report        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	TaxEstimations []TaxEstimation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AccessTokens   []AccessToken   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }

// Account represents an account record in the database. Balance is stored
// in cents.
type Account struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:255;not null"`
	Type      string `gorm:"size:16;not null"`
	Balance   int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Transactions []Transaction `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Account) TableName() string { return "accounts" }

// Transaction represents a persisted financial transaction. The entity is
// schema-only: no endpoint writes it.
type Transaction struct {
	ID              uint   `gorm:"primaryKey"`
	AccountID       uint   `gorm:"index;not null"`
	UserID          uint   `gorm:"index;not null"`
	Category        string `gorm:"size:255;not null"`
	Amount          int64  `gorm:"not null"`
	Description     *string
	TransactionDate time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Transaction) TableName() string { return "transactions" }

// Report represents a generated report row. Schema-only.
type Report struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	ReportType  string    `gorm:"size:32;not null"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`
	TotalAmount int64     `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Report) TableName() string { return "reports" }

// TaxEstimation represents a tax estimation row. Schema-only.
type TaxEstimation struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"index;not null"`
	TotalIncome   int64     `gorm:"not null"`
	TotalExpenses int64     `gorm:"not null"`
	EstimatedTax  int64     `gorm:"not null"`
	PeriodStart   time.Time `gorm:"not null"`
	PeriodEnd     time.Time `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TaxEstimation) TableName() string { return "tax_estimations" }

// AccessToken is the server-side half of an issued bearer token, keyed by
// the JWT's jti claim.
type AccessToken struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	Name       string    `gorm:"size:255;not null;default:'auth_token'"`
	ExpiresAt  time.Time `gorm:"index;not null"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AccessToken) TableName() string { return "access_tokens" }

func mapUserToDomain(m *User) *domain.User {
	return &domain.User{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Password: m.Password,
		Role:     domain.Role(m.Role),
		Created:  m.CreatedAt,
		Updated:  m.UpdatedAt,
	}
}

func mapAccountToDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:      m.ID,
		UserID:  m.UserID,
		Name:    m.Name,
		Type:    domain.AccountType(m.Type),
		Balance: m.Balance,
		Created: m.CreatedAt,
		Updated: m.UpdatedAt,
	}
}

func mapTokenToDomain(m *AccessToken) *domain.AccessToken {
	return &domain.AccessToken{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		ExpiresAt:  m.ExpiresAt,
		LastUsedAt: m.LastUsedAt,
		Created:    m.CreatedAt,
	}
}
