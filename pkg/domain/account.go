package domain

import (
	"math"
	"time"
)

// AccountType is the closed set of account categories.
type AccountType string

const (
	AccountTypeIncome  AccountType = "income"
	AccountTypeExpense AccountType = "expense"
	AccountTypeSavings AccountType = "savings"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeIncome, AccountTypeExpense, AccountTypeSavings:
		return true
	}
	return false
}

// Account is a financial account owned by exactly one user. Balance is held
// in cents to keep two-decimal arithmetic exact.
type Account struct {
	ID      uint        `json:"id"`
	UserID  uint        `json:"user_id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance int64       `json:"-"`
	Created time.Time   `json:"created_at"`
	Updated time.Time   `json:"updated_at"`
}

// NewAccount builds an account for the given owner. The balance arrives as a
// decimal amount and is stored in cents.
func NewAccount(userID uint, name string, accountType AccountType, balance float64) *Account {
	now := time.Now().UTC()
	return &Account{
		UserID:  userID,
		Name:    name,
		Type:    accountType,
		Balance: ToCents(balance),
		Created: now,
		Updated: now,
	}
}

// OwnedBy reports whether the account belongs to the given user.
func (a *Account) OwnedBy(userID uint) bool {
	return a.UserID == userID
}

// BalanceAmount returns the balance as a two-decimal amount.
func (a *Account) BalanceAmount() float64 {
	return float64(a.Balance) / 100.0
}

// ToCents converts a decimal amount to cents, rounding half away from zero.
// Amounts whose cent value falls outside the int64 range saturate at the
// bounds instead of wrapping; the transport layer rejects such amounts
// before they reach here.
func ToCents(amount float64) int64 {
	cents := math.Round(amount * 100)
	if cents >= math.MaxInt64 {
		return math.MaxInt64
	}
	if cents <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(cents)
}
