package repository

import (
	"errors"
	"strings"

	"github.com/fintrackhq/fintrack/pkg/domain"
	"gorm.io/gorm"
)

// translateError maps storage errors onto domain error values so services
// never inspect gorm errors directly.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// isUniqueViolation catches drivers that surface constraint violations as
// bare errors rather than gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}
