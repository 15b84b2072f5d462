package gormstore

import (
	"strings"

	domainerrors "rentledger/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // SQLite
		strings.Contains(errMsg, "duplicate key value") || // PostgreSQL
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key constraint failed") || // SQLite
		strings.Contains(errMsg, "violates foreign key constraint") || // PostgreSQL
		strings.Contains(errMsg, "23503")
}

// IsForeignKeyViolation reports whether a failed write referenced a parent row that does not exist.
func IsForeignKeyViolation(err error) bool {
	return err != nil && isForeignKeyConstraintViolation(err)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint failed") || // SQLite
		strings.Contains(errMsg, "violates not-null constraint") || // PostgreSQL
		strings.Contains(errMsg, "23502")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint failed")
}

// translateWriteError classifies a failed write. Constraint failures keep the driver error as cause.
func translateWriteError(err error, op string) error {
	if err == nil {
		return nil
	}

	if isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isNotNullConstraintViolation(err) ||
		isCheckConstraintViolation(err) {
		return errors.Wrap(domainerrors.ErrConstraintViolation.Because(err), op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}
