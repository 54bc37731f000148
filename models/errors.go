package models

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrNotFound marks a read, update or delete against a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey marks a unique-constraint violation.
	ErrDuplicateKey = errors.New("duplicate key")
)

const mysqlDupEntry = 1062

// WrapDBError normalizes driver and GORM errors into the two sentinel
// errors handlers care about; anything else passes through unchanged.
func WrapDBError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
		return ErrDuplicateKey
	}

	// sqlite reports unique violations as plain text
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateKey
	}

	return err
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(WrapDBError(err), ErrDuplicateKey)
}

// IsNotFound reports whether err is a missing-record condition.
func IsNotFound(err error) bool {
	return errors.Is(WrapDBError(err), ErrNotFound)
}
