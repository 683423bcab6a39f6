package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique violation. An
// empty constraint matches any unique index.
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && (constraint == "" || strings.Contains(msg, constraint))
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
