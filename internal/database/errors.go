package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Violation is the storage-engine-independent class of a failed statement.
type Violation int

const (
	ViolationNone Violation = iota
	ViolationUnique
	ViolationForeignKey
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Classify maps a driver error to a Violation. Both pgx and lib/pq errors are
// understood; anything else is ViolationNone.
func Classify(err error) Violation {
	if err == nil {
		return ViolationNone
	}

	var code string
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	default:
		return ViolationNone
	}

	switch code {
	case codeUniqueViolation:
		return ViolationUnique
	case codeForeignKeyViolation:
		return ViolationForeignKey
	default:
		return ViolationNone
	}
}
