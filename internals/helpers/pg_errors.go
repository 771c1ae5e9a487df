// file: internals/helpers/pg_errors.go
package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func pgCode(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// TranslatePGError maps Postgres constraint errors to AppErrors. Handles
// both pgx (gorm postgres driver) and lib/pq shaped errors; anything else
// passes through unchanged.
func TranslatePGError(err error) error {
	if err == nil {
		return nil
	}
	switch pgCode(err) {
	case "23503":
		return NewAppError(http.StatusBadRequest, "FK_VIOLATION", "referenced record not found")
	case "23505":
		return NewAppError(http.StatusConflict, "CONFLICT", "duplicate data")
	}
	return err
}

// IsUniqueViolation reports whether err is a unique constraint error.
func IsUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}
