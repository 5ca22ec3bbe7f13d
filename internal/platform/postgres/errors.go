package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskboard/taskboard-api/internal/store"
)

// uniqueViolationCode is the PostgreSQL error code for unique
// constraint violations.
const uniqueViolationCode = "23505"

// mapError maps a database error to the matching store sentinel,
// wrapping the original error so full detail survives for logging.
// The stores classify the result with store.IsNotFoundError and
// store.IsDuplicateError before falling back to a wrapped raw error.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}

	return err
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// checkRowsAffected examines the number of rows affected by a mutation
// and returns notFoundErr when no rows matched. Used by UPDATE and
// DELETE operations where zero affected rows means the target does not
// exist.
func checkRowsAffected(result sql.Result, notFoundErr error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundErr
	}
	return nil
}
