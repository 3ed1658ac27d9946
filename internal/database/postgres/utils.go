package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so statements are
// written once and run either standalone or inside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// wrapErr adds msg to err and marks serialization failures and deadlocks as
// repository.ErrTxConflict so callers can retry the whole transaction.
func wrapErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected:
			return fmt.Errorf("%w: %s: %w", repository.ErrTxConflict, msg, err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// foreignKeyErr translates a foreign key violation into the matching
// not-found error. It returns nil for any other error.
func foreignKeyErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeForeignKeyViolation {
		return nil
	}
	if pgErr.ConstraintName == ConstraintInventoryItemFK {
		return domain.ErrItemNotFound
	}
	return domain.ErrUserNotFound
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
