package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories classify.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgCheckViolation       = "23514"
	pgNotNullViolation     = "23502"
	pgQueryCanceled        = "57014"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// mapError classifies a store error into an AppError, keeping the original
// error in the chain. Errors already classified pass through untouched.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewAppError(apperrors.KindNotFound, op, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewAppError(apperrors.KindTransport, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
			msg := op
			if pgErr.ConstraintName != "" {
				msg += " (" + pgErr.ConstraintName + ")"
			}
			return apperrors.NewAppError(apperrors.KindConstraint, msg, err)
		case pgQueryCanceled, pgSerializationFailure, pgDeadlockDetected:
			return apperrors.NewAppError(apperrors.KindTransport, op, err)
		}
		return apperrors.NewAppError(apperrors.KindInternal, op, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return apperrors.NewAppError(apperrors.KindTransport, op, err)
	}

	return apperrors.NewAppError(apperrors.KindInternal, op, err)
}
