package postgres

import (
	"context"
	"errors"
	"net"
	"strings"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// classify maps low-level store errors onto the taxonomy the usecase
// fallback policy is written against: not-found, transient (retryable,
// degrade to defaults), permanent (misconfiguration, surface to caller).
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.Transient(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperror.Transient(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return apperror.Conflict("record already exists")
		// Class 08 (connection), 53 (resources), 57 (operator intervention),
		// 58 (system) are retryable
		case strings.HasPrefix(pgErr.Code, "08"),
			strings.HasPrefix(pgErr.Code, "53"),
			strings.HasPrefix(pgErr.Code, "57"),
			strings.HasPrefix(pgErr.Code, "58"):
			return apperror.Transient(err)
		// Missing relation means the schema is not initialized yet; treat as
		// store-unreachable so the readiness guard takes over
		case pgErr.Code == "42P01":
			return apperror.Unavailable(err)
		// Remaining class 42 (syntax/access), 28 (authorization), 22 (data)
		// indicate a broken query or misconfiguration
		case strings.HasPrefix(pgErr.Code, "42"),
			strings.HasPrefix(pgErr.Code, "28"),
			strings.HasPrefix(pgErr.Code, "22"):
			return apperror.Internal(err)
		}
	}

	return apperror.Transient(err)
}
