package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-medlink-backend/internal/domain"
	"go-medlink-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("Should map no-rows to domain not found", func(t *testing.T) {
		err := classify(pgx.ErrNoRows)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should map wrapped no-rows too", func(t *testing.T) {
		err := classify(fmt.Errorf("query profile: %w", pgx.ErrNoRows))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should treat context cancellation as transient", func(t *testing.T) {
		assert.Equal(t, apperror.KindTransient, apperror.KindOf(classify(context.Canceled)))
		assert.Equal(t, apperror.KindTransient, apperror.KindOf(classify(context.DeadlineExceeded)))
	})

	t.Run("Should map unique violation to conflict", func(t *testing.T) {
		err := classify(&pgconn.PgError{Code: "23505"})
		assert.Equal(t, apperror.KindInvalid, apperror.KindOf(err))
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should treat connection-class errors as transient", func(t *testing.T) {
		for _, code := range []string{"08000", "08006", "53300", "57P01", "58000"} {
			err := classify(&pgconn.PgError{Code: code})
			assert.Equal(t, apperror.KindTransient, apperror.KindOf(err), "code %s", code)
		}
	})

	t.Run("Should treat a missing relation as store unavailable", func(t *testing.T) {
		err := classify(&pgconn.PgError{Code: "42P01"})
		assert.Equal(t, apperror.KindUnavailable, apperror.KindOf(err))
		assert.True(t, apperror.Degradable(err))
	})

	t.Run("Should surface query and authorization errors as permanent", func(t *testing.T) {
		for _, code := range []string{"42601", "42703", "28P01", "22P02"} {
			err := classify(&pgconn.PgError{Code: code})
			assert.Equal(t, apperror.KindPermanent, apperror.KindOf(err), "code %s", code)
			assert.False(t, apperror.Degradable(err), "code %s", code)
		}
	})

	t.Run("Should default unknown failures to transient", func(t *testing.T) {
		err := classify(errors.New("connection reset by peer"))
		assert.Equal(t, apperror.KindTransient, apperror.KindOf(err))
	})

	t.Run("Should pass nil through", func(t *testing.T) {
		assert.NoError(t, classify(nil))
	})
}
