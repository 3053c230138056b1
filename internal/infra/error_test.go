//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"barber-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedKind infra.RepositoryErrorKind
	}{
		{
			name:         "no rows becomes NOT_FOUND",
			err:          pgx.ErrNoRows,
			expectedKind: infra.KindNotFound,
		},
		{
			name:         "unique violation becomes CONFLICT",
			err:          &pgconn.PgError{Code: "23505", ConstraintName: "customers_customer_ref_key"},
			expectedKind: infra.KindConflict,
		},
		{
			name:         "exclusion violation becomes CONFLICT",
			err:          &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"},
			expectedKind: infra.KindConflict,
		},
		{
			name:         "wrapped exclusion violation still classifies",
			err:          fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23P01"}),
			expectedKind: infra.KindConflict,
		},
		{
			name:         "other postgres error becomes DB_FAILURE",
			err:          &pgconn.PgError{Code: "42P01"},
			expectedKind: infra.KindDBFailure,
		},
		{
			name:         "plain error becomes DB_FAILURE",
			err:          errors.New("connection refused"),
			expectedKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("operation failed", tc.err)
			assert.True(t, infra.IsKind(wrapped, tc.expectedKind))
		})
	}

	t.Run("explicit kind overrides classification", func(t *testing.T) {
		wrapped := infra.WrapRepoErr("missing row", errors.New("whatever"), infra.KindNotFound)
		assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
	})

	t.Run("original error stays reachable through the wrap", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23P01"}
		wrapped := infra.WrapRepoErr("insert failed", pgErr)

		var got *pgconn.PgError
		assert.True(t, errors.As(wrapped, &got))
		assert.Equal(t, "23P01", got.Code)
	})

	t.Run("IsKind is false for unrelated errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("not a repo error"), infra.KindConflict))
	})
}
