package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomshare-backend/internal/domain"
)

func TestExpenseRepository_SettleShare(t *testing.T) {
	ctx := context.Background()
	settledAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("PendingShareIsSettled", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewExpenseRepository(db)

		mock.ExpectExec("UPDATE expense_splits").
			WithArgs(string(domain.ShareStatusSettled), settledAt, "exp-1", "bob", string(domain.ShareStatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE expenses SET updated_at").
			WithArgs(settledAt, "exp-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.SettleShare(ctx, "exp-1", "bob", settledAt)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SettledShareMatchesNoRow", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewExpenseRepository(db)

		mock.ExpectExec("UPDATE expense_splits").
			WithArgs(string(domain.ShareStatusSettled), settledAt, "exp-1", "bob", string(domain.ShareStatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SettleShare(ctx, "exp-1", "bob", settledAt)
		assert.ErrorIs(t, err, domain.ErrNoPendingShare)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TouchFailureDoesNotFailSettlement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewExpenseRepository(db)

		mock.ExpectExec("UPDATE expense_splits").
			WithArgs(string(domain.ShareStatusSettled), settledAt, "exp-1", "bob", string(domain.ShareStatusPending)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE expenses SET updated_at").
			WithArgs(settledAt, "exp-1").
			WillReturnError(assert.AnError)

		err = repo.SettleShare(ctx, "exp-1", "bob", settledAt)
		assert.NoError(t, err)
	})
}

func TestExpenseRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewExpenseRepository(db)

	mock.ExpectQuery("SELECT(.|\n)*FROM expenses e").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
