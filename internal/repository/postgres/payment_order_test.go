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

func TestPaymentOrderRepository_ExpireStale(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentOrderRepository(db)

	cutoff := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE payment_orders").
		WithArgs(string(domain.PaymentOrderStatusExpired), sqlmock.AnyArg(), string(domain.PaymentOrderStatusCreated), cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	expired, err := repo.ExpireStale(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}
