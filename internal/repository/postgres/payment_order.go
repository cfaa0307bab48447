package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type paymentOrderRepository struct {
	db *sql.DB
}

func NewPaymentOrderRepository(db *sql.DB) repository.PaymentOrderRepository {
	return &paymentOrderRepository{db: db}
}

func (r *paymentOrderRepository) Create(ctx context.Context, order *domain.PaymentOrder) error {
	logger.EnterMethod("paymentOrderRepository.Create", "expenseID", order.ExpenseID, "userID", order.UserID)

	query := `
		INSERT INTO payment_orders (id, expense_id, user_id, gateway_order_id, receipt, amount_paise, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		order.ID, order.ExpenseID, order.UserID, order.GatewayOrderID, order.Receipt,
		order.AmountPaise, order.Currency, order.Status, now, now,
	).Scan(&order.CreatedAt, &order.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("paymentOrderRepository.Create", err, "expenseID", order.ExpenseID)
		return err
	}

	logger.ExitMethod("paymentOrderRepository.Create", "orderID", order.ID)
	return nil
}

func (r *paymentOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.PaymentOrder, error) {
	logger.EnterMethod("paymentOrderRepository.GetByGatewayOrderID", "gatewayOrderID", gatewayOrderID)

	query := `
		SELECT id, expense_id, user_id, gateway_order_id, receipt, amount_paise, currency, status, created_at, updated_at
		FROM payment_orders
		WHERE gateway_order_id = $1
	`
	order := &domain.PaymentOrder{}
	err := r.db.QueryRowContext(ctx, query, gatewayOrderID).Scan(
		&order.ID, &order.ExpenseID, &order.UserID, &order.GatewayOrderID, &order.Receipt,
		&order.AmountPaise, &order.Currency, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrNotFound
		}
		logger.ExitMethodWithError("paymentOrderRepository.GetByGatewayOrderID", err, "gatewayOrderID", gatewayOrderID)
		return nil, err
	}

	logger.ExitMethod("paymentOrderRepository.GetByGatewayOrderID", "orderID", order.ID)
	return order, nil
}

func (r *paymentOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentOrderStatus) error {
	logger.EnterMethod("paymentOrderRepository.UpdateStatus", "orderID", id, "status", status)

	query := `UPDATE payment_orders SET status = $1, updated_at = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.ExitMethodWithError("paymentOrderRepository.UpdateStatus", err, "orderID", id)
		return err
	}

	logger.ExitMethod("paymentOrderRepository.UpdateStatus", "orderID", id)
	return nil
}

func (r *paymentOrderRepository) ExpireStale(ctx context.Context, olderThan time.Time) (int64, error) {
	logger.EnterMethod("paymentOrderRepository.ExpireStale", "olderThan", olderThan)

	query := `
		UPDATE payment_orders
		SET status = $1, updated_at = $2
		WHERE status = $3 AND created_at < $4
	`
	res, err := r.db.ExecContext(ctx, query,
		domain.PaymentOrderStatusExpired, time.Now(), domain.PaymentOrderStatusCreated, olderThan,
	)
	if err != nil {
		logger.ExitMethodWithError("paymentOrderRepository.ExpireStale", err)
		return 0, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.ExitMethodWithError("paymentOrderRepository.ExpireStale", err)
		return 0, err
	}

	logger.ExitMethod("paymentOrderRepository.ExpireStale", "expired", affected)
	return affected, nil
}
