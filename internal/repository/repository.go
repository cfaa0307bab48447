package repository

import (
	"context"
	"time"

	"roomshare-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.User, error)
}

type ExpenseRepository interface {
	// Create persists the expense together with its splits atomically.
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Expense, error)

	// SettleShare flips a pending share to settled and stamps settledAt.
	// The update is conditional on status='pending', so a settled share can
	// never move back; it returns domain.ErrNoPendingShare when nothing
	// matched.
	SettleShare(ctx context.Context, expenseID, userID string, settledAt time.Time) error

	// PendingShareSummaries aggregates outstanding debtor shares created
	// before the cutoff, one row per debtor, for the reminder digest job.
	PendingShareSummaries(ctx context.Context, olderThan time.Time) ([]domain.PendingShareSummary, error)
}

type PaymentOrderRepository interface {
	Create(ctx context.Context, order *domain.PaymentOrder) error
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.PaymentOrder, error)
	UpdateStatus(ctx context.Context, id string, status domain.PaymentOrderStatus) error

	// ExpireStale marks CREATED orders older than the cutoff as EXPIRED and
	// returns how many were touched.
	ExpireStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type PreferenceRepository interface {
	// GetDefaultUPI returns the user's remembered payment destination, or ""
	// when none has been stored yet.
	GetDefaultUPI(ctx context.Context, userID string) (string, error)
	SetDefaultUPI(ctx context.Context, userID, upiID string) error
}
