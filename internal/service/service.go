package service

import (
	"context"
	"time"

	"roomshare-backend/internal/domain"
)

// CreateExpenseInput carries the immutable core of a new shared expense.
// Participants excludes the payer implicitly; the share engine adds them.
type CreateExpenseInput struct {
	Description  string
	AmountPaise  int64
	Category     domain.Category
	SpentOn      time.Time
	TargetUPIID  string
	Participants []string
}

type ExpenseService interface {
	CreateExpense(ctx context.Context, viewerID string, in CreateExpenseInput) (*domain.Expense, error)
	GetExpense(ctx context.Context, viewerID, expenseID string) (*domain.Expense, error)
	ListRoomExpenses(ctx context.Context, viewerID string) ([]domain.Expense, error)
	LedgerView(ctx context.Context, viewerID string, window domain.HistoryWindow) (*domain.LedgerView, error)
}

// PaymentInitiation is everything the checkout widget needs to collect a
// debtor's payment for one pending share.
type PaymentInitiation struct {
	GatewayKeyID   string `json:"gateway_key_id"`
	GatewayOrderID string `json:"gateway_order_id"`
	Receipt        string `json:"receipt"`
	AmountPaise    int64  `json:"amount_paise"`
	Currency       string `json:"currency"`
	TargetUPIID    string `json:"target_upi_id"`
}

// SettlementOutcome reports how a checkout round ended. Expense is the
// re-fetched authoritative record after a confirmed settlement, nil
// otherwise.
type SettlementOutcome struct {
	Status  domain.SettlementStatus `json:"status"`
	Reason  string                  `json:"reason,omitempty"`
	Expense *domain.Expense         `json:"expense,omitempty"`
}

type SettlementService interface {
	InitiatePayment(ctx context.Context, viewerID, expenseID string) (*PaymentInitiation, error)
	CompleteCheckout(ctx context.Context, viewerID, expenseID string, result domain.CheckoutResult) (*SettlementOutcome, error)
}

type ReminderService interface {
	RemindShare(ctx context.Context, viewerID, expenseID, targetUserID string) error
	// RemindAllPending dispatches one reminder per pending non-payer share
	// and returns how many went out; individual failures do not abort the
	// batch.
	RemindAllPending(ctx context.Context, viewerID, expenseID string) (int, error)
}

type RoomService interface {
	ListRoommates(ctx context.Context, viewerID string) ([]domain.Person, error)
}

// PreferenceService remembers each user's last-used payment destination as a
// form pre-fill default. Changing it never touches past expenses.
type PreferenceService interface {
	DefaultUPI(ctx context.Context, userID string) (string, error)
	SetDefaultUPI(ctx context.Context, userID, upiID string) error
}

type AuthService interface {
	Register(ctx context.Context, roomID, name, email, phone, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendShareReminder(ctx context.Context, toEmail, toName, payerName, description string, amountPaise int64, targetUPIID string) error
	SendPendingDigest(ctx context.Context, toEmail, toName string, pendingCount int, totalPaise int64) error
}
