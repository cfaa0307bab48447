package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/payment"
)

// MockExpenseRepo
type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}
func (m *MockExpenseRepo) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseRepo) ListByRoom(ctx context.Context, roomID string) ([]domain.Expense, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseRepo) SettleShare(ctx context.Context, expenseID, userID string, settledAt time.Time) error {
	args := m.Called(ctx, expenseID, userID, settledAt)
	return args.Error(0)
}
func (m *MockExpenseRepo) PendingShareSummaries(ctx context.Context, olderThan time.Time) ([]domain.PendingShareSummary, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingShareSummary), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRoom(ctx context.Context, roomID string) ([]domain.User, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockPaymentOrderRepo
type MockPaymentOrderRepo struct {
	mock.Mock
}

func (m *MockPaymentOrderRepo) Create(ctx context.Context, order *domain.PaymentOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
func (m *MockPaymentOrderRepo) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.PaymentOrder, error) {
	args := m.Called(ctx, gatewayOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentOrder), args.Error(1)
}
func (m *MockPaymentOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.PaymentOrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockPaymentOrderRepo) ExpireStale(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// MockPreferenceRepo
type MockPreferenceRepo struct {
	mock.Mock
}

func (m *MockPreferenceRepo) GetDefaultUPI(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
func (m *MockPreferenceRepo) SetDefaultUPI(ctx context.Context, userID, upiID string) error {
	args := m.Called(ctx, userID, upiID)
	return args.Error(0)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}
func (m *MockGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (*payment.Order, error) {
	args := m.Called(ctx, amountPaise, currency, receipt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Order), args.Error(1)
}
func (m *MockGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendShareReminder(ctx context.Context, toEmail, toName, payerName, description string, amountPaise int64, targetUPIID string) error {
	args := m.Called(ctx, toEmail, toName, payerName, description, amountPaise, targetUPIID)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingDigest(ctx context.Context, toEmail, toName string, pendingCount int, totalPaise int64) error {
	args := m.Called(ctx, toEmail, toName, pendingCount, totalPaise)
	return args.Error(0)
}
