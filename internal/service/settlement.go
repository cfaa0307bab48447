package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/payment"
	"roomshare-backend/internal/repository"
)

type settlementService struct {
	expenseRepo repository.ExpenseRepository
	orderRepo   repository.PaymentOrderRepository
	gateway     payment.Gateway
	currency    string
}

func NewSettlementService(
	expenseRepo repository.ExpenseRepository,
	orderRepo repository.PaymentOrderRepository,
	gateway payment.Gateway,
	currency string,
) SettlementService {
	return &settlementService{
		expenseRepo: expenseRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		currency:    currency,
	}
}

func (s *settlementService) InitiatePayment(ctx context.Context, viewerID, expenseID string) (*PaymentInitiation, error) {
	logger.EnterMethod("settlementService.InitiatePayment", "viewerID", viewerID, "expenseID", expenseID)

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		logger.ExitMethodWithError("settlementService.InitiatePayment", err, "expenseID", expenseID)
		return nil, err
	}

	if expense.IsPayer(viewerID) {
		return nil, domain.ErrPayerCannotPay
	}
	share := expense.ShareOf(viewerID)
	if share == nil {
		return nil, domain.ErrNotParticipant
	}
	if share.Status == domain.ShareStatusSettled {
		return nil, domain.ErrNoPendingShare
	}

	receipt := payment.BuildReceipt(expense.ID, time.Now())
	order, err := s.gateway.CreateOrder(ctx, share.AmountPaise, s.currency, receipt, map[string]string{
		"expense_id": expense.ID,
		"user_id":    viewerID,
	})
	if err != nil {
		logger.ExitMethodWithError("settlementService.InitiatePayment", err, "expenseID", expenseID)
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	record := &domain.PaymentOrder{
		ID:             uuid.NewString(),
		ExpenseID:      expense.ID,
		UserID:         viewerID,
		GatewayOrderID: order.ID,
		Receipt:        receipt,
		AmountPaise:    order.AmountPaise,
		Currency:       order.Currency,
		Status:         domain.PaymentOrderStatusCreated,
	}
	if err := s.orderRepo.Create(ctx, record); err != nil {
		// The gateway order exists but is unusable without the audit row;
		// fail the initiation so the user retries cleanly.
		logger.ExitMethodWithError("settlementService.InitiatePayment", err, "gatewayOrderID", order.ID)
		return nil, err
	}

	logger.ExitMethod("settlementService.InitiatePayment", "expenseID", expenseID, "gatewayOrderID", order.ID)
	return &PaymentInitiation{
		GatewayKeyID:   s.gateway.KeyID(),
		GatewayOrderID: order.ID,
		Receipt:        receipt,
		AmountPaise:    order.AmountPaise,
		Currency:       order.Currency,
		TargetUPIID:    expense.TargetUPIID,
	}, nil
}

// CompleteCheckout drives the share's one-directional state machine from the
// checkout result. Cancelled and failed outcomes never mutate the ledger.
// A completed outcome first verifies the gateway signature, then settles the
// share; if the settle write fails after a verified charge the caller gets
// SettlementUnrecorded wrapped around ErrSettlementNotRecorded: money moved
// but the ledger did not, and that inconsistency must stay visible.
func (s *settlementService) CompleteCheckout(ctx context.Context, viewerID, expenseID string, result domain.CheckoutResult) (*SettlementOutcome, error) {
	logger.EnterMethod("settlementService.CompleteCheckout", "viewerID", viewerID, "expenseID", expenseID, "outcome", result.Outcome)

	order, err := s.orderRepo.GetByGatewayOrderID(ctx, result.GatewayOrderID)
	if err != nil {
		logger.ExitMethodWithError("settlementService.CompleteCheckout", err, "gatewayOrderID", result.GatewayOrderID)
		return nil, err
	}
	if order.UserID != viewerID || order.ExpenseID != expenseID {
		logger.ExitMethodWithError("settlementService.CompleteCheckout", domain.ErrNotParticipant, "gatewayOrderID", result.GatewayOrderID)
		return nil, domain.ErrNotParticipant
	}

	switch result.Outcome {
	case domain.CheckoutCancelled:
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.PaymentOrderStatusCancelled); err != nil {
			logger.Warn("failed to record order cancellation", "orderID", order.ID, "error", err)
		}
		logger.ExitMethod("settlementService.CompleteCheckout", "status", domain.SettlementCancelled)
		return &SettlementOutcome{Status: domain.SettlementCancelled}, nil

	case domain.CheckoutFailed:
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.PaymentOrderStatusFailed); err != nil {
			logger.Warn("failed to record order failure", "orderID", order.ID, "error", err)
		}
		logger.ExitMethod("settlementService.CompleteCheckout", "status", domain.SettlementFailed)
		return &SettlementOutcome{Status: domain.SettlementFailed, Reason: result.FailureReason}, nil

	case domain.CheckoutCompleted:
		return s.settle(ctx, viewerID, order, result)

	default:
		return nil, fmt.Errorf("unknown checkout outcome: %q", result.Outcome)
	}
}

func (s *settlementService) settle(ctx context.Context, viewerID string, order *domain.PaymentOrder, result domain.CheckoutResult) (*SettlementOutcome, error) {
	if !s.gateway.VerifyPaymentSignature(result.GatewayOrderID, result.GatewayPaymentID, result.Signature) {
		// No charge is trusted without a valid signature, so nothing mutates.
		logger.ExitMethodWithError("settlementService.CompleteCheckout", domain.ErrInvalidSignature, "gatewayOrderID", result.GatewayOrderID)
		return nil, domain.ErrInvalidSignature
	}

	now := time.Now()
	err := s.expenseRepo.SettleShare(ctx, order.ExpenseID, viewerID, now)
	if err != nil && !errors.Is(err, domain.ErrNoPendingShare) {
		// The charge is verified; failing to write the settlement leaves the
		// ledger behind the real world.
		logger.ExitMethodWithError("settlementService.CompleteCheckout", err, "expenseID", order.ExpenseID)
		return &SettlementOutcome{Status: domain.SettlementUnrecorded},
			fmt.Errorf("%w: %v", domain.ErrSettlementNotRecorded, err)
	}
	// ErrNoPendingShare here means the share settled in a concurrent call;
	// the charge is the same obligation, so treat the retry as settled.

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, domain.PaymentOrderStatusPaid); err != nil {
		logger.Warn("failed to mark payment order paid", "orderID", order.ID, "error", err)
	}

	// Reflect: re-read the authoritative record instead of patching local
	// state, so shares settled concurrently by others are picked up too.
	refreshed, err := s.expenseRepo.GetByID(ctx, order.ExpenseID)
	if err != nil {
		logger.Warn("settled but failed to reload expense", "expenseID", order.ExpenseID, "error", err)
		refreshed = nil
	}

	logger.ExitMethod("settlementService.CompleteCheckout", "status", domain.SettlementSettled, "expenseID", order.ExpenseID)
	return &SettlementOutcome{Status: domain.SettlementSettled, Expense: refreshed}, nil
}
