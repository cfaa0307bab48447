package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/ledger"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
	userRepo    repository.UserRepository
	preferences PreferenceService
}

func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
	preferences PreferenceService,
) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		preferences: preferences,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, viewerID string, in CreateExpenseInput) (*domain.Expense, error) {
	logger.EnterMethod("expenseService.CreateExpense", "viewerID", viewerID, "amountPaise", in.AmountPaise, "participants", len(in.Participants))

	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.CreateExpense", err, "viewerID", viewerID)
		return nil, err
	}

	if in.AmountPaise <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !in.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("description is required")
	}

	// An empty destination falls back to the viewer's remembered default;
	// whatever ends up here is frozen onto the expense.
	targetUPI := strings.TrimSpace(in.TargetUPIID)
	if targetUPI == "" {
		targetUPI, err = s.preferences.DefaultUPI(ctx, viewerID)
		if err != nil {
			logger.ExitMethodWithError("expenseService.CreateExpense", err, "viewerID", viewerID)
			return nil, err
		}
	}
	if targetUPI == "" {
		return nil, domain.ErrMissingUPIID
	}

	splits, err := ledger.ComputeShares(in.AmountPaise, viewerID, in.Participants)
	if err != nil {
		logger.ExitMethodWithError("expenseService.CreateExpense", err, "viewerID", viewerID)
		return nil, err
	}

	// Every debtor must actually share the viewer's room.
	roommates, err := s.userRepo.ListByRoom(ctx, viewer.RoomID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.CreateExpense", err, "roomID", viewer.RoomID)
		return nil, err
	}
	inRoom := make(map[string]bool, len(roommates))
	for _, rm := range roommates {
		inRoom[rm.ID] = true
	}
	for _, split := range splits {
		if !inRoom[split.UserID] {
			logger.ExitMethodWithError("expenseService.CreateExpense", domain.ErrNotRoommate, "userID", split.UserID)
			return nil, domain.ErrNotRoommate
		}
	}

	spentOn := in.SpentOn
	if spentOn.IsZero() {
		spentOn = time.Now()
	}

	expense := &domain.Expense{
		ID:          uuid.NewString(),
		RoomID:      viewer.RoomID,
		Description: strings.TrimSpace(in.Description),
		AmountPaise: in.AmountPaise,
		Category:    in.Category,
		SpentOn:     spentOn,
		TargetUPIID: targetUPI,
		PaidByID:    viewerID,
		Splits:      splits,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		logger.ExitMethodWithError("expenseService.CreateExpense", err, "viewerID", viewerID)
		return nil, err
	}

	// Remember the destination as the next form pre-fill. Best-effort: the
	// expense is already persisted.
	if err := s.preferences.SetDefaultUPI(ctx, viewerID, targetUPI); err != nil {
		logger.Warn("failed to store default UPI preference", "userID", viewerID, "error", err)
	}

	created, err := s.expenseRepo.GetByID(ctx, expense.ID)
	if err != nil {
		// The write committed; return what we assembled locally.
		logger.Warn("failed to reload created expense", "expenseID", expense.ID, "error", err)
		created = expense
	}

	logger.ExitMethod("expenseService.CreateExpense", "expenseID", created.ID, "splits", len(created.Splits))
	return created, nil
}

func (s *expenseService) GetExpense(ctx context.Context, viewerID, expenseID string) (*domain.Expense, error) {
	logger.EnterMethod("expenseService.GetExpense", "viewerID", viewerID, "expenseID", expenseID)

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.GetExpense", err, "expenseID", expenseID)
		return nil, err
	}
	if expense.ShareOf(viewerID) == nil {
		logger.ExitMethodWithError("expenseService.GetExpense", domain.ErrNotParticipant, "viewerID", viewerID, "expenseID", expenseID)
		return nil, domain.ErrNotParticipant
	}

	logger.ExitMethod("expenseService.GetExpense", "expenseID", expenseID)
	return expense, nil
}

func (s *expenseService) ListRoomExpenses(ctx context.Context, viewerID string) ([]domain.Expense, error) {
	logger.EnterMethod("expenseService.ListRoomExpenses", "viewerID", viewerID)

	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.ListRoomExpenses", err, "viewerID", viewerID)
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByRoom(ctx, viewer.RoomID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.ListRoomExpenses", err, "roomID", viewer.RoomID)
		return nil, err
	}

	logger.ExitMethod("expenseService.ListRoomExpenses", "roomID", viewer.RoomID, "count", len(expenses))
	return expenses, nil
}

func (s *expenseService) LedgerView(ctx context.Context, viewerID string, window domain.HistoryWindow) (*domain.LedgerView, error) {
	logger.EnterMethod("expenseService.LedgerView", "viewerID", viewerID, "window", window)

	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.LedgerView", err, "viewerID", viewerID)
		return nil, err
	}

	expenses, err := s.expenseRepo.ListByRoom(ctx, viewer.RoomID)
	if err != nil {
		logger.ExitMethodWithError("expenseService.LedgerView", err, "roomID", viewer.RoomID)
		return nil, err
	}

	view := ledger.Classify(expenses, viewerID, window, time.Now())

	logger.ExitMethod("expenseService.LedgerView", "viewerID", viewerID,
		"iOwe", len(view.IOwe), "owedToMe", len(view.OwedToMe), "history", len(view.History))
	return &view, nil
}
