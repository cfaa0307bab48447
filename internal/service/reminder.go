package service

import (
	"context"
	"fmt"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type reminderService struct {
	expenseRepo repository.ExpenseRepository
	userRepo    repository.UserRepository
	email       EmailService
}

func NewReminderService(
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
	email EmailService,
) ReminderService {
	return &reminderService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		email:       email,
	}
}

// RemindShare nudges one debtor about their pending share. Only the payer may
// send reminders, and only for shares that are still pending.
func (s *reminderService) RemindShare(ctx context.Context, viewerID, expenseID, targetUserID string) error {
	logger.EnterMethod("reminderService.RemindShare", "viewerID", viewerID, "expenseID", expenseID, "targetUserID", targetUserID)

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		logger.ExitMethodWithError("reminderService.RemindShare", err, "expenseID", expenseID)
		return err
	}
	if !expense.IsPayer(viewerID) {
		logger.ExitMethodWithError("reminderService.RemindShare", domain.ErrNotPayer, "viewerID", viewerID)
		return domain.ErrNotPayer
	}

	share := expense.ShareOf(targetUserID)
	if share == nil || targetUserID == expense.PaidByID {
		return domain.ErrNotParticipant
	}
	if share.Status != domain.ShareStatusPending {
		return domain.ErrNoPendingShare
	}

	if err := s.sendReminder(ctx, expense, *share); err != nil {
		logger.ExitMethodWithError("reminderService.RemindShare", err, "targetUserID", targetUserID)
		return err
	}

	logger.ExitMethod("reminderService.RemindShare", "expenseID", expenseID, "targetUserID", targetUserID)
	return nil
}

// RemindAllPending fans one reminder out to every pending debtor of the
// expense. A single failed send is logged and skipped so the rest of the
// batch still goes out.
func (s *reminderService) RemindAllPending(ctx context.Context, viewerID, expenseID string) (int, error) {
	logger.EnterMethod("reminderService.RemindAllPending", "viewerID", viewerID, "expenseID", expenseID)

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		logger.ExitMethodWithError("reminderService.RemindAllPending", err, "expenseID", expenseID)
		return 0, err
	}
	if !expense.IsPayer(viewerID) {
		logger.ExitMethodWithError("reminderService.RemindAllPending", domain.ErrNotPayer, "viewerID", viewerID)
		return 0, domain.ErrNotPayer
	}

	sent := 0
	for _, share := range expense.PendingDebtorShares() {
		if err := s.sendReminder(ctx, expense, share); err != nil {
			logger.Warn("failed to send share reminder", "expenseID", expenseID, "userID", share.UserID, "error", err)
			continue
		}
		sent++
	}

	logger.ExitMethod("reminderService.RemindAllPending", "expenseID", expenseID, "sent", sent)
	return sent, nil
}

func (s *reminderService) sendReminder(ctx context.Context, expense *domain.Expense, share domain.Share) error {
	debtor := share.User
	if debtor == nil {
		u, err := s.userRepo.GetByID(ctx, share.UserID)
		if err != nil {
			return fmt.Errorf("failed to resolve debtor %s: %w", share.UserID, err)
		}
		p := u.ToPerson()
		debtor = &p
	}

	payerName := "your roommate"
	if expense.PaidBy != nil {
		payerName = expense.PaidBy.Name
	}

	return s.email.SendShareReminder(ctx, debtor.Email, debtor.Name, payerName,
		expense.Description, share.AmountPaise, expense.TargetUPIID)
}
