package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roomshare-backend/internal/domain"
)

func expenseWithPeople() *domain.Expense {
	e := pendingExpense()
	e.PaidBy = &domain.Person{ID: "alice", Name: "Alice", Email: "alice@example.com"}
	e.Splits[1].User = &domain.Person{ID: "bob", Name: "Bob", Email: "bob@example.com"}
	e.Splits[2].User = &domain.Person{ID: "carol", Name: "Carol", Email: "carol@example.com"}
	return e
}

func TestReminderService_RemindShare(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		userRepo := new(MockUserRepo)
		email := new(MockEmailService)
		svc := NewReminderService(expenseRepo, userRepo, email)

		expenseRepo.On("GetByID", ctx, "exp-1").Return(expenseWithPeople(), nil)
		email.On("SendShareReminder", ctx, "bob@example.com", "Bob", "Alice",
			"groceries run", int64(3000), "alice@upi").Return(nil)

		err := svc.RemindShare(ctx, "alice", "exp-1", "bob")
		require.NoError(t, err)
		email.AssertExpectations(t)
	})

	t.Run("OnlyPayerMayRemind", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		userRepo := new(MockUserRepo)
		email := new(MockEmailService)
		svc := NewReminderService(expenseRepo, userRepo, email)

		expenseRepo.On("GetByID", ctx, "exp-1").Return(expenseWithPeople(), nil)

		err := svc.RemindShare(ctx, "bob", "exp-1", "carol")
		assert.ErrorIs(t, err, domain.ErrNotPayer)
		email.AssertNotCalled(t, "SendShareReminder", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SettledShareNeedsNoReminder", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		userRepo := new(MockUserRepo)
		email := new(MockEmailService)
		svc := NewReminderService(expenseRepo, userRepo, email)

		e := expenseWithPeople()
		e.Splits[1].Status = domain.ShareStatusSettled
		expenseRepo.On("GetByID", ctx, "exp-1").Return(e, nil)

		err := svc.RemindShare(ctx, "alice", "exp-1", "bob")
		assert.ErrorIs(t, err, domain.ErrNoPendingShare)
	})

	t.Run("PayerIsNotARemindableTarget", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		userRepo := new(MockUserRepo)
		email := new(MockEmailService)
		svc := NewReminderService(expenseRepo, userRepo, email)

		expenseRepo.On("GetByID", ctx, "exp-1").Return(expenseWithPeople(), nil)

		err := svc.RemindShare(ctx, "alice", "exp-1", "alice")
		assert.ErrorIs(t, err, domain.ErrNotParticipant)
	})
}

func TestReminderService_RemindAllPending(t *testing.T) {
	ctx := context.Background()

	t.Run("OneReminderPerPendingDebtor", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		userRepo := new(MockUserRepo)
		email := new(MockEmailService)
		svc := NewReminderService(expenseRepo, userRepo, email)

		e := expenseWithPeople()
		e.Splits[2].Status = domain.ShareStatusSettled // carol already paid
		expenseRepo.On("GetByID", ctx, "exp-1").Return(e, nil)
		email.On("SendShareReminder", ctx, "bob@example.com", "Bob", "Alice",
			"groceries run", int64(3000), "alice@upi").Return(nil)

		sent, err := svc.RemindAllPending(ctx, "alice", "exp-1")
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		email.AssertNumberOfCalls(t, "SendShareReminder", 1)
	})

	t.Run("OneFailureDoesNotAbortTheBatch", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		userRepo := new(MockUserRepo)
		email := new(MockEmailService)
		svc := NewReminderService(expenseRepo, userRepo, email)

		expenseRepo.On("GetByID", ctx, "exp-1").Return(expenseWithPeople(), nil)
		email.On("SendShareReminder", ctx, "bob@example.com", "Bob", "Alice",
			"groceries run", int64(3000), "alice@upi").Return(errors.New("smtp timeout"))
		email.On("SendShareReminder", ctx, "carol@example.com", "Carol", "Alice",
			"groceries run", int64(3000), "alice@upi").Return(nil)

		sent, err := svc.RemindAllPending(ctx, "alice", "exp-1")
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})
}
