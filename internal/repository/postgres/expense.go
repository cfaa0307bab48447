package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	logger.EnterMethod("expenseRepository.Create", "roomID", expense.RoomID, "paidBy", expense.PaidByID, "amountPaise", expense.AmountPaise)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.Create", err, "roomID", expense.RoomID)
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `
		INSERT INTO expenses (id, room_id, description, amount_paise, category, spent_on, target_upi_id, paid_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		expense.ID, expense.RoomID, expense.Description, expense.AmountPaise, expense.Category,
		expense.SpentOn, expense.TargetUPIID, expense.PaidByID, now, now,
	).Scan(&expense.CreatedAt, &expense.UpdatedAt)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.Create", err, "roomID", expense.RoomID)
		return err
	}

	splitQuery := `
		INSERT INTO expense_splits (expense_id, user_id, amount_paise, status, settled_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i := range expense.Splits {
		s := &expense.Splits[i]
		if _, err := tx.ExecContext(ctx, splitQuery, expense.ID, s.UserID, s.AmountPaise, s.Status, s.SettledAt); err != nil {
			logger.ExitMethodWithError("expenseRepository.Create", err, "expenseID", expense.ID, "userID", s.UserID)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ExitMethodWithError("expenseRepository.Create", err, "expenseID", expense.ID)
		return err
	}

	logger.ExitMethod("expenseRepository.Create", "expenseID", expense.ID, "splits", len(expense.Splits))
	return nil
}

const expenseColumns = `
	e.id, e.room_id, e.description, e.amount_paise, e.category, e.spent_on,
	e.target_upi_id, e.paid_by, e.created_at, e.updated_at,
	u.id, u.name, u.email, COALESCE(u.phone, ''), COALESCE(u.avatar_url, ''), COALESCE(u.upi_id, '')
`

func scanExpense(row interface{ Scan(...any) error }) (*domain.Expense, error) {
	e := &domain.Expense{}
	payer := domain.Person{}
	err := row.Scan(
		&e.ID, &e.RoomID, &e.Description, &e.AmountPaise, &e.Category, &e.SpentOn,
		&e.TargetUPIID, &e.PaidByID, &e.CreatedAt, &e.UpdatedAt,
		&payer.ID, &payer.Name, &payer.Email, &payer.Phone, &payer.AvatarURL, &payer.UPIID,
	)
	if err != nil {
		return nil, err
	}
	e.PaidBy = &payer
	return e, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	logger.EnterMethod("expenseRepository.GetByID", "expenseID", id)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN users u ON u.id = e.paid_by
		WHERE e.id = $1
	`
	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrNotFound
		}
		logger.ExitMethodWithError("expenseRepository.GetByID", err, "expenseID", id)
		return nil, err
	}

	splits, err := r.loadSplits(ctx, []string{id})
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.GetByID", err, "expenseID", id)
		return nil, err
	}
	expense.Splits = splits[id]

	logger.ExitMethod("expenseRepository.GetByID", "expenseID", id, "splits", len(expense.Splits))
	return expense, nil
}

func (r *expenseRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.Expense, error) {
	logger.EnterMethod("expenseRepository.ListByRoom", "roomID", roomID)

	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN users u ON u.id = e.paid_by
		WHERE e.room_id = $1
		ORDER BY e.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.ListByRoom", err, "roomID", roomID)
		return nil, err
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	ids := []string{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			logger.ExitMethodWithError("expenseRepository.ListByRoom", err, "roomID", roomID)
			return nil, err
		}
		expenses = append(expenses, *e)
		ids = append(ids, e.ID)
	}

	if len(ids) > 0 {
		splits, err := r.loadSplits(ctx, ids)
		if err != nil {
			logger.ExitMethodWithError("expenseRepository.ListByRoom", err, "roomID", roomID)
			return nil, err
		}
		for i := range expenses {
			expenses[i].Splits = splits[expenses[i].ID]
		}
	}

	logger.ExitMethod("expenseRepository.ListByRoom", "roomID", roomID, "count", len(expenses))
	return expenses, nil
}

// loadSplits fetches the splits for a set of expenses in one query, with the
// participant joined in.
func (r *expenseRepository) loadSplits(ctx context.Context, expenseIDs []string) (map[string][]domain.Share, error) {
	query := `
		SELECT s.expense_id, s.user_id, s.amount_paise, s.status, s.settled_at,
		       u.id, u.name, u.email, COALESCE(u.phone, ''), COALESCE(u.avatar_url, ''), COALESCE(u.upi_id, '')
		FROM expense_splits s
		JOIN users u ON u.id = s.user_id
		WHERE s.expense_id = ANY($1)
		ORDER BY s.expense_id, u.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(expenseIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.Share, len(expenseIDs))
	for rows.Next() {
		var expenseID string
		var s domain.Share
		person := domain.Person{}
		err := rows.Scan(
			&expenseID, &s.UserID, &s.AmountPaise, &s.Status, &s.SettledAt,
			&person.ID, &person.Name, &person.Email, &person.Phone, &person.AvatarURL, &person.UPIID,
		)
		if err != nil {
			return nil, err
		}
		s.User = &person
		out[expenseID] = append(out[expenseID], s)
	}
	return out, nil
}

func (r *expenseRepository) SettleShare(ctx context.Context, expenseID, userID string, settledAt time.Time) error {
	logger.EnterMethod("expenseRepository.SettleShare", "expenseID", expenseID, "userID", userID)

	// The status guard makes the transition one-directional: a settled share
	// matches no row, so settled -> pending is unrepresentable here.
	query := `
		UPDATE expense_splits
		SET status = $1, settled_at = $2
		WHERE expense_id = $3 AND user_id = $4 AND status = $5
	`
	res, err := r.db.ExecContext(ctx, query,
		domain.ShareStatusSettled, settledAt, expenseID, userID, domain.ShareStatusPending,
	)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.SettleShare", err, "expenseID", expenseID, "userID", userID)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.SettleShare", err, "expenseID", expenseID)
		return err
	}
	if affected == 0 {
		logger.ExitMethodWithError("expenseRepository.SettleShare", domain.ErrNoPendingShare, "expenseID", expenseID, "userID", userID)
		return domain.ErrNoPendingShare
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE expenses SET updated_at = $1 WHERE id = $2`, settledAt, expenseID); err != nil {
		// The share is already settled; a failed touch only affects the
		// fallback ordering value.
		logger.Warn("failed to touch expense after settlement", "expenseID", expenseID, "error", err)
	}

	logger.ExitMethod("expenseRepository.SettleShare", "expenseID", expenseID, "userID", userID)
	return nil
}

func (r *expenseRepository) PendingShareSummaries(ctx context.Context, olderThan time.Time) ([]domain.PendingShareSummary, error) {
	logger.EnterMethod("expenseRepository.PendingShareSummaries", "olderThan", olderThan)

	query := `
		SELECT u.id, u.room_id, u.name, u.email, COALESCE(u.phone, ''), COALESCE(u.avatar_url, ''),
		       COALESCE(u.upi_id, ''), COUNT(*), SUM(s.amount_paise)
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		JOIN users u ON u.id = s.user_id
		WHERE s.status = $1 AND s.user_id <> e.paid_by AND e.created_at < $2
		GROUP BY u.id, u.room_id, u.name, u.email, u.phone, u.avatar_url, u.upi_id
		ORDER BY SUM(s.amount_paise) DESC
	`
	rows, err := r.db.QueryContext(ctx, query, domain.ShareStatusPending, olderThan)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.PendingShareSummaries", err)
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.PendingShareSummary{}
	for rows.Next() {
		var sum domain.PendingShareSummary
		err := rows.Scan(
			&sum.User.ID, &sum.User.RoomID, &sum.User.Name, &sum.User.Email,
			&sum.User.Phone, &sum.User.AvatarURL, &sum.User.UPIID,
			&sum.PendingCount, &sum.TotalPaise,
		)
		if err != nil {
			logger.ExitMethodWithError("expenseRepository.PendingShareSummaries", err)
			return nil, err
		}
		summaries = append(summaries, sum)
	}

	logger.ExitMethod("expenseRepository.PendingShareSummaries", "count", len(summaries))
	return summaries, nil
}

// Helper to convert empty string to SQL NULL
func nullString(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
