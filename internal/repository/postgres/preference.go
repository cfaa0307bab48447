package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type preferenceRepository struct {
	db *sql.DB
}

func NewPreferenceRepository(db *sql.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetDefaultUPI(ctx context.Context, userID string) (string, error) {
	logger.EnterMethod("preferenceRepository.GetDefaultUPI", "userID", userID)

	query := `SELECT default_upi_id FROM user_preferences WHERE user_id = $1`
	var upi string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&upi)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.ExitMethod("preferenceRepository.GetDefaultUPI", "userID", userID, "found", false)
			return "", nil
		}
		logger.ExitMethodWithError("preferenceRepository.GetDefaultUPI", err, "userID", userID)
		return "", err
	}

	logger.ExitMethod("preferenceRepository.GetDefaultUPI", "userID", userID, "found", true)
	return upi, nil
}

func (r *preferenceRepository) SetDefaultUPI(ctx context.Context, userID, upiID string) error {
	logger.EnterMethod("preferenceRepository.SetDefaultUPI", "userID", userID)

	query := `
		INSERT INTO user_preferences (user_id, default_upi_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET default_upi_id = $2, updated_at = $3
	`
	_, err := r.db.ExecContext(ctx, query, userID, upiID, time.Now())
	if err != nil {
		logger.ExitMethodWithError("preferenceRepository.SetDefaultUPI", err, "userID", userID)
		return err
	}

	logger.ExitMethod("preferenceRepository.SetDefaultUPI", "userID", userID)
	return nil
}
