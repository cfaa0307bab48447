package service

import (
	"context"
	"strings"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type preferenceService struct {
	prefRepo repository.PreferenceRepository
}

func NewPreferenceService(prefRepo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{prefRepo: prefRepo}
}

func (s *preferenceService) DefaultUPI(ctx context.Context, userID string) (string, error) {
	return s.prefRepo.GetDefaultUPI(ctx, userID)
}

func (s *preferenceService) SetDefaultUPI(ctx context.Context, userID, upiID string) error {
	logger.EnterMethod("preferenceService.SetDefaultUPI", "userID", userID)

	upiID = strings.TrimSpace(upiID)
	if upiID == "" {
		return domain.ErrMissingUPIID
	}
	if err := s.prefRepo.SetDefaultUPI(ctx, userID, upiID); err != nil {
		logger.ExitMethodWithError("preferenceService.SetDefaultUPI", err, "userID", userID)
		return err
	}

	logger.ExitMethod("preferenceService.SetDefaultUPI", "userID", userID)
	return nil
}
