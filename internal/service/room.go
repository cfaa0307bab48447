package service

import (
	"context"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type roomService struct {
	userRepo repository.UserRepository
}

func NewRoomService(userRepo repository.UserRepository) RoomService {
	return &roomService{userRepo: userRepo}
}

// ListRoommates returns everyone in the viewer's room except the viewer,
// which is exactly the participant picker for a new expense.
func (s *roomService) ListRoommates(ctx context.Context, viewerID string) ([]domain.Person, error) {
	logger.EnterMethod("roomService.ListRoommates", "viewerID", viewerID)

	viewer, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		logger.ExitMethodWithError("roomService.ListRoommates", err, "viewerID", viewerID)
		return nil, err
	}

	users, err := s.userRepo.ListByRoom(ctx, viewer.RoomID)
	if err != nil {
		logger.ExitMethodWithError("roomService.ListRoommates", err, "roomID", viewer.RoomID)
		return nil, err
	}

	people := make([]domain.Person, 0, len(users))
	for _, u := range users {
		if u.ID == viewerID {
			continue
		}
		people = append(people, u.ToPerson())
	}

	logger.ExitMethod("roomService.ListRoommates", "viewerID", viewerID, "count", len(people))
	return people, nil
}
