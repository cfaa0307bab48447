package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
	"roomshare-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, room_id, name, email, COALESCE(phone, ''), COALESCE(avatar_url, ''),
	COALESCE(upi_id, ''), password_hash, created_at, updated_at
`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.ID, &u.RoomID, &u.Name, &u.Email, &u.Phone, &u.AvatarURL,
		&u.UPIID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	logger.EnterMethod("userRepository.Create", "email", user.Email, "roomID", user.RoomID)

	query := `
		INSERT INTO users (id, room_id, name, email, phone, avatar_url, upi_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.RoomID, user.Name, user.Email, nullString(user.Phone),
		nullString(user.AvatarURL), nullString(user.UPIID), user.PasswordHash, now, now,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("userRepository.Create", err, "email", user.Email)
		return err
	}

	logger.ExitMethod("userRepository.Create", "userID", user.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	logger.EnterMethod("userRepository.GetByID", "userID", id)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrNotFound
		}
		logger.ExitMethodWithError("userRepository.GetByID", err, "userID", id)
		return nil, err
	}

	logger.ExitMethod("userRepository.GetByID", "userID", id)
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	logger.EnterMethod("userRepository.GetByEmail", "email", email)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrNotFound
		}
		logger.ExitMethodWithError("userRepository.GetByEmail", err, "email", email)
		return nil, err
	}

	logger.ExitMethod("userRepository.GetByEmail", "userID", user.ID)
	return user, nil
}

func (r *userRepository) ListByRoom(ctx context.Context, roomID string) ([]domain.User, error) {
	logger.EnterMethod("userRepository.ListByRoom", "roomID", roomID)

	query := `SELECT ` + userColumns + ` FROM users WHERE room_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		logger.ExitMethodWithError("userRepository.ListByRoom", err, "roomID", roomID)
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.ExitMethodWithError("userRepository.ListByRoom", err, "roomID", roomID)
			return nil, err
		}
		users = append(users, *u)
	}

	logger.ExitMethod("userRepository.ListByRoom", "roomID", roomID, "count", len(users))
	return users, nil
}
