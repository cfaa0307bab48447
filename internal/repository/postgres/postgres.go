package postgres

import (
	"database/sql"

	"roomshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ExpenseRepository
	repository.PaymentOrderRepository
	repository.PreferenceRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ExpenseRepository:      NewExpenseRepository(db),
		PaymentOrderRepository: NewPaymentOrderRepository(db),
		PreferenceRepository:   NewPreferenceRepository(db),
	}
}
