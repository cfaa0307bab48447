package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"roomshare-backend/internal/security"
	"roomshare-backend/internal/service"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Expense    *ExpenseHandler
	Settlement *SettlementHandler
	Reminder   *ReminderHandler
	Preference *PreferenceHandler
	Room       *RoomHandler
}

func NewHandlers(
	auth service.AuthService,
	expenses service.ExpenseService,
	settlements service.SettlementService,
	reminders service.ReminderService,
	preferences service.PreferenceService,
	rooms service.RoomService,
) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(auth),
		Expense:    NewExpenseHandler(expenses),
		Settlement: NewSettlementHandler(settlements),
		Reminder:   NewReminderHandler(reminders),
		Preference: NewPreferenceHandler(preferences),
		Room:       NewRoomHandler(rooms),
	}
}

// NewRouter mounts the API under /api/v1. Everything except registration and
// login sits behind the bearer-token middleware.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	api := root.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	// Authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/expenses", h.Expense.Create).Methods(http.MethodPost)
	authed.HandleFunc("/expenses", h.Expense.List).Methods(http.MethodGet)
	authed.HandleFunc("/expenses/{id}", h.Expense.Get).Methods(http.MethodGet)
	authed.HandleFunc("/ledger", h.Expense.Ledger).Methods(http.MethodGet)

	authed.HandleFunc("/expenses/{id}/payment", h.Settlement.InitiatePayment).Methods(http.MethodPost)
	authed.HandleFunc("/expenses/{id}/checkout", h.Settlement.CompleteCheckout).Methods(http.MethodPost)
	authed.HandleFunc("/expenses/{id}/remind", h.Reminder.Remind).Methods(http.MethodPost)

	authed.HandleFunc("/roommates", h.Room.Roommates).Methods(http.MethodGet)
	authed.HandleFunc("/preferences/upi", h.Preference.GetDefaultUPI).Methods(http.MethodGet)
	authed.HandleFunc("/preferences/upi", h.Preference.SetDefaultUPI).Methods(http.MethodPut)

	return root
}
