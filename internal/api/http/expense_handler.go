package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/ledger"
	"roomshare-backend/internal/service"
)

type ExpenseHandler struct {
	expenses service.ExpenseService
}

func NewExpenseHandler(expenses service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type createExpenseRequest struct {
	Description  string                  `json:"description" validate:"required"`
	AmountPaise  int64                   `json:"amount_paise" validate:"required,gt=0"`
	Category     string                  `json:"category" validate:"required"`
	SpentOn      *time.Time              `json:"spent_on"`
	TargetUPIID  string                  `json:"target_upi_id"`
	Participants []ledger.ParticipantRef `json:"participants" validate:"required,min=1"`
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	in := service.CreateExpenseInput{
		Description:  req.Description,
		AmountPaise:  req.AmountPaise,
		Category:     domain.Category(req.Category),
		TargetUPIID:  req.TargetUPIID,
		Participants: ledger.IDs(req.Participants),
	}
	if req.SpentOn != nil {
		in.SpentOn = *req.SpentOn
	}

	expense, err := h.expenses.CreateExpense(r.Context(), ViewerID(r), in)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.ListRoomExpenses(r.Context(), ViewerID(r))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	expense, err := h.expenses.GetExpense(r.Context(), ViewerID(r), expenseID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// Ledger serves the three derived views in one response. The optional
// "window" query parameter bounds the history list by settlement time;
// it defaults to "all".
func (h *ExpenseHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	window := domain.HistoryWindow(r.URL.Query().Get("window"))
	if window == "" {
		window = domain.WindowAll
	}
	if !window.Valid() {
		respondErrorCode(w, http.StatusBadRequest, "invalid_window", "window must be one of: all, 7d, 30d, 365d")
		return
	}

	view, err := h.expenses.LedgerView(r.Context(), ViewerID(r), window)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}
