package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"roomshare-backend/internal/service"
)

type ReminderHandler struct {
	reminders service.ReminderService
}

func NewReminderHandler(reminders service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

type remindRequest struct {
	UserID string `json:"user_id"`
}

type remindAllResponse struct {
	Sent int `json:"sent"`
}

// Remind sends a payment reminder. With a user_id in the body it nudges that
// one debtor; without it, every pending debtor on the expense gets one.
func (h *ReminderHandler) Remind(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	var req remindRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	if req.UserID != "" {
		if err := h.reminders.RemindShare(r.Context(), ViewerID(r), expenseID, req.UserID); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, remindAllResponse{Sent: 1})
		return
	}

	sent, err := h.reminders.RemindAllPending(r.Context(), ViewerID(r), expenseID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, remindAllResponse{Sent: sent})
}
