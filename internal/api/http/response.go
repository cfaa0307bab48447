package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondErrorCode(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// respondError maps domain sentinel errors onto HTTP statuses. Anything
// unmapped is a 500 with a generic message so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondErrorCode(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrInvalidAmount):
		respondErrorCode(w, http.StatusBadRequest, "invalid_amount", "amount must be a positive number of paise")
	case errors.Is(err, domain.ErrInvalidCategory):
		respondErrorCode(w, http.StatusBadRequest, "invalid_category", "unknown expense category")
	case errors.Is(err, domain.ErrNoOtherParticipants):
		respondErrorCode(w, http.StatusBadRequest, "no_participants", "at least one participant besides the payer is required")
	case errors.Is(err, domain.ErrMissingUPIID):
		respondErrorCode(w, http.StatusBadRequest, "missing_upi_id", "a target UPI id is required and no default is stored")
	case errors.Is(err, domain.ErrInvalidSignature):
		respondErrorCode(w, http.StatusBadRequest, "invalid_signature", "payment signature verification failed")
	case errors.Is(err, domain.ErrNotParticipant):
		respondErrorCode(w, http.StatusForbidden, "not_participant", "you are not a participant of this expense")
	case errors.Is(err, domain.ErrNotPayer):
		respondErrorCode(w, http.StatusForbidden, "not_payer", "only the payer may perform this action")
	case errors.Is(err, domain.ErrNotRoommate):
		respondErrorCode(w, http.StatusForbidden, "not_roommate", "participant is not in your room")
	case errors.Is(err, domain.ErrPayerCannotPay):
		respondErrorCode(w, http.StatusConflict, "payer_cannot_pay", "the payer has nothing to settle on their own expense")
	case errors.Is(err, domain.ErrNoPendingShare):
		respondErrorCode(w, http.StatusConflict, "no_pending_share", "no pending share to settle")
	case errors.Is(err, domain.ErrEmailTaken):
		respondErrorCode(w, http.StatusConflict, "email_taken", "an account with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondErrorCode(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	default:
		logger.Error("unhandled error in request", "error", err)
		respondErrorCode(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
