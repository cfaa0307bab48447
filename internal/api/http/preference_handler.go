package http

import (
	"net/http"

	"roomshare-backend/internal/service"
)

type PreferenceHandler struct {
	preferences service.PreferenceService
}

func NewPreferenceHandler(preferences service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

type upiPreference struct {
	UPIID string `json:"upi_id"`
}

func (h *PreferenceHandler) GetDefaultUPI(w http.ResponseWriter, r *http.Request) {
	upiID, err := h.preferences.DefaultUPI(r.Context(), ViewerID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, upiPreference{UPIID: upiID})
}

func (h *PreferenceHandler) SetDefaultUPI(w http.ResponseWriter, r *http.Request) {
	var req upiPreference
	if err := decodeBody(r, &req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	if err := h.preferences.SetDefaultUPI(r.Context(), ViewerID(r), req.UPIID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, upiPreference{UPIID: req.UPIID})
}
