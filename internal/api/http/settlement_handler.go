package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"roomshare-backend/internal/domain"
	"roomshare-backend/internal/service"
)

type SettlementHandler struct {
	settlements service.SettlementService
}

func NewSettlementHandler(settlements service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// InitiatePayment creates a gateway order for the viewer's pending share and
// returns everything the checkout widget needs to open.
func (h *SettlementHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	initiation, err := h.settlements.InitiatePayment(r.Context(), ViewerID(r), expenseID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, initiation)
}

type checkoutRequest struct {
	Outcome          string `json:"outcome" validate:"required,oneof=completed cancelled failed"`
	GatewayOrderID   string `json:"gateway_order_id" validate:"required"`
	GatewayPaymentID string `json:"gateway_payment_id"`
	Signature        string `json:"signature"`
	FailureReason    string `json:"failure_reason"`
}

// CompleteCheckout reports the checkout widget's outcome. A settled share
// responds 200; cancelled and failed outcomes also respond 200 with their
// status since the request itself succeeded. The one exception is a verified
// charge whose settlement write failed: that responds 502 so the client knows
// money moved but the ledger did not.
func (h *SettlementHandler) CompleteCheckout(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	var req checkoutRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	result := domain.CheckoutResult{
		Outcome:          domain.CheckoutOutcome(req.Outcome),
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
		FailureReason:    req.FailureReason,
	}

	outcome, err := h.settlements.CompleteCheckout(r.Context(), ViewerID(r), expenseID, result)
	if err != nil {
		if errors.Is(err, domain.ErrSettlementNotRecorded) && outcome != nil {
			respondJSON(w, http.StatusBadGateway, outcome)
			return
		}
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}
