package domain

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidCategory     = errors.New("unknown expense category")
	ErrNoOtherParticipants = errors.New("at least one other participant is required")
	ErrMissingUPIID        = errors.New("payment destination UPI id is required")
	ErrNotParticipant      = errors.New("user is not a participant of this expense")
	ErrNotPayer            = errors.New("only the payer may do this")
	ErrPayerCannotPay      = errors.New("the payer has no outstanding share to pay")
	ErrNoPendingShare      = errors.New("no pending share for this user")
	ErrInvalidSignature    = errors.New("payment signature verification failed")

	// ErrSettlementNotRecorded marks the one state where money moved but the
	// ledger did not: the gateway confirmed the charge and the settle write
	// failed afterwards. Callers must surface this distinctly, never as a
	// generic payment failure.
	ErrSettlementNotRecorded = errors.New("payment succeeded but settlement was not recorded")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotRoommate        = errors.New("participant does not share this room")
)
