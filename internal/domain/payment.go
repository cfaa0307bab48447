package domain

import "time"

type PaymentOrderStatus string

const (
	PaymentOrderStatusCreated   PaymentOrderStatus = "CREATED"
	PaymentOrderStatusPaid      PaymentOrderStatus = "PAID"
	PaymentOrderStatusCancelled PaymentOrderStatus = "CANCELLED"
	PaymentOrderStatusFailed    PaymentOrderStatus = "FAILED"
	PaymentOrderStatusExpired   PaymentOrderStatus = "EXPIRED"
)

// PaymentOrder is the local audit record of a gateway order created for a
// debtor's pending share. The share itself is the source of truth for
// settlement; orders only track the checkout attempt.
type PaymentOrder struct {
	ID             string             `json:"id"`
	ExpenseID      string             `json:"expense_id"`
	UserID         string             `json:"user_id"`
	GatewayOrderID string             `json:"gateway_order_id"`
	Receipt        string             `json:"receipt"`
	AmountPaise    int64              `json:"amount_paise"`
	Currency       string             `json:"currency"`
	Status         PaymentOrderStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type CheckoutOutcome string

const (
	CheckoutCompleted CheckoutOutcome = "completed"
	CheckoutCancelled CheckoutOutcome = "cancelled"
	CheckoutFailed    CheckoutOutcome = "failed"
)

// CheckoutResult is what the checkout widget reports back. Completed results
// carry the gateway's payment confirmation fields; cancelled and failed
// results never touch the ledger.
type CheckoutResult struct {
	Outcome          CheckoutOutcome `json:"outcome"`
	GatewayOrderID   string          `json:"gateway_order_id"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`
	Signature        string          `json:"signature,omitempty"`
	FailureReason    string          `json:"failure_reason,omitempty"`
}

type SettlementStatus string

const (
	SettlementSettled    SettlementStatus = "settled"
	SettlementCancelled  SettlementStatus = "cancelled"
	SettlementFailed     SettlementStatus = "failed"
	SettlementUnrecorded SettlementStatus = "unrecorded"
)
