package payment

import "context"

// Order is a gateway payment order handed to the checkout widget.
type Order struct {
	ID          string `json:"id"`
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
}

// Gateway is the settlement-gateway capability the orchestrator depends on.
// Implementations must be safe for concurrent use.
type Gateway interface {
	// KeyID is the public key the checkout widget is initialized with.
	KeyID() string

	// CreateOrder registers a payment order for amountPaise. The receipt
	// identifier must not exceed MaxReceiptLen.
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (*Order, error)

	// VerifyPaymentSignature checks the checkout success callback fields
	// against the gateway's signature scheme.
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}
