package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"

	"roomshare-backend/internal/logger"
)

type razorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

// NewRazorpayGateway builds the Razorpay-backed Gateway. timeoutSeconds
// bounds every gateway call so a stalled request cannot hold a caller in a
// loading state forever.
func NewRazorpayGateway(keyID, keySecret string, timeoutSeconds int64) Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	if timeoutSeconds > 0 {
		client.SetTimeout(int16(timeoutSeconds))
	}
	return &razorpayGateway{
		client:    client,
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *razorpayGateway) KeyID() string {
	return g.keyID
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]string) (*Order, error) {
	logger.ExternalServiceCall("razorpay", "CreateOrder", "amount_paise", amountPaise, "receipt", receipt)

	if len(receipt) > MaxReceiptLen {
		return nil, fmt.Errorf("receipt id exceeds %d characters: %q", MaxReceiptLen, receipt)
	}

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		noteData := make(map[string]interface{}, len(notes))
		for k, v := range notes {
			noteData[k] = v
		}
		data["notes"] = noteData
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		logger.ExternalServiceResult("razorpay", "CreateOrder", err)
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	orderID, _ := body["id"].(string)
	if orderID == "" {
		err := fmt.Errorf("gateway returned no order id")
		logger.ExternalServiceResult("razorpay", "CreateOrder", err)
		return nil, err
	}

	order := &Order{
		ID:          orderID,
		AmountPaise: amountPaise,
		Currency:    currency,
		Receipt:     receipt,
	}
	if amt, ok := body["amount"].(float64); ok {
		order.AmountPaise = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}

	logger.ExternalServiceResult("razorpay", "CreateOrder", nil, "order_id", order.ID)
	return order, nil
}

func (g *razorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return rzputils.VerifyPaymentSignature(params, signature, g.keySecret)
}
