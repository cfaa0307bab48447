package payment

import (
	"fmt"
	"strings"
	"time"
)

// MaxReceiptLen is the gateway's receipt identifier limit.
const MaxReceiptLen = 40

// BuildReceipt derives a receipt id from the expense id and the initiation
// time: "exp-<first 8 id chars>-<unix seconds>". The prefix is truncated
// rather than the timestamp so receipts stay unique, and the result always
// fits MaxReceiptLen.
func BuildReceipt(expenseID string, at time.Time) string {
	id := strings.ReplaceAll(expenseID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	receipt := fmt.Sprintf("exp-%s-%d", id, at.Unix())
	if len(receipt) > MaxReceiptLen {
		receipt = receipt[:MaxReceiptLen]
	}
	return receipt
}
