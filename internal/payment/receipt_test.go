package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildReceipt(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Format", func(t *testing.T) {
		receipt := BuildReceipt("a1b2c3d4-e5f6-7890-abcd-ef1234567890", at)
		assert.True(t, strings.HasPrefix(receipt, "exp-a1b2c3d4-"))
		assert.LessOrEqual(t, len(receipt), MaxReceiptLen)
	})

	t.Run("NeverExceedsGatewayLimit", func(t *testing.T) {
		long := strings.Repeat("a", 200)
		receipt := BuildReceipt(long, at)
		assert.LessOrEqual(t, len(receipt), MaxReceiptLen)
	})

	t.Run("DistinctPerExpense", func(t *testing.T) {
		r1 := BuildReceipt("a1b2c3d4-0000", at)
		r2 := BuildReceipt("b2c3d4e5-0000", at)
		assert.NotEqual(t, r1, r2)
	})
}
