package jobs

import (
	"context"
	"time"

	"roomshare-backend/internal/logger"
)

// ExpireStalePaymentOrders marks gateway orders that never completed checkout
// as expired. An expired order has no effect on its share; the debtor simply
// initiates a fresh order next time.
func (jr *JobRunner) ExpireStalePaymentOrders() {
	jr.runWithRecovery("ExpireStalePaymentOrders", func() {
		ctx := context.Background()
		ttl := time.Duration(jr.config.Payment.OrderTTLMinutes) * time.Minute
		cutoff := time.Now().Add(-ttl)

		expired, err := jr.store.PaymentOrderRepository.ExpireStale(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale payment orders", "error", err)
			return
		}

		logger.Info("Expired stale payment orders", "count", expired, "cutoff", cutoff)
	})
}
