package jobs

import (
	"context"
	"time"

	"roomshare-backend/internal/logger"
)

// SendPendingShareDigests emails each debtor one digest covering all of their
// shares that have been pending longer than the configured minimum age. One
// email per debtor regardless of how many expenses they owe on.
func (jr *JobRunner) SendPendingShareDigests() {
	jr.runWithRecovery("SendPendingShareDigests", func() {
		ctx := context.Background()
		minAge := time.Duration(jr.config.Scheduler.DigestMinAgeHours) * time.Hour
		cutoff := time.Now().Add(-minAge)

		summaries, err := jr.store.ExpenseRepository.PendingShareSummaries(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to load pending share summaries", "error", err)
			return
		}

		sent := 0
		for _, summary := range summaries {
			err := jr.services.Email.SendPendingDigest(ctx,
				summary.User.Email, summary.User.Name,
				summary.PendingCount, summary.TotalPaise)
			if err != nil {
				logger.Error("Failed to send pending digest", "userID", summary.User.ID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Pending share digests sent", "debtors", len(summaries), "sent", sent)
	})
}
