package ledger

import (
	"roomshare-backend/internal/domain"
)

// ComputeShares divides totalPaise equally among the payer and the selected
// participants. The participant list is de-duplicated and the payer is
// implicitly included, so passing the payer again is harmless. Splitting a
// total that is not evenly divisible leaves a remainder of at most
// numParticipants-1 paise; that remainder is assigned to the payer's share,
// so the shares always sum to exactly totalPaise.
//
// The payer's share is created already settled: it is money the payer spent
// on themselves, never an outstanding debt. Debtor shares start pending.
func ComputeShares(totalPaise int64, payerID string, participants []string) ([]domain.Share, error) {
	if totalPaise <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	others := dedupe(participants, payerID)
	if len(others) == 0 {
		return nil, domain.ErrNoOtherParticipants
	}

	n := int64(len(others) + 1)
	base := totalPaise / n
	remainder := totalPaise - base*n

	shares := make([]domain.Share, 0, n)
	shares = append(shares, domain.Share{
		UserID:      payerID,
		AmountPaise: base + remainder,
		Status:      domain.ShareStatusSettled,
	})
	for _, id := range others {
		shares = append(shares, domain.Share{
			UserID:      id,
			AmountPaise: base,
			Status:      domain.ShareStatusPending,
		})
	}
	return shares, nil
}

// dedupe removes duplicates and the payer while preserving selection order.
func dedupe(ids []string, payerID string) []string {
	seen := map[string]bool{payerID: true}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
