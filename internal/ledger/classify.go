package ledger

import (
	"sort"
	"time"

	"roomshare-backend/internal/domain"
)

// Classify partitions expenses into the viewer's three derived lists and
// computes the aggregate totals. It is a pure function of its inputs: no
// mutation, same answer on every recomputation, safe to run on every data
// refresh.
//
// Membership rules, from the viewer's perspective:
//   - IOwe: viewer holds a pending non-payer share.
//   - OwedToMe: viewer is the payer and at least one other share is pending.
//   - History: every share relevant to the viewer is settled: the viewer's
//     own share when they are a debtor, all non-payer shares when they are
//     the payer.
//
// IOwe and OwedToMe keep creation order (newest first). History is ordered
// by settlement time instead, so an old expense settled today surfaces at
// the top rather than being buried by creation order. The window filter is
// applied against that same settlement-time value.
func Classify(expenses []domain.Expense, viewerID string, window domain.HistoryWindow, now time.Time) domain.LedgerView {
	view := domain.LedgerView{
		IOwe:     []domain.Expense{},
		OwedToMe: []domain.Expense{},
		History:  []domain.Expense{},
	}

	var cutoff time.Time
	if d, bounded := window.Duration(); bounded {
		cutoff = now.Add(-d)
	}

	for _, e := range expenses {
		if e.IsPayer(viewerID) {
			var pending, settled int64
			anyPending := false
			for _, s := range e.Splits {
				if s.UserID == e.PaidByID {
					continue
				}
				switch s.Status {
				case domain.ShareStatusPending:
					pending += s.AmountPaise
					anyPending = true
				case domain.ShareStatusSettled:
					settled += s.AmountPaise
				}
			}
			view.Totals.OwedToYouPaise += pending
			view.Totals.ReceivedPaise += settled

			if anyPending {
				view.OwedToMe = append(view.OwedToMe, e)
			} else if inWindow(settlementTime(&e, viewerID), cutoff) {
				view.History = append(view.History, e)
			}
			continue
		}

		share := e.ShareOf(viewerID)
		if share == nil {
			continue
		}
		switch share.Status {
		case domain.ShareStatusPending:
			view.Totals.YouOwePaise += share.AmountPaise
			view.IOwe = append(view.IOwe, e)
		case domain.ShareStatusSettled:
			view.Totals.SentPaise += share.AmountPaise
			if inWindow(settlementTime(&e, viewerID), cutoff) {
				view.History = append(view.History, e)
			}
		}
	}

	sort.SliceStable(view.IOwe, func(i, j int) bool {
		return view.IOwe[i].CreatedAt.After(view.IOwe[j].CreatedAt)
	})
	sort.SliceStable(view.OwedToMe, func(i, j int) bool {
		return view.OwedToMe[i].CreatedAt.After(view.OwedToMe[j].CreatedAt)
	})
	sort.SliceStable(view.History, func(i, j int) bool {
		hi := view.History[i]
		hj := view.History[j]
		return settlementTime(&hi, viewerID).After(settlementTime(&hj, viewerID))
	})

	return view
}

// settlementTime is the instant an expense became "done" for the viewer: the
// viewer's own SettledAt when they are a debtor, the latest debtor SettledAt
// when they are the payer. Expenses settled before SettledAt stamping existed
// fall back to the record's last-modified time.
func settlementTime(e *domain.Expense, viewerID string) time.Time {
	if e.IsPayer(viewerID) {
		var latest time.Time
		for _, s := range e.Splits {
			if s.UserID == e.PaidByID || s.SettledAt == nil {
				continue
			}
			if s.SettledAt.After(latest) {
				latest = *s.SettledAt
			}
		}
		if !latest.IsZero() {
			return latest
		}
		return e.UpdatedAt
	}

	if share := e.ShareOf(viewerID); share != nil && share.SettledAt != nil {
		return *share.SettledAt
	}
	return e.UpdatedAt
}

func inWindow(t, cutoff time.Time) bool {
	return cutoff.IsZero() || !t.Before(cutoff)
}
