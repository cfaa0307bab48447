package domain

import "time"

// HistoryWindow bounds the history view by settlement time.
type HistoryWindow string

const (
	WindowAll     HistoryWindow = "all"
	Window7Days   HistoryWindow = "7d"
	Window30Days  HistoryWindow = "30d"
	Window365Days HistoryWindow = "365d"
)

// Duration returns the window length and whether the window is bounded.
func (w HistoryWindow) Duration() (time.Duration, bool) {
	switch w {
	case Window7Days:
		return 7 * 24 * time.Hour, true
	case Window30Days:
		return 30 * 24 * time.Hour, true
	case Window365Days:
		return 365 * 24 * time.Hour, true
	}
	return 0, false
}

func (w HistoryWindow) Valid() bool {
	switch w {
	case WindowAll, Window7Days, Window30Days, Window365Days:
		return true
	}
	return false
}

// LedgerTotals are recomputed from the full expense set on every call rather
// than maintained incrementally; room-sized data makes that the simpler and
// safer choice.
type LedgerTotals struct {
	YouOwePaise    int64 `json:"you_owe_paise"`
	OwedToYouPaise int64 `json:"owed_to_you_paise"`
	SentPaise      int64 `json:"sent_paise"`
	ReceivedPaise  int64 `json:"received_paise"`
}

// PendingShareSummary aggregates one debtor's outstanding shares, used by
// the nightly reminder digest.
type PendingShareSummary struct {
	User         User  `json:"user"`
	PendingCount int   `json:"pending_count"`
	TotalPaise   int64 `json:"total_paise"`
}

// LedgerView partitions a viewer's expenses into the three derived lists.
// IOwe and OwedToMe are ordered by creation time descending; History is
// ordered by settlement time descending.
type LedgerView struct {
	IOwe     []Expense    `json:"i_owe"`
	OwedToMe []Expense    `json:"owed_to_me"`
	History  []Expense    `json:"history"`
	Totals   LedgerTotals `json:"totals"`
}
