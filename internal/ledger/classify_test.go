package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomshare-backend/internal/domain"
)

func ts(day int) time.Time {
	return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
}

func tsp(day int) *time.Time {
	t := ts(day)
	return &t
}

// buildExpense assembles a two-or-more-way expense with explicit share states.
func buildExpense(id, payerID string, amount int64, created time.Time, shares []domain.Share) domain.Expense {
	return domain.Expense{
		ID:          id,
		RoomID:      "room-1",
		Description: "test expense " + id,
		AmountPaise: amount,
		Category:    domain.CategoryGroceries,
		PaidByID:    payerID,
		Splits:      shares,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestClassify_ViewerIsDebtor(t *testing.T) {
	now := ts(20)
	expenses := []domain.Expense{
		// Pending debt of the viewer.
		buildExpense("e1", "alice", 9000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 3000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 3000, Status: domain.ShareStatusPending},
			{UserID: "carol", AmountPaise: 3000, Status: domain.ShareStatusPending},
		}),
		// Viewer already settled this one.
		buildExpense("e2", "alice", 4000, ts(2), []domain.Share{
			{UserID: "alice", AmountPaise: 2000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 2000, Status: domain.ShareStatusSettled, SettledAt: tsp(5)},
		}),
	}

	view := Classify(expenses, "bob", domain.WindowAll, now)

	require.Len(t, view.IOwe, 1)
	assert.Equal(t, "e1", view.IOwe[0].ID)
	require.Len(t, view.History, 1)
	assert.Equal(t, "e2", view.History[0].ID)
	assert.Empty(t, view.OwedToMe)

	assert.Equal(t, int64(3000), view.Totals.YouOwePaise)
	assert.Equal(t, int64(2000), view.Totals.SentPaise)
	assert.Zero(t, view.Totals.OwedToYouPaise)
	assert.Zero(t, view.Totals.ReceivedPaise)
}

func TestClassify_ViewerIsPayer(t *testing.T) {
	now := ts(20)
	expenses := []domain.Expense{
		// One debtor settled, one still pending: stays in OwedToMe.
		buildExpense("e1", "alice", 9000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 3000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 3000, Status: domain.ShareStatusSettled, SettledAt: tsp(3)},
			{UserID: "carol", AmountPaise: 3000, Status: domain.ShareStatusPending},
		}),
		// Everyone settled: history.
		buildExpense("e2", "alice", 4000, ts(2), []domain.Share{
			{UserID: "alice", AmountPaise: 2000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 2000, Status: domain.ShareStatusSettled, SettledAt: tsp(6)},
		}),
	}

	view := Classify(expenses, "alice", domain.WindowAll, now)

	require.Len(t, view.OwedToMe, 1)
	assert.Equal(t, "e1", view.OwedToMe[0].ID)
	require.Len(t, view.History, 1)
	assert.Equal(t, "e2", view.History[0].ID)
	assert.Empty(t, view.IOwe)

	assert.Equal(t, int64(3000), view.Totals.OwedToYouPaise)
	assert.Equal(t, int64(5000), view.Totals.ReceivedPaise)
}

func TestClassify_SettlementMovesExpenseBetweenLists(t *testing.T) {
	now := ts(20)
	pending := buildExpense("e1", "alice", 6000, ts(1), []domain.Share{
		{UserID: "alice", AmountPaise: 3000, Status: domain.ShareStatusSettled},
		{UserID: "bob", AmountPaise: 3000, Status: domain.ShareStatusPending},
	})

	before := Classify([]domain.Expense{pending}, "bob", domain.WindowAll, now)
	require.Len(t, before.IOwe, 1)
	assert.Empty(t, before.History)

	// Same expense after bob settles.
	settled := pending
	settled.Splits = []domain.Share{
		{UserID: "alice", AmountPaise: 3000, Status: domain.ShareStatusSettled},
		{UserID: "bob", AmountPaise: 3000, Status: domain.ShareStatusSettled, SettledAt: tsp(10)},
	}

	after := Classify([]domain.Expense{settled}, "bob", domain.WindowAll, now)
	assert.Empty(t, after.IOwe)
	require.Len(t, after.History, 1)
	assert.Zero(t, after.Totals.YouOwePaise)
	assert.Equal(t, int64(3000), after.Totals.SentPaise)

	// The payer's view flips at the same moment.
	payerAfter := Classify([]domain.Expense{settled}, "alice", domain.WindowAll, now)
	assert.Empty(t, payerAfter.OwedToMe)
	require.Len(t, payerAfter.History, 1)
}

func TestClassify_Recomputation_IsIdempotent(t *testing.T) {
	now := ts(20)
	expenses := []domain.Expense{
		buildExpense("e1", "alice", 9000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 3000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 3000, Status: domain.ShareStatusPending},
			{UserID: "carol", AmountPaise: 3000, Status: domain.ShareStatusSettled, SettledAt: tsp(4)},
		}),
	}

	first := Classify(expenses, "bob", domain.WindowAll, now)
	second := Classify(expenses, "bob", domain.WindowAll, now)
	assert.Equal(t, first, second)
}

func TestClassify_HistoryOrderedBySettlementTime(t *testing.T) {
	now := ts(25)
	expenses := []domain.Expense{
		// Created first, settled last: should lead the history list.
		buildExpense("old-but-recent", "alice", 2000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusSettled, SettledAt: tsp(20)},
		}),
		buildExpense("new-but-stale", "alice", 2000, ts(10), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusSettled, SettledAt: tsp(12)},
		}),
	}

	view := Classify(expenses, "bob", domain.WindowAll, now)
	require.Len(t, view.History, 2)
	assert.Equal(t, "old-but-recent", view.History[0].ID)
	assert.Equal(t, "new-but-stale", view.History[1].ID)
}

func TestClassify_HistoryWindowFiltersBySettlementTime(t *testing.T) {
	now := ts(30)
	expenses := []domain.Expense{
		buildExpense("recent", "alice", 2000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusSettled, SettledAt: tsp(28)},
		}),
		buildExpense("stale", "alice", 2000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusSettled, SettledAt: tsp(2)},
		}),
	}

	view := Classify(expenses, "bob", domain.Window7Days, now)
	require.Len(t, view.History, 1)
	assert.Equal(t, "recent", view.History[0].ID)

	// Totals are unaffected by the window.
	assert.Equal(t, int64(2000), view.Totals.SentPaise)

	all := Classify(expenses, "bob", domain.WindowAll, now)
	assert.Len(t, all.History, 2)
}

func TestClassify_PendingListsKeepCreationOrder(t *testing.T) {
	now := ts(20)
	expenses := []domain.Expense{
		buildExpense("older", "alice", 2000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusPending},
		}),
		buildExpense("newer", "alice", 2000, ts(5), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusPending},
		}),
	}

	view := Classify(expenses, "bob", domain.WindowAll, now)
	require.Len(t, view.IOwe, 2)
	assert.Equal(t, "newer", view.IOwe[0].ID)
	assert.Equal(t, "older", view.IOwe[1].ID)
}

func TestClassify_NonParticipantSeesNothing(t *testing.T) {
	now := ts(20)
	expenses := []domain.Expense{
		buildExpense("e1", "alice", 2000, ts(1), []domain.Share{
			{UserID: "alice", AmountPaise: 1000, Status: domain.ShareStatusSettled},
			{UserID: "bob", AmountPaise: 1000, Status: domain.ShareStatusPending},
		}),
	}

	view := Classify(expenses, "dave", domain.WindowAll, now)
	assert.Empty(t, view.IOwe)
	assert.Empty(t, view.OwedToMe)
	assert.Empty(t, view.History)
	assert.Equal(t, domain.LedgerTotals{}, view.Totals)
}
