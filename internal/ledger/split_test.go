package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomshare-backend/internal/domain"
)

func TestComputeShares_EvenSplit(t *testing.T) {
	shares, err := ComputeShares(30000, "payer", []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, shares, 3)

	assert.Equal(t, "payer", shares[0].UserID)
	assert.Equal(t, int64(10000), shares[0].AmountPaise)
	assert.Equal(t, domain.ShareStatusSettled, shares[0].Status)
	assert.Nil(t, shares[0].SettledAt)

	for _, s := range shares[1:] {
		assert.Equal(t, int64(10000), s.AmountPaise)
		assert.Equal(t, domain.ShareStatusPending, s.Status)
	}
}

func TestComputeShares_RemainderGoesToPayer(t *testing.T) {
	// 100.00 across three people leaves 1 paisa over.
	shares, err := ComputeShares(10000, "payer", []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, shares, 3)

	assert.Equal(t, int64(3334), shares[0].AmountPaise)
	assert.Equal(t, int64(3333), shares[1].AmountPaise)
	assert.Equal(t, int64(3333), shares[2].AmountPaise)

	var sum int64
	for _, s := range shares {
		sum += s.AmountPaise
	}
	assert.Equal(t, int64(10000), sum)
}

func TestComputeShares_SumAlwaysMatchesTotal(t *testing.T) {
	participants := []string{"u1", "u2", "u3", "u4", "u5", "u6"}
	for total := int64(1); total < 500; total++ {
		shares, err := ComputeShares(total, "payer", participants)
		require.NoError(t, err)
		var sum int64
		for _, s := range shares {
			sum += s.AmountPaise
		}
		require.Equal(t, total, sum, "total=%d", total)
	}
}

func TestComputeShares_PayerAppearsExactlyOnce(t *testing.T) {
	// Payer in the participant list, plus a duplicate and an empty id.
	shares, err := ComputeShares(9000, "payer", []string{"payer", "u1", "u1", "", "u2"})
	require.NoError(t, err)
	require.Len(t, shares, 3)

	count := 0
	for _, s := range shares {
		if s.UserID == "payer" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestComputeShares_Errors(t *testing.T) {
	t.Run("ZeroAmount", func(t *testing.T) {
		_, err := ComputeShares(0, "payer", []string{"u1"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		_, err := ComputeShares(-100, "payer", []string{"u1"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("NoOtherParticipants", func(t *testing.T) {
		_, err := ComputeShares(1000, "payer", nil)
		assert.ErrorIs(t, err, domain.ErrNoOtherParticipants)
	})

	t.Run("OnlyPayerSelected", func(t *testing.T) {
		_, err := ComputeShares(1000, "payer", []string{"payer", "payer"})
		assert.ErrorIs(t, err, domain.ErrNoOtherParticipants)
	})
}
