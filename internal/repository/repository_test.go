package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create a new Auction
func newAuction(id int64, seed, increment int64, endTime time.Time) model.Auction {
	return model.Auction{
		ID:               id,
		Title:            fmt.Sprintf("Auction %d", id),
		StartingBid:      decimal.NewFromInt(seed),
		CurrentBid:       decimal.NewFromInt(seed),
		MinimumIncrement: decimal.NewFromInt(increment),
		EndTime:          endTime,
	}
}

// Helper mutation that appends a bid without validation
func appendBid(amount int64, bidder string) func(*model.Auction) error {
	return func(a *model.Auction) error {
		a.CurrentBid = decimal.NewFromInt(amount)
		a.HighestBidder = bidder
		a.BidHistory = append(a.BidHistory, model.BidRecord{
			BidID:     fmt.Sprintf("bid-%d", amount),
			Amount:    decimal.NewFromInt(amount),
			Bidder:    bidder,
			Timestamp: time.Now(),
		})
		return nil
	}
}

// Test AddAuction
func TestMemoryRepo_AddAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	end := time.Now().Add(time.Hour)

	require.NoError(t, repo.AddAuction(newAuction(1, 150, 10, end)))
	require.NoError(t, repo.AddAuction(newAuction(2, 200, 5, end)))
	require.Equal(t, 2, repo.Count())

	err := repo.AddAuction(newAuction(1, 999, 1, end))
	require.Error(t, err)
	require.True(t, errors.Is(err, biddingerrors.ErrDuplicateAuction))

	snap, err := repo.GetSnapshot(1)
	require.NoError(t, err)
	require.True(t, snap.CurrentBid.Equal(decimal.NewFromInt(150)), "duplicate must not overwrite the seed")
}

// Test Apply
func TestMemoryRepo_Apply(t *testing.T) {
	t.Parallel()

	end := time.Now().Add(time.Hour)
	rejection := errors.New("rejected")

	tests := []struct {
		name        string
		auctionID   int64
		mutate      func(*model.Auction) error
		wantErr     error
		wantCurrent int64
		wantHistory int
		wantCommit  bool
	}{
		{name: "commit", auctionID: 1, mutate: appendBid(160, "A"), wantCurrent: 160, wantHistory: 1, wantCommit: true},
		{name: "not_found", auctionID: 42, mutate: appendBid(160, "A"), wantErr: biddingerrors.ErrAuctionNotFound, wantCurrent: 150},
		{
			name:      "rejected_mutation_is_discarded",
			auctionID: 1,
			mutate: func(a *model.Auction) error {
				a.CurrentBid = decimal.NewFromInt(9999)
				return rejection
			},
			wantErr:     rejection,
			wantCurrent: 150,
		},
		{
			name:      "panicking_mutation_is_discarded",
			auctionID: 1,
			mutate: func(a *model.Auction) error {
				a.CurrentBid = decimal.NewFromInt(9999)
				a.BidHistory = append(a.BidHistory, model.BidRecord{Bidder: "ghost"})
				panic("boom")
			},
			wantErr:     biddingerrors.ErrInternal,
			wantCurrent: 150,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := NewMemoryRepo()
			require.NoError(t, repo.AddAuction(newAuction(1, 150, 10, end)))

			committed := false
			snap, err := repo.Apply(tc.auctionID, tc.mutate, func(model.AuctionSnapshot) { committed = true })

			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected error: %v, got: %v", tc.wantErr, err)
			} else {
				require.NoError(t, err)
				require.True(t, snap.CurrentBid.Equal(decimal.NewFromInt(tc.wantCurrent)))
			}
			require.Equal(t, tc.wantCommit, committed)

			stored, err := repo.GetSnapshot(1)
			require.NoError(t, err)
			require.True(t, stored.CurrentBid.Equal(decimal.NewFromInt(tc.wantCurrent)))
			require.Len(t, stored.BidHistory, tc.wantHistory)
		})
	}

	// the lock must be released after a panic
	t.Run("lock_released_after_panic", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		require.NoError(t, repo.AddAuction(newAuction(1, 150, 10, end)))

		_, err := repo.Apply(1, func(*model.Auction) error { panic("boom") }, nil)
		require.ErrorIs(t, err, biddingerrors.ErrInternal)

		_, err = repo.Apply(1, appendBid(160, "A"), nil)
		require.NoError(t, err)
	})
}

// snapshots handed out must not change when the auction changes later
func TestMemoryRepo_SnapshotsAreImmutable(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.AddAuction(newAuction(1, 150, 10, time.Now().Add(time.Hour))))

	first, err := repo.Apply(1, appendBid(160, "A"), nil)
	require.NoError(t, err)

	_, err = repo.Apply(1, appendBid(170, "B"), nil)
	require.NoError(t, err)

	require.Len(t, first.BidHistory, 1)
	require.Equal(t, "A", *first.HighestBidder)

	latest, err := repo.GetSnapshot(1)
	require.NoError(t, err)
	require.Len(t, latest.BidHistory, 2)
	require.Equal(t, "B", *latest.HighestBidder)

	first.BidHistory[0].Bidder = "tampered"
	again, err := repo.GetSnapshot(1)
	require.NoError(t, err)
	require.Equal(t, "A", again.BidHistory[0].Bidder)
}

// Test GetSnapshots
func TestMemoryRepo_GetSnapshots(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.Empty(t, repo.GetSnapshots())

	end := time.Now().Add(time.Hour)
	for _, id := range []int64{3, 1, 2} {
		require.NoError(t, repo.AddAuction(newAuction(id, 100*id, 10, end)))
	}

	snaps := repo.GetSnapshots()
	require.Len(t, snaps, 3)
	for i, s := range snaps {
		require.Equal(t, int64(i+1), s.ID)
		require.Nil(t, s.HighestBidder)
		require.Empty(t, s.BidHistory)
		require.Equal(t, end.UnixMilli(), s.EndTime)
	}
}

// concurrent appends on one auction are serialized, on different auctions they are independent
func TestMemoryRepo_ConcurrentApply(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	end := time.Now().Add(time.Hour)
	require.NoError(t, repo.AddAuction(newAuction(1, 0, 1, end)))
	require.NoError(t, repo.AddAuction(newAuction(2, 0, 1, end)))

	var wg sync.WaitGroup
	concurrentCount := 50

	for i := 0; i < concurrentCount; i++ {
		for _, id := range []int64{1, 2} {
			wg.Add(1)
			id := id
			go func() {
				defer wg.Done()
				_, err := repo.Apply(id, func(a *model.Auction) error {
					next := a.CurrentBid.Add(decimal.NewFromInt(1))
					a.CurrentBid = next
					a.BidHistory = append(a.BidHistory, model.BidRecord{Amount: next})
					return nil
				}, nil)
				require.NoError(t, err)
			}()
		}
	}
	wg.Wait()

	for _, id := range []int64{1, 2} {
		snap, err := repo.GetSnapshot(id)
		require.NoError(t, err)
		require.Len(t, snap.BidHistory, concurrentCount)
		require.True(t, snap.CurrentBid.Equal(decimal.NewFromInt(int64(concurrentCount))))
		for i, b := range snap.BidHistory {
			require.True(t, b.Amount.Equal(decimal.NewFromInt(int64(i+1))))
		}
	}
}
