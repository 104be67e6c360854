package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/clock"
	"live-auction/internal/events"
	"live-auction/internal/hub"
	model "live-auction/internal/models"
	repository "live-auction/internal/repository"

	"github.com/shopspring/decimal"
)

// discardNotifier drops every event so only the engine is measured
type discardNotifier struct{}

func (discardNotifier) NotifyAll(events.Event)         {}
func (discardNotifier) NotifyOne(string, events.Event) {}

// discardParty accepts and forgets every message
type discardParty struct{ id string }

func (p discardParty) ID() string          { return p.id }
func (p discardParty) Deliver([]byte) bool { return true }
func (p discardParty) Close()              {}

func newAuction(id int64, start int64) model.Auction {
	return model.Auction{
		ID:               id,
		Title:            fmt.Sprintf("Benchmark Lot %d", id),
		StartingBid:      decimal.NewFromInt(start),
		CurrentBid:       decimal.NewFromInt(start),
		MinimumIncrement: decimal.NewFromInt(1),
		EndTime:          time.Now().Add(24 * time.Hour),
	}
}

// Benchmark 1: SubmitBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_SubmitBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, clock.System{}, discardNotifier{})

	for i := 0; i < b.N; i++ {
		if err := repo.AddAuction(newAuction(int64(i), 50)); err != nil {
			b.Fatalf("failed to add auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		req := model.BidRequest{
			AuctionID:  int64(i),
			Amount:     decimal.NewFromInt(int64(51 + rand.Intn(100))),
			BidderName: fmt.Sprintf("user_%d", i),
		}
		if outcome := svc.SubmitBid("party", req); !outcome.Accepted {
			b.Fatalf("bid rejected: %v", outcome.Reason)
		}
	}
}

// Benchmark 2: SubmitBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_SubmitBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, clock.System{}, discardNotifier{})
	_ = repo.AddAuction(newAuction(1, 50))

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			svc.SubmitBid(fmt.Sprintf("party_%d", rnd.Int()), model.BidRequest{
				AuctionID: 1,
				Amount:    decimal.NewFromInt(nextBid),
			})
		}
	})
}

// Benchmark 3: SubmitBid with a running hub fanning out to connected parties
func Benchmark_SubmitBid_WithBroadcast(b *testing.B) {
	for _, parties := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("parties=%d", parties), func(b *testing.B) {
			repo := repository.NewMemoryRepo()
			_ = repo.AddAuction(newAuction(1, 50))

			h := hub.NewHub(hub.SnapshotFunc(repo.GetSnapshots), clock.System{}, 4096)
			svc := bidding.NewBiddingService(repo, clock.System{}, h)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go h.Run(ctx)

			for i := 0; i < parties; i++ {
				h.Register(discardParty{id: fmt.Sprintf("party_%d", i)})
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				svc.SubmitBid("party_0", model.BidRequest{AuctionID: 1, Amount: decimal.NewFromInt(int64(51 + i))})
			}
		})
	}
}

// Benchmark 4: Snapshots - Concurrent readers while history grows
func Benchmark_Snapshots_ConcurrentReaders(b *testing.B) {
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, clock.System{}, discardNotifier{})

	for id := int64(1); id <= 10; id++ {
		_ = repo.AddAuction(newAuction(id, 50))
		for j := int64(1); j <= 50; j++ {
			svc.SubmitBid("seed", model.BidRequest{AuctionID: id, Amount: decimal.NewFromInt(50 + j)})
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if snaps := svc.Snapshots(); len(snaps) != 10 {
				b.Errorf("expected 10 auctions, got %d", len(snaps))
			}
		}
	})
}
