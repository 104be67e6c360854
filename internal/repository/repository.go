package repository

import (
	"fmt"
	"sort"
	"sync"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"
)

// AuctionStore defines the auction storage interface used by the bidding engine
type AuctionStore interface {
	// Apply runs mutate against a private copy of the auction while holding that
	// auction's lock. The copy replaces the stored auction only if mutate returns nil,
	// and onCommit (if non-nil) sees the committed snapshot before the lock is released.
	Apply(auctionID int64, mutate func(*model.Auction) error, onCommit func(model.AuctionSnapshot)) (model.AuctionSnapshot, error)
	GetSnapshot(auctionID int64) (model.AuctionSnapshot, error)
	GetSnapshots() []model.AuctionSnapshot
}

// auctionEntry serializes every read-validate-apply sequence on one auction
type auctionEntry struct {
	mu      sync.Mutex
	auction model.Auction
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionStore.
// Auctions are never removed, so entries can be locked independently of the map.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[int64]*auctionEntry
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[int64]*auctionEntry),
	}
}

// AddAuction seeds an auction before any bids are accepted
func (r *MemoryRepo) AddAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auction.ID]; ok {
		return fmt.Errorf("add auction %d: %w", auction.ID, biddingerrors.ErrDuplicateAuction)
	}
	r.auctions[auction.ID] = &auctionEntry{auction: auction.Clone()}
	return nil
}

func (r *MemoryRepo) entry(auctionID int64) (*auctionEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.auctions[auctionID]
	return e, ok
}

// Apply implements AuctionStore.
func (r *MemoryRepo) Apply(auctionID int64, mutate func(*model.Auction) error, onCommit func(model.AuctionSnapshot)) (model.AuctionSnapshot, error) {
	e, ok := r.entry(auctionID)
	if !ok {
		return model.AuctionSnapshot{}, fmt.Errorf("apply to auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.auction.Clone()
	if err := safeMutate(auctionID, &working, mutate); err != nil {
		return model.AuctionSnapshot{}, err
	}

	e.auction = working
	snap := working.Snapshot()
	if onCommit != nil {
		onCommit(snap)
	}
	return snap, nil
}

// safeMutate turns a panic in mutate into ErrInternal. The working copy is discarded by the caller.
func safeMutate(auctionID int64, working *model.Auction, mutate func(*model.Auction) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("apply to auction %d: %w: %v", auctionID, biddingerrors.ErrInternal, p)
		}
	}()
	return mutate(working)
}

// GetSnapshot returns a consistent copy of one auction
func (r *MemoryRepo) GetSnapshot(auctionID int64) (model.AuctionSnapshot, error) {
	e, ok := r.entry(auctionID)
	if !ok {
		return model.AuctionSnapshot{}, fmt.Errorf("get auction %d: %w", auctionID, biddingerrors.ErrAuctionNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.auction.Snapshot(), nil
}

// GetSnapshots returns copies of all auctions ordered by ID
func (r *MemoryRepo) GetSnapshots() []model.AuctionSnapshot {
	r.mu.RLock()
	entries := make([]*auctionEntry, 0, len(r.auctions))
	for _, e := range r.auctions {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	snaps := make([]model.AuctionSnapshot, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		snaps = append(snaps, e.auction.Snapshot())
		e.mu.Unlock()
	}

	sort.Slice(snaps, func(i, j int) bool { return snaps[i].ID < snaps[j].ID })
	return snaps
}

// Count returns the number of stored auctions
func (r *MemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.auctions)
}
