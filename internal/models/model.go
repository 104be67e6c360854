package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Auction represents one item under bid. Only the bidding engine mutates it.
type Auction struct {
	ID               int64
	Title            string
	StartingBid      decimal.Decimal
	CurrentBid       decimal.Decimal
	MinimumIncrement decimal.Decimal
	EndTime          time.Time
	HighestBidder    string // empty until the first accepted bid
	BidHistory       []BidRecord
}

// BidRecord is one accepted bid. History order is acceptance order.
type BidRecord struct {
	BidID     string
	Amount    decimal.Decimal
	Bidder    string
	Timestamp time.Time
}

// BidRequest is a single bid submission from a connected party
type BidRequest struct {
	AuctionID  int64
	Amount     decimal.Decimal
	BidderName string
}

// BidOutcome is the result of one SubmitBid call.
// Auction is only populated when Accepted is true; MinimumBid only for a too-low bid.
type BidOutcome struct {
	AuctionID  int64
	Accepted   bool
	Auction    AuctionSnapshot
	Reason     error
	MinimumBid *decimal.Decimal
}

// BidSnapshot is the wire form of a BidRecord
type BidSnapshot struct {
	BidID     string          `json:"bidId"`
	Amount    decimal.Decimal `json:"amount"`
	Bidder    string          `json:"bidder"`
	Timestamp int64           `json:"timestamp"`
}

// AuctionSnapshot is an immutable copy of an auction taken at one instant
type AuctionSnapshot struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	StartingBid      decimal.Decimal `json:"startingBid"`
	CurrentBid       decimal.Decimal `json:"currentBid"`
	MinimumIncrement decimal.Decimal `json:"minimumIncrement"`
	EndTime          int64           `json:"endTime"`
	HighestBidder    *string         `json:"highestBidder"`
	BidHistory       []BidSnapshot   `json:"bidHistory"`
}

// Clone returns a copy of the auction whose history can be appended to without
// touching the receiver's backing array.
func (a Auction) Clone() Auction {
	c := a
	c.BidHistory = make([]BidRecord, len(a.BidHistory), len(a.BidHistory)+1)
	copy(c.BidHistory, a.BidHistory)
	return c
}

// Snapshot copies the auction into its wire form
func (a Auction) Snapshot() AuctionSnapshot {
	history := make([]BidSnapshot, 0, len(a.BidHistory))
	for _, b := range a.BidHistory {
		history = append(history, BidSnapshot{
			BidID:     b.BidID,
			Amount:    b.Amount,
			Bidder:    b.Bidder,
			Timestamp: b.Timestamp.UnixMilli(),
		})
	}

	var bidder *string
	if a.HighestBidder != "" {
		name := a.HighestBidder
		bidder = &name
	}

	return AuctionSnapshot{
		ID:               a.ID,
		Title:            a.Title,
		StartingBid:      a.StartingBid,
		CurrentBid:       a.CurrentBid,
		MinimumIncrement: a.MinimumIncrement,
		EndTime:          a.EndTime.UnixMilli(),
		HighestBidder:    bidder,
		BidHistory:       history,
	}
}

// MinimumAcceptable is the lowest amount the next bid may carry
func (a Auction) MinimumAcceptable() decimal.Decimal {
	return a.CurrentBid.Add(a.MinimumIncrement)
}

// HasEnded reports whether now is at or past the deadline.
func (a Auction) HasEnded(now time.Time) bool {
	return !now.Before(a.EndTime)
}
