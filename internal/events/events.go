package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Type names an event on the wire
type Type string

// inbound
const (
	TypePlaceBid Type = "placeBid"
)

// outbound
const (
	TypeInitialSync   Type = "initialSync"
	TypeAuctionUpdate Type = "auctionUpdate"
	TypeBidSuccess    Type = "bidSuccess"
	TypeBidError      Type = "bidError"
	TypeTimeSync      Type = "timeSync"
)

// Envelope is an inbound message whose payload is decoded once the type is known
type Envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Event is an outbound message
type Event struct {
	Type Type `json:"type"`
	Data any  `json:"data"`
}

// Encode serialises the event for the transport
func (e Event) Encode() ([]byte, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return raw, nil
}

// PlaceBid is the only inbound payload. BidAmount is a pointer so a missing amount can be told apart from zero.
type PlaceBid struct {
	AuctionID  int64            `json:"auctionId"`
	BidAmount  *decimal.Decimal `json:"bidAmount"`
	BidderName string           `json:"bidderName,omitempty"`
}

type InitialSync struct {
	ServerTime int64                   `json:"serverTime"`
	Auctions   []model.AuctionSnapshot `json:"auctions"`
}

type AuctionUpdate struct {
	AuctionID     int64               `json:"auctionId"`
	CurrentBid    decimal.Decimal     `json:"currentBid"`
	HighestBidder *string             `json:"highestBidder"`
	BidHistory    []model.BidSnapshot `json:"bidHistory"`
}

type BidSuccess struct {
	AuctionID  int64           `json:"auctionId"`
	CurrentBid decimal.Decimal `json:"currentBid"`
}

// BidError carries MinimumBid only for a bid that was too low.
type BidError struct {
	AuctionID  int64            `json:"auctionId"`
	Message    string           `json:"message"`
	MinimumBid *decimal.Decimal `json:"minimumBid,omitempty"`
}

type TimeSync struct {
	ServerTime int64 `json:"serverTime"`
}

// DecodePlaceBid parses the payload of a placeBid envelope. bidAmount must be a JSON
// number; quoted amounts are rejected.
func DecodePlaceBid(data json.RawMessage) (PlaceBid, error) {
	if len(data) == 0 {
		return PlaceBid{}, fmt.Errorf("decode placeBid: %w - empty payload", biddingerrors.ErrInvalidBid)
	}

	var raw struct {
		AuctionID  int64           `json:"auctionId"`
		BidAmount  json.RawMessage `json:"bidAmount"`
		BidderName string          `json:"bidderName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return PlaceBid{}, fmt.Errorf("decode placeBid: %w - %v", biddingerrors.ErrInvalidBid, err)
	}

	amount := bytes.TrimSpace(raw.BidAmount)
	if len(amount) == 0 || bytes.Equal(amount, []byte("null")) {
		return PlaceBid{AuctionID: raw.AuctionID}, fmt.Errorf("decode placeBid: %w - missing bidAmount", biddingerrors.ErrInvalidBid)
	}
	if amount[0] == '"' {
		return PlaceBid{AuctionID: raw.AuctionID}, fmt.Errorf("decode placeBid: %w - bidAmount must be a number", biddingerrors.ErrInvalidBid)
	}

	var bid decimal.Decimal
	if err := bid.UnmarshalJSON(amount); err != nil {
		return PlaceBid{AuctionID: raw.AuctionID}, fmt.Errorf("decode placeBid: %w - %v", biddingerrors.ErrInvalidBid, err)
	}

	return PlaceBid{AuctionID: raw.AuctionID, BidAmount: &bid, BidderName: raw.BidderName}, nil
}

func NewInitialSync(now time.Time, auctions []model.AuctionSnapshot) Event {
	if auctions == nil {
		auctions = []model.AuctionSnapshot{}
	}
	return Event{Type: TypeInitialSync, Data: InitialSync{ServerTime: now.UnixMilli(), Auctions: auctions}}
}

func NewAuctionUpdate(snap model.AuctionSnapshot) Event {
	return Event{Type: TypeAuctionUpdate, Data: AuctionUpdate{
		AuctionID:     snap.ID,
		CurrentBid:    snap.CurrentBid,
		HighestBidder: snap.HighestBidder,
		BidHistory:    snap.BidHistory,
	}}
}

func NewBidSuccess(snap model.AuctionSnapshot) Event {
	return Event{Type: TypeBidSuccess, Data: BidSuccess{AuctionID: snap.ID, CurrentBid: snap.CurrentBid}}
}

// NewBidError builds the rejection sent to the submitter of a failed bid
func NewBidError(outcome model.BidOutcome) Event {
	payload := BidError{
		AuctionID: outcome.AuctionID,
		Message:   RejectionMessage(outcome.Reason, outcome.MinimumBid),
	}
	if errors.Is(outcome.Reason, biddingerrors.ErrBidTooLow) {
		payload.MinimumBid = outcome.MinimumBid
	}
	return Event{Type: TypeBidError, Data: payload}
}

// NewMessageError is a rejection that never reached the engine, e.g. a malformed or throttled message.
func NewMessageError(auctionID int64, message string) Event {
	return Event{Type: TypeBidError, Data: BidError{AuctionID: auctionID, Message: message}}
}

func NewTimeSync(now time.Time) Event {
	return Event{Type: TypeTimeSync, Data: TimeSync{ServerTime: now.UnixMilli()}}
}

// RejectionMessage maps an engine rejection to the text shown to the bidder
func RejectionMessage(reason error, minimum *decimal.Decimal) string {
	switch {
	case errors.Is(reason, biddingerrors.ErrAuctionNotFound):
		return "Auction not found"
	case errors.Is(reason, biddingerrors.ErrAuctionEnded):
		return "Auction has ended"
	case errors.Is(reason, biddingerrors.ErrBidTooLow):
		if minimum != nil {
			return fmt.Sprintf("Bid must be at least %s", minimum.String())
		}
		return "Bid too low"
	case errors.Is(reason, biddingerrors.ErrInvalidBid):
		return "Invalid bid"
	case errors.Is(reason, biddingerrors.ErrBadMessageFormat):
		return "Invalid message format"
	case errors.Is(reason, biddingerrors.ErrUnknownMessageType):
		return "Unknown message type"
	default:
		return "Internal server error"
	}
}
