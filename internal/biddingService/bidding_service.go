package bidding

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"live-auction/internal/biddingerrors"
	"live-auction/internal/clock"
	"live-auction/internal/events"
	"live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/utils"

	"github.com/shopspring/decimal"
)

// Notifier delivers outcomes of bids. Both methods must return without waiting for delivery.
type Notifier interface {
	NotifyAll(ev events.Event)
	NotifyOne(partyID string, ev events.Event)
}

// BiddingService serializes bids per auction and applies them against the auction store
type BiddingService struct {
	repo     repository.AuctionStore
	clock    clock.Clock
	notifier Notifier
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionStore, clk clock.Clock, notifier Notifier) *BiddingService {
	return &BiddingService{
		repo:     repo,
		clock:    clk,
		notifier: notifier,
	}
}

// SubmitBid validates a bid against the auction's current state and the authoritative
// clock and applies it as one step. Calls for the same auction never interleave.
//
// On acceptance every party receives an auctionUpdate and the submitter a bidSuccess,
// both enqueued before the auction is unlocked so updates leave in acceptance order.
// On rejection only the submitter is told.
func (s *BiddingService) SubmitBid(partyID string, req models.BidRequest) models.BidOutcome {
	bidder := bidderOrDefault(partyID, req.BidderName)

	if err := validateRequest(req); err != nil {
		return s.reject(partyID, req, models.BidOutcome{AuctionID: req.AuctionID, Reason: classify(err)})
	}

	var minimum decimal.Decimal
	snap, err := s.repo.Apply(req.AuctionID, func(a *models.Auction) error {
		now := s.clock.Now()
		if a.HasEnded(now) {
			return fmt.Errorf("service: %w - auction %d closed at %s", biddingerrors.ErrAuctionEnded, a.ID, a.EndTime)
		}

		minimum = a.MinimumAcceptable()
		if req.Amount.LessThan(minimum) {
			return fmt.Errorf("service: %w - minimum acceptable is %s", biddingerrors.ErrBidTooLow, minimum)
		}

		a.CurrentBid = req.Amount
		a.HighestBidder = bidder
		a.BidHistory = append(a.BidHistory, models.BidRecord{
			BidID:     utils.GenerateID(),
			Amount:    req.Amount,
			Bidder:    bidder,
			Timestamp: now,
		})
		return nil
	}, func(snap models.AuctionSnapshot) {
		s.notifier.NotifyAll(events.NewAuctionUpdate(snap))
		s.notifier.NotifyOne(partyID, events.NewBidSuccess(snap))
	})

	if err != nil {
		outcome := models.BidOutcome{AuctionID: req.AuctionID, Reason: classify(err)}
		if errors.Is(err, biddingerrors.ErrBidTooLow) {
			outcome.MinimumBid = &minimum
		}
		if errors.Is(err, biddingerrors.ErrInternal) {
			utils.Error("SubmitBid: internal fault while applying bid", map[string]any{
				"auction_id": req.AuctionID,
				"party_id":   partyID,
				"error":      err.Error(),
			})
		}
		return s.reject(partyID, req, outcome)
	}

	utils.Info("SubmitBid: bid accepted", map[string]any{
		"auction_id": req.AuctionID,
		"party_id":   partyID,
		"bidder":     bidder,
		"amount":     req.Amount.String(),
	})

	return models.BidOutcome{AuctionID: req.AuctionID, Accepted: true, Auction: snap}
}

// Snapshots returns a consistent copy of every auction
func (s *BiddingService) Snapshots() []models.AuctionSnapshot {
	return s.repo.GetSnapshots()
}

// Snapshot returns a consistent copy of one auction
func (s *BiddingService) Snapshot(auctionID int64) (models.AuctionSnapshot, error) {
	snap, err := s.repo.GetSnapshot(auctionID)
	if err != nil {
		return models.AuctionSnapshot{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	return snap, nil
}

// Now exposes the authoritative clock reading
func (s *BiddingService) Now() time.Time {
	return s.clock.Now()
}

func (s *BiddingService) reject(partyID string, req models.BidRequest, outcome models.BidOutcome) models.BidOutcome {
	s.notifier.NotifyOne(partyID, events.NewBidError(outcome))

	fields := map[string]any{
		"auction_id": req.AuctionID,
		"party_id":   partyID,
		"reason":     outcome.Reason.Error(),
	}
	if !req.Amount.IsZero() {
		fields["amount"] = req.Amount.String()
	}
	utils.Debug("SubmitBid: bid rejected", fields)
	return outcome
}

// Amount bounds. Comparing decimals rescales both sides to the smaller exponent, so an
// amount like 1e-30000000 would turn a price check into a multi-million digit operation
// while the auction is locked.
const (
	maxFractionDigits = 18
	maxIntegerDigits  = 18
	maxAmountDigits   = maxFractionDigits + maxIntegerDigits
)

// validateRequest checks input validity before the auction is locked
func validateRequest(req models.BidRequest) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}

	exp := int(req.Amount.Exponent())
	if exp < -maxFractionDigits {
		return fmt.Errorf("service: %w - more than %d fractional digits", biddingerrors.ErrInvalidBid, maxFractionDigits)
	}
	digits := req.Amount.NumDigits()
	if digits > maxAmountDigits || digits+exp > maxIntegerDigits {
		return fmt.Errorf("service: %w - amount out of range", biddingerrors.ErrInvalidBid)
	}
	return nil
}

// classify reduces an error to the sentinel reported to the bidder. Anything unknown is internal.
func classify(err error) error {
	for _, known := range []error{
		biddingerrors.ErrAuctionNotFound,
		biddingerrors.ErrAuctionEnded,
		biddingerrors.ErrBidTooLow,
		biddingerrors.ErrInvalidBid,
	} {
		if errors.Is(err, known) {
			return known
		}
	}
	return biddingerrors.ErrInternal
}

// bidderOrDefault falls back to a label derived from the connection
func bidderOrDefault(partyID, name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return "anonymous-" + utils.ShortID(partyID, 8)
}
