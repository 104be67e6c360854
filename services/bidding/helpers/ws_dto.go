package helpers

import (
	"encoding/json"
	"fmt"

	"live-auction/internal/biddingerrors"
	"live-auction/internal/events"
	model "live-auction/internal/models"
)

// ParseBidMessage decodes a raw websocket message into a bid request.
// The returned request carries the auction id whenever it could be read, even on error.
func ParseBidMessage(raw []byte) (model.BidRequest, error) {
	var env events.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return model.BidRequest{}, fmt.Errorf("parse message: %w - %v", biddingerrors.ErrBadMessageFormat, err)
	}

	if env.Type != events.TypePlaceBid {
		return model.BidRequest{}, fmt.Errorf("parse message: %w - %q", biddingerrors.ErrUnknownMessageType, env.Type)
	}

	bid, err := events.DecodePlaceBid(env.Data)
	if err != nil {
		return model.BidRequest{AuctionID: bid.AuctionID}, err
	}

	return model.BidRequest{
		AuctionID:  bid.AuctionID,
		Amount:     *bid.BidAmount,
		BidderName: bid.BidderName,
	}, nil
}
