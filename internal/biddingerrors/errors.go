package biddingerrors

import "errors"

// Store-level errors
var (
	ErrAuctionNotFound  = errors.New("auction not found")
	ErrDuplicateAuction = errors.New("auction already exists")
	ErrInternal         = errors.New("internal error")
)

// business logic errors
var (
	ErrInvalidBid   = errors.New("invalid bid")
	ErrAuctionEnded = errors.New("auction has ended")
	ErrBidTooLow    = errors.New("bid amount too low")
)

// transport errors, raised before a message reaches the engine
var (
	ErrBadMessageFormat   = errors.New("bad message format")
	ErrUnknownMessageType = errors.New("unknown message type")
)
