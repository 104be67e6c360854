package helpers

import (
	"errors"
	"net/http"

	"live-auction/internal/biddingerrors"
	"live-auction/internal/events"
	"live-auction/utils"
)

// Notifier addresses a single connected party
type Notifier interface {
	NotifyOne(partyID string, ev events.Event)
}

// HandleMessageError reports a message that never reached the engine back to its sender
func HandleMessageError(n Notifier, handlerName, partyID string, auctionID int64, err error) {
	n.NotifyOne(partyID, events.NewMessageError(auctionID, events.RejectionMessage(err, nil)))
	utils.Warn(handlerName+": rejected message", map[string]any{
		"party_id": partyID,
		"error":    err.Error(),
	})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, biddingerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, biddingerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
