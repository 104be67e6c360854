package handler

import (
	"net/http"
	"strings"

	"live-auction/internal/events"
	"live-auction/internal/hub"
	model "live-auction/internal/models"
	"live-auction/services/bidding/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// BidSubmitter is the part of the bidding engine the transport needs
type BidSubmitter interface {
	SubmitBid(partyID string, req model.BidRequest) model.BidOutcome
}

// PartyRegistry tracks connected parties and addresses single ones
type PartyRegistry interface {
	Register(p hub.Party)
	Unregister(partyID string)
	NotifyOne(partyID string, ev events.Event)
}

// WebSocketHandler connects parties and routes their bids to the engine
type WebSocketHandler struct {
	service  BidSubmitter
	registry PartyRegistry
	opts     ClientOptions
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(service BidSubmitter, registry PartyRegistry, opts ClientOptions) *WebSocketHandler {
	return &WebSocketHandler{
		service:  service,
		registry: registry,
		opts:     opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(opts.AllowedOrigins),
		},
	}
}

// originChecker builds the upgrader's origin policy. With no origins configured it
// returns nil, which makes the upgrader accept same-origin requests only.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}

	origins := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		o = strings.TrimSpace(o)
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		origins[strings.ToLower(strings.TrimSuffix(o, "/"))] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			// not a browser; nothing to protect against
			return true
		}
		return origins[strings.ToLower(origin)]
	}
}

// ServeWS handles GET /ws
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written an HTTP error
		utils.Warn("ServeWS: failed to upgrade connection", map[string]any{"error": err.Error()})
		return
	}

	client := NewClient(utils.GenerateID(), conn, h.opts)

	// pumps start first so the initial sync has somewhere to go
	go client.WriteMessages()
	h.registry.Register(client)
	go client.ReadMessages(h.HandleMessage, func() { h.registry.Unregister(client.ID()) })

	helpers.LogSuccess("ServeWS", "party connected", map[string]any{
		"party_id": client.ID(),
		"remote":   c.ClientIP(),
	})
}

// HandleMessage routes one inbound message
func (h *WebSocketHandler) HandleMessage(client *Client, raw []byte) {
	if !client.Allow() {
		utils.Warn("HandleMessage: rate limit exceeded", map[string]any{"party_id": client.ID()})
		h.registry.NotifyOne(client.ID(), events.NewMessageError(0, "Rate limit exceeded"))
		return
	}

	req, err := helpers.ParseBidMessage(raw)
	if err != nil {
		helpers.HandleMessageError(h.registry, "HandleMessage", client.ID(), req.AuctionID, err)
		return
	}

	h.service.SubmitBid(client.ID(), req)
}
