package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"live-auction/internal/biddingerrors"
	model "live-auction/internal/models"
	"live-auction/services/bidding/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// SnapshotReader is the read-only view of the engine used by polling clients
type SnapshotReader interface {
	Snapshots() []model.AuctionSnapshot
	Snapshot(auctionID int64) (model.AuctionSnapshot, error)
	Now() time.Time
}

// ConnectionCounter reports how many parties are connected
type ConnectionCounter interface {
	Connected() int
}

// AuctionsResponse is the body of GET /auctions
type AuctionsResponse struct {
	ServerTime int64                   `json:"serverTime"`
	Auctions   []model.AuctionSnapshot `json:"auctions"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
	Auctions    int    `json:"auctions"`
}

type QueryHandler struct {
	reader      SnapshotReader
	connections ConnectionCounter
}

func NewQueryHandler(reader SnapshotReader, connections ConnectionCounter) *QueryHandler {
	return &QueryHandler{reader: reader, connections: connections}
}

// GetAuctionsHandler handles GET /auctions
func (h *QueryHandler) GetAuctionsHandler(c *gin.Context) {
	auctions := h.reader.Snapshots()
	if auctions == nil {
		auctions = []model.AuctionSnapshot{}
	}

	resp := AuctionsResponse{
		ServerTime: h.reader.Now().UnixMilli(),
		Auctions:   auctions,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *QueryHandler) GetAuctionHandler(c *gin.Context) {
	raw := c.Param("auction_id")
	auctionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid auction id %q: %w", raw, biddingerrors.ErrInvalidBid), "invalid auction id")
		utils.Warn("GetAuctionHandler: invalid auction id", map[string]any{"auction_id": raw})
		return
	}

	snap, err := h.reader.Snapshot(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		if status == http.StatusNotFound {
			utils.JSONNotFound(c, err, message)
		} else {
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		}
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "auction retrieved successfully")
}

// HealthHandler handles GET /health
func (h *QueryHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		Connections: h.connections.Connected(),
		Auctions:    len(h.reader.Snapshots()),
	})
}
