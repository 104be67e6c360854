package server

import (
	"context"
	"fmt"
	"time"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/clock"
	"live-auction/internal/config"
	"live-auction/internal/hub"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	handler "live-auction/services/bidding/handler"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App is the wired server: store, engine, hub and HTTP routes
type App struct {
	Repo    *repository.MemoryRepo
	Hub     *hub.Hub
	Service *bidding.BiddingService
	Router  *gin.Engine

	clock        clock.Clock
	tickInterval time.Duration
}

// NewApp builds the application from cfg and seeds the configured auctions relative to clk.
func NewApp(cfg *config.Config, clk clock.Clock) (*App, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repo := repository.NewMemoryRepo()
	if err := SeedAuctions(repo, cfg.Auctions, clk.Now()); err != nil {
		return nil, err
	}

	// the hub reads snapshots straight from the store so it does not depend on the engine
	h := hub.NewHub(hub.SnapshotFunc(repo.GetSnapshots), clk, cfg.Hub.Buffer)
	svc := bidding.NewBiddingService(repo, clk, h)

	opts := handler.ClientOptions{
		MaxMessageSize: cfg.WebSocket.MaxMessageSize,
		PingInterval:   cfg.WebSocket.PingInterval,
		WriteWait:      cfg.WebSocket.WriteWait,
		SendBuffer:     cfg.WebSocket.SendBuffer,
		RateLimit:      rate.Limit(cfg.WebSocket.RateLimit),
		RateBurst:      cfg.WebSocket.RateBurst,
		AllowedOrigins: cfg.WebSocket.AllowedOrigins,
	}

	router := SetupRouter(
		handler.NewWebSocketHandler(svc, h, opts),
		handler.NewQueryHandler(svc, h),
	)

	return &App{
		Repo:         repo,
		Hub:          h,
		Service:      svc,
		Router:       router,
		clock:        clk,
		tickInterval: cfg.Clock.TickInterval,
	}, nil
}

// Start runs the hub and the time sync publisher until ctx is cancelled.
// The returned channel is closed once the hub has closed every party.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Hub.Run(ctx)
	}()
	go a.Hub.PublishTicks(ctx, clock.Ticks(ctx, a.clock, a.tickInterval))
	return done
}

// SeedAuctions adds one auction per seed, ending seed.Duration after now
func SeedAuctions(repo *repository.MemoryRepo, seeds []config.AuctionSeed, now time.Time) error {
	for _, seed := range seeds {
		start, increment, err := seed.Amounts()
		if err != nil {
			return err
		}

		auction := model.Auction{
			ID:               seed.ID,
			Title:            seed.Title,
			StartingBid:      start,
			CurrentBid:       start,
			MinimumIncrement: increment,
			EndTime:          now.Add(seed.Duration),
		}
		if err := repo.AddAuction(auction); err != nil {
			return fmt.Errorf("seed auction %d: %w", seed.ID, err)
		}

		utils.Info("auction seeded", map[string]any{
			"auction_id": seed.ID,
			"title":      seed.Title,
			"current":    start.String(),
			"ends_at":    auction.EndTime.Format(time.RFC3339),
		})
	}
	return nil
}
