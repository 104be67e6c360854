package server

import (
	handler "live-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(wsHandler *handler.WebSocketHandler, queryHandler *handler.QueryHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/ws", wsHandler.ServeWS)
	router.GET("/health", queryHandler.HealthHandler)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", queryHandler.GetAuctionsHandler)
		auctions.GET("/:auction_id", queryHandler.GetAuctionHandler)
	}

	return router
}
