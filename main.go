package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"live-auction/internal/clock"
	"live-auction/internal/config"
	"live-auction/internal/server"
	"live-auction/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

func run() error {
	cfg, err := config.Load(configDir())
	if err != nil {
		return err
	}
	if err := utils.SetLevel(cfg.Server.LogLevel); err != nil {
		return err
	}

	app, err := server.NewApp(cfg, clock.System{})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hubDone := app.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		utils.Info("Starting auction server", map[string]any{"addr": srv.Addr, "auctions": app.Repo.Count()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			stop()
			<-hubDone
			return err
		}
	case <-ctx.Done():
	}

	utils.Info("Shutting down auction server", nil)

	// hijacked websocket connections are not tracked by Shutdown; the hub closes them
	<-hubDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// configDir returns the directory holding config.yaml and .env
func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "./configs"
}
