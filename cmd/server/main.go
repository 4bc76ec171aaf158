package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-analyzer/internal/config"
	"content-analyzer/internal/domain"
	"content-analyzer/internal/server"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := container.Config
	logger := container.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := server.Listen(ctx, server.Options{
		Host:     cfg.GetHost(),
		Port:     cfg.GetPort(),
		Attempts: cfg.GetPortAttempts(),
	}, logger)
	if err != nil {
		if errors.Is(err, domain.ErrNoFreePort) {
			logger.Error("No free port found", err)
		} else {
			logger.Error("Failed to start server", err)
		}
		os.Exit(1)
	}

	srv := &http.Server{
		Handler:           container.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", err)
		os.Exit(1)
	}
	logger.Info("Server exited")
}
