package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fakturo-lab/fakturo/internal/config"
	"github.com/fakturo-lab/fakturo/internal/core/storage/mongodb"
	"github.com/fakturo-lab/fakturo/internal/listing"
	"github.com/fakturo-lab/fakturo/internal/reporting"
	"github.com/fakturo-lab/fakturo/internal/server"
)

func main() {
	configPath := flag.String("config", "fakturo.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"address", fmtAddr(cfg.Server.Host, cfg.Server.Port),
		"database", cfg.Database.Name,
		"mode", cfg.Server.Mode,
	)

	// 2. Initialize Storage (MongoDB).
	// The connection is established lazily on the first read; a startup with
	// the store down still serves /health and degrades gracefully.
	adapter := mongodb.NewAdapter(cfg.Database.URI, cfg.Database.Name)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := adapter.Close(ctx); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	// 3. Initialize Services
	reportingSvc := reporting.NewService(adapter.Invoices())
	listingSvc := listing.NewService(adapter.Invoices(), adapter.Clients(), adapter.Folders())

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), adapter, cfg.Server.Mode)
	reportingSvc.RegisterRoutes(srv.Engine)
	listingSvc.RegisterRoutes(srv.Engine)

	// 5. Start
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
