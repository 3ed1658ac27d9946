package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/bootstrap"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/config"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/middleware"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/server"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/tracing"
)

const shutdownTimeout = 15 * time.Second

// @title Vespr Inventory API
// @version 1.0
// @description Item catalog, inventories and stat effects for Vespr players.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Every exit path releases whatever has been started so far.
	var components bootstrap.ShutdownComponents
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, components)
	}()

	tracingShutdown, err := tracing.Setup(ctx, cfg.OTelEnabled, cfg.OTelEndpoint, cfg.ServiceName, cfg.Version)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	components.TracingShutdown = tracingShutdown

	pool, store, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	components.DBPool = pool

	bus := bootstrap.InitializeEventSystem()

	opts := inventory.DefaultOptions()
	opts.ForceUnequipOnDelete = cfg.ForceUnequipOnDelete
	opts.MaxRetries = cfg.SerializationMaxRetries
	svc := inventory.NewService(store, bus, opts)

	audit := eventlog.NewService(store)
	bootstrap.RegisterEventHandlers(bus, svc, audit)

	if err := bootstrap.SyncCatalog(ctx, cfg, svc, store); err != nil {
		return err
	}
	if err := bootstrap.BackfillStats(ctx, svc); err != nil {
		return err
	}

	auth, err := middleware.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %w", err)
	}

	components.WorkerPool, components.Scheduler = bootstrap.StartBackgroundJobs(cfg, audit)

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		Version:         cfg.Version,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		EventLog:        audit,
	}, pool, svc, auth)
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	return err
}
