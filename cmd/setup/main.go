package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/bootstrap"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/config"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/event"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/eventlog"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/middleware"
)

func main() {
	skipCatalog := flag.Bool("skip-catalog", false, "do not sync the item catalog file")
	issueAdmin := flag.Bool("admin-token", false, "print a bearer token for the admin role")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	ctx := context.Background()

	// 1. Create the database on first run
	if err := ensureDatabase(ctx, cfg); err != nil {
		log.Fatalf("Failed to prepare database: %v", err)
	}

	// 2. Migrate
	pool, store, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer pool.Close()

	opts := inventory.DefaultOptions()
	opts.MaxRetries = cfg.SerializationMaxRetries
	bus := event.NewMemoryBus()
	svc := inventory.NewService(store, bus, opts)
	bootstrap.RegisterEventHandlers(bus, svc, eventlog.NewService(store))

	// 3. Catalog and stats backfill
	if !*skipCatalog {
		if err := bootstrap.SyncCatalog(ctx, cfg, svc, store); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := bootstrap.BackfillStats(ctx, svc); err != nil {
		log.Fatalf("%v", err)
	}

	if *issueAdmin {
		auth, err := middleware.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
		if err != nil {
			log.Fatalf("Failed to create authenticator: %v", err)
		}
		token, err := auth.Issue(domain.Caller{Role: domain.RoleAdmin})
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
	}

	fmt.Println("Setup completed successfully.")
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName
// when it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	admin := *cfg
	admin.DBName = "postgres"

	conn, err := pgx.Connect(ctx, admin.GetDBConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
