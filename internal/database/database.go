// Package database owns the Postgres connection pool and the schema
// migrations of the inventory service.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the part of the connection pool the readiness probe and shutdown need
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolSettings sizes the pool. Zero durations keep the pgx defaults.
type PoolSettings struct {
	ConnString      string
	ApplicationName string
	MaxConns        int
	MinConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

// NewPool connects to Postgres and verifies the connection with a ping
// bounded by PingTimeout.
func NewPool(ctx context.Context, settings PoolSettings) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(settings)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Info(LogMsgConnected,
		"max_conns", cfg.MaxConns,
		"min_conns", cfg.MinConns,
		"application_name", cfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName])
	return pool, nil
}

func poolConfig(settings PoolSettings) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(settings.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := settings.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConnections
	}
	cfg.MaxConns = int32(min(maxConns, math.MaxInt32))
	cfg.MinConns = int32(min(max(settings.MinConns, 0), int(cfg.MaxConns)))

	if settings.MaxConnIdleTime > 0 {
		cfg.MaxConnIdleTime = settings.MaxConnIdleTime
	}
	if settings.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = settings.MaxConnLifetime
	}

	name := settings.ApplicationName
	if name == "" {
		name = DefaultApplicationName
	}
	cfg.ConnConfig.RuntimeParams[RuntimeParamApplicationName] = name
	return cfg, nil
}
