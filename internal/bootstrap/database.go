package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/config"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/database"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/database/postgres"
)

// ConnectDatabase opens the pool, brings the schema up to date and returns
// the store every repository interface is served from. The caller owns the
// pool and must close it.
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, *postgres.Store, error) {
	pool, err := database.NewPool(ctx, database.PoolSettings{
		ConnString:      cfg.GetDBConnString(),
		ApplicationName: cfg.ServiceName,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateSchema, err)
	}
	slog.Info(LogMsgSchemaReady, "version", version)

	return pool, postgres.NewStore(pool), nil
}
