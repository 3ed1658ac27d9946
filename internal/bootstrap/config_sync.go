package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/catalog"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/config"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/inventory"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

// SyncCatalog loads, validates and syncs the item catalog file through the
// inventory service. Hash-based change detection skips an unchanged file.
func SyncCatalog(ctx context.Context, cfg *config.Config, svc inventory.Service, meta repository.SyncMetadata) error {
	slog.Info(LogMsgSyncingCatalog, "path", cfg.CatalogFile)

	loader := catalog.NewLoader(cfg.CatalogSchema)
	result, err := loader.Sync(ctx, cfg.CatalogFile, svc, meta)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	if result.Inserted > 0 || result.Updated > 0 {
		slog.Info(LogMsgCatalogSynced,
			"inserted", result.Inserted,
			"updated", result.Updated,
			"skipped", result.Skipped)
	} else {
		slog.Info(LogMsgCatalogUnchanged)
	}
	return nil
}

// BackfillStats gives every user without a stats row the defaults
func BackfillStats(ctx context.Context, svc inventory.Service) error {
	n, err := svc.InitializeAllStats(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedBackfillStat, err)
	}
	if n > 0 {
		slog.Info(LogMsgStatsBackfilled, "count", n)
	}
	return nil
}
