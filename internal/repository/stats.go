package repository

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// Stats defines the interface for the stat ledger outside a transaction
type Stats interface {
	GetStats(ctx context.Context, userID int64) (*domain.UserStats, error)
	// EnsureStats inserts default stats for userID if absent and reports whether it did.
	EnsureStats(ctx context.Context, userID int64) (bool, error)
	// InitializeMissingStats inserts default stats for every user without them.
	InitializeMissingStats(ctx context.Context) (int64, error)
}
