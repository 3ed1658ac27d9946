package repository

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// Catalog defines the interface for item definition persistence
type Catalog interface {
	// UpsertItem inserts def or overwrites the item with the same name, keeping its id.
	UpsertItem(ctx context.Context, def domain.ItemDefinition) (*domain.Item, error)
	GetItemByID(ctx context.Context, id int64) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	// RestockItem sets quantity on every existing ledger row of itemID and
	// returns the number of rows touched. It never creates rows.
	RestockItem(ctx context.Context, itemID int64, quantity int) (int64, error)
}

// SyncMetadata records the last catalog seed file that was applied
type SyncMetadata interface {
	GetSyncHash(ctx context.Context, key string) (string, error)
	SetSyncHash(ctx context.Context, key, hash string) error
}
