package repository

import (
	"context"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// Ledger defines read access to the inventory ledger
type Ledger interface {
	GetQuantity(ctx context.Context, userID, itemID int64) (int, error)
	ListUserInventory(ctx context.Context, userID int64) ([]domain.InventorySlot, error)
}

// Inventory is everything the inventory service needs from storage
type Inventory interface {
	Catalog
	Stats
	Ledger
	User

	BeginTx(ctx context.Context) (InventoryTx, error)
}
