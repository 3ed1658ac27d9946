package repository

import (
	"context"
	"errors"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// ErrTxConflict is returned when the store aborted a transaction because of a
// concurrent writer (serialization failure or deadlock). The whole transaction
// may be retried.
var ErrTxConflict = errors.New("transaction conflict")

// ErrMsgTxClosed is the message returned when rolling back a finished transaction.
const ErrMsgTxClosed = "tx is closed"

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// InventoryTx is a serializable unit of work over the inventory ledger and the
// stat ledger. Ledger and stat writes made through one InventoryTx commit or
// roll back together.
type InventoryTx interface {
	Tx

	// GetEntryForUpdate locks the (user, item) row. It returns nil when the row is absent.
	GetEntryForUpdate(ctx context.Context, userID, itemID int64) (*domain.InventoryEntry, error)
	IncreaseQuantity(ctx context.Context, userID, itemID int64, amount int) (int, error)
	// DecreaseQuantity fails with domain.ErrInsufficientQuantity when fewer than
	// amount units are held. A row reaching zero is deleted; the remaining
	// quantity is returned.
	DecreaseQuantity(ctx context.Context, userID, itemID int64, amount int) (int, error)
	SetEquipped(ctx context.Context, userID, itemID int64, equipped bool, effect domain.EffectType, value int) error

	GetStats(ctx context.Context, userID int64) (*domain.UserStats, error)
	ApplyStatDelta(ctx context.Context, userID int64, stat domain.Stat, delta int) (*domain.UserStats, error)

	UpsertItem(ctx context.Context, def domain.ItemDefinition) (*domain.Item, error)
	RestockItem(ctx context.Context, itemID int64, quantity int) (int64, error)
}
