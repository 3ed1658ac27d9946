package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/repository"
)

// Store implements the inventory repositories for PostgreSQL
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var (
	_ repository.Inventory    = (*Store)(nil)
	_ repository.SyncMetadata = (*Store)(nil)
	_ repository.InventoryTx  = (*inventoryTx)(nil)
)

// BeginTx starts a serializable transaction over the inventory and stat ledgers
func (s *Store) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToBeginTransaction, err)
	}
	return &inventoryTx{tx: tx}, nil
}

// inventoryTx binds the ledger statements to one pgx transaction
type inventoryTx struct {
	tx pgx.Tx
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return wrapErr(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *inventoryTx) GetEntryForUpdate(ctx context.Context, userID, itemID int64) (*domain.InventoryEntry, error) {
	return getEntry(ctx, t.tx, userID, itemID, true)
}

func (t *inventoryTx) IncreaseQuantity(ctx context.Context, userID, itemID int64, amount int) (int, error) {
	return increaseQuantity(ctx, t.tx, userID, itemID, amount)
}

func (t *inventoryTx) DecreaseQuantity(ctx context.Context, userID, itemID int64, amount int) (int, error) {
	return decreaseQuantity(ctx, t.tx, userID, itemID, amount)
}

func (t *inventoryTx) SetEquipped(ctx context.Context, userID, itemID int64, equipped bool, effect domain.EffectType, value int) error {
	return setEquipped(ctx, t.tx, userID, itemID, equipped, effect, value)
}

func (t *inventoryTx) GetStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	return getStats(ctx, t.tx, userID)
}

func (t *inventoryTx) ApplyStatDelta(ctx context.Context, userID int64, stat domain.Stat, delta int) (*domain.UserStats, error) {
	return applyStatDelta(ctx, t.tx, userID, stat, delta)
}

func (t *inventoryTx) UpsertItem(ctx context.Context, def domain.ItemDefinition) (*domain.Item, error) {
	return upsertItem(ctx, t.tx, def)
}

func (t *inventoryTx) RestockItem(ctx context.Context, itemID int64, quantity int) (int64, error) {
	return restockItem(ctx, t.tx, itemID, quantity)
}
