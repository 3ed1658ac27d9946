package postgres

import (
	"context"
	"fmt"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

const itemColumns = `id, name, description, type, effect_type, effect_value, created_at, updated_at`

func scanItem(row interface{ Scan(dest ...any) error }) (*domain.Item, error) {
	var (
		item     domain.Item
		itemType int16
		effect   string
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &itemType, &effect, &item.EffectValue, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.Type = domain.ItemType(itemType)
	item.Effect = domain.EffectType(effect)
	return &item, nil
}

func upsertItem(ctx context.Context, q querier, def domain.ItemDefinition) (*domain.Item, error) {
	row := q.QueryRow(ctx, `
		INSERT INTO items (name, description, type, effect_type, effect_value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			type = EXCLUDED.type,
			effect_type = EXCLUDED.effect_type,
			effect_value = EXCLUDED.effect_value,
			updated_at = NOW()
		RETURNING `+itemColumns,
		def.Name, def.Description, int16(def.Type), string(def.Effect), def.EffectValue)

	item, err := scanItem(row)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToUpsertItem, err)
	}
	return item, nil
}

func restockItem(ctx context.Context, q querier, itemID int64, quantity int) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidQuantity)
	}
	tag, err := q.Exec(ctx, `UPDATE user_inventory SET quantity = $2 WHERE item_id = $1`, itemID, quantity)
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToRestockItem, err)
	}
	return tag.RowsAffected(), nil
}

// UpsertItem inserts def or overwrites the item with the same name
func (s *Store) UpsertItem(ctx context.Context, def domain.ItemDefinition) (*domain.Item, error) {
	return upsertItem(ctx, s.pool, def)
}

// RestockItem forces quantity onto every ledger row that references itemID
func (s *Store) RestockItem(ctx context.Context, itemID int64, quantity int) (int64, error) {
	return restockItem(ctx, s.pool, itemID, quantity)
}

// GetItemByID returns a catalog item or domain.ErrItemNotFound
func (s *Store) GetItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := scanItem(s.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, id)
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// GetItemByName returns a catalog item or domain.ErrItemNotFound
func (s *Store) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	item, err := scanItem(s.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE name = $1`, name))
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListItems returns the whole catalog ordered by name
func (s *Store) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY name`)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, wrapErr(ErrMsgFailedToListItems, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// GetSyncHash returns the stored hash for key, or "" when nothing was synced yet
func (s *Store) GetSyncHash(ctx context.Context, key string) (string, error) {
	var hash string
	err := s.pool.QueryRow(ctx, `SELECT file_hash FROM sync_metadata WHERE config_name = $1`, key).Scan(&hash)
	if isNoRows(err) {
		return "", nil
	}
	if err != nil {
		return "", wrapErr(ErrMsgFailedToGetSyncHash, err)
	}
	return hash, nil
}

// SetSyncHash records hash as the last synced version of key
func (s *Store) SetSyncHash(ctx context.Context, key, hash string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sync_metadata (config_name, file_hash, last_synced_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (config_name) DO UPDATE SET file_hash = EXCLUDED.file_hash, last_synced_at = NOW()`,
		key, hash)
	if err != nil {
		return wrapErr(ErrMsgFailedToSetSyncHash, err)
	}
	return nil
}
