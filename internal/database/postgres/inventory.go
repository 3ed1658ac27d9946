package postgres

import (
	"context"
	"fmt"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

func getEntry(ctx context.Context, q querier, userID, itemID int64, forUpdate bool) (*domain.InventoryEntry, error) {
	query := `
		SELECT quantity, equipped, equipped_effect_type, equipped_effect_value
		FROM user_inventory WHERE user_id = $1 AND item_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	entry := domain.InventoryEntry{UserID: userID, ItemID: itemID}
	var effect string
	err := q.QueryRow(ctx, query, userID, itemID).Scan(&entry.Quantity, &entry.Equipped, &effect, &entry.EquippedValue)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToLockEntry, err)
	}
	entry.EquippedEffect = domain.EffectType(effect)
	return &entry, nil
}

func increaseQuantity(ctx context.Context, q querier, userID, itemID int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidQuantity)
	}

	var quantity int
	err := q.QueryRow(ctx, `
		INSERT INTO user_inventory (user_id, item_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = user_inventory.quantity + EXCLUDED.quantity
		RETURNING quantity`,
		userID, itemID, amount).Scan(&quantity)
	if err != nil {
		if fkErr := foreignKeyErr(err); fkErr != nil {
			return 0, fmt.Errorf("%w: user %d item %d", fkErr, userID, itemID)
		}
		return 0, wrapErr(ErrMsgFailedToIncreaseQuantity, err)
	}
	return quantity, nil
}

func decreaseQuantity(ctx context.Context, q querier, userID, itemID int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrMsgInvalidQuantity)
	}

	entry, err := getEntry(ctx, q, userID, itemID, true)
	if err != nil {
		return 0, err
	}
	held := 0
	if entry != nil {
		held = entry.Quantity
	}
	if held < amount {
		return 0, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientQuantity, held, amount)
	}

	remaining := held - amount
	if remaining == 0 {
		_, err = q.Exec(ctx, `DELETE FROM user_inventory WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	} else {
		_, err = q.Exec(ctx, `UPDATE user_inventory SET quantity = $3 WHERE user_id = $1 AND item_id = $2`, userID, itemID, remaining)
	}
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToDecreaseQuantity, err)
	}
	return remaining, nil
}

func setEquipped(ctx context.Context, q querier, userID, itemID int64, equipped bool, effect domain.EffectType, value int) error {
	if !equipped {
		effect, value = domain.EffectNone, 0
	}
	tag, err := q.Exec(ctx, `
		UPDATE user_inventory
		SET equipped = $3, equipped_effect_type = $4, equipped_effect_value = $5
		WHERE user_id = $1 AND item_id = $2`,
		userID, itemID, equipped, string(effect), value)
	if err != nil {
		return wrapErr(ErrMsgFailedToSetEquipped, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %d holds no item %d", domain.ErrInsufficientQuantity, userID, itemID)
	}
	return nil
}

// GetQuantity returns how many units of itemID userID holds, 0 when none
func (s *Store) GetQuantity(ctx context.Context, userID, itemID int64) (int, error) {
	var quantity int
	err := s.pool.QueryRow(ctx, `SELECT quantity FROM user_inventory WHERE user_id = $1 AND item_id = $2`, userID, itemID).Scan(&quantity)
	if isNoRows(err) {
		return 0, nil
	}
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToGetQuantity, err)
	}
	return quantity, nil
}

// ListUserInventory returns every held item of userID joined with the catalog
func (s *Store) ListUserInventory(ctx context.Context, userID int64) ([]domain.InventorySlot, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, i.name, i.description, i.type, i.effect_type, i.effect_value, ui.quantity, ui.equipped
		FROM user_inventory ui
		JOIN items i ON i.id = ui.item_id
		WHERE ui.user_id = $1
		ORDER BY i.name`, userID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListInventory, err)
	}
	defer rows.Close()

	slots := []domain.InventorySlot{}
	for rows.Next() {
		var (
			slot     domain.InventorySlot
			itemType int16
			effect   string
		)
		if err := rows.Scan(&slot.ItemID, &slot.Name, &slot.Description, &itemType, &effect, &slot.EffectValue, &slot.Quantity, &slot.Equipped); err != nil {
			return nil, wrapErr(ErrMsgFailedToListInventory, err)
		}
		slot.Type = domain.ItemType(itemType)
		slot.Effect = domain.EffectType(effect)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(ErrMsgFailedToListInventory, err)
	}
	return slots, nil
}
