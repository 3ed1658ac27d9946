package domain

import (
	"fmt"
	"strings"
)

// Action is what a caller does to a held item.
type Action string

const (
	ActionConsume Action = "consume"
	ActionEquip   Action = "equip"
	ActionUnequip Action = "unequip"
	ActionDelete  Action = "delete"
)

// ParseAction resolves an action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionConsume, ActionEquip, ActionUnequip, ActionDelete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// InventoryEntry is one (user, item) ledger row. Rows with zero quantity do not exist.
type InventoryEntry struct {
	UserID   int64 `json:"user_id"`
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
	Equipped bool  `json:"equipped"`

	// Effect snapshot taken at equip time, reversed on unequip.
	EquippedEffect EffectType `json:"-"`
	EquippedValue  int        `json:"-"`
}

// InventorySlot is an entry joined with its catalog item, as shown to callers.
type InventorySlot struct {
	ItemID      int64      `json:"item_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ItemType   `json:"type"`
	Effect      EffectType `json:"effect_type"`
	EffectValue int        `json:"effect_value"`
	Quantity    int        `json:"quantity"`
	Equipped    bool       `json:"equipped"`
}

// ActionResult reports the outcome of an ActOnItem call.
type ActionResult struct {
	Action    Action    `json:"action"`
	ItemID    int64     `json:"item_id"`
	Remaining int       `json:"remaining"`
	Equipped  bool      `json:"equipped"`
	Stats     UserStats `json:"stats"`
}
