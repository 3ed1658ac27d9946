package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ItemType classifies catalog entries. The numeric codes are persisted.
type ItemType int

const (
	ItemTypeEquipment    ItemType = 1
	ItemTypeConsumable   ItemType = 2
	ItemTypeCurrency     ItemType = 3
	ItemTypeCraftingItem ItemType = 4
)

var itemTypeNames = map[ItemType]string{
	ItemTypeEquipment:    "equipment",
	ItemTypeConsumable:   "consumable",
	ItemTypeCurrency:     "currency",
	ItemTypeCraftingItem: "crafting_item",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	_, ok := itemTypeNames[t]
	return ok
}

// ParseItemType accepts either the numeric code ("2") or the name ("consumable").
func ParseItemType(s string) (ItemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		t := ItemType(n)
		if !t.Valid() {
			return 0, fmt.Errorf("%w: unknown item type %d", ErrValidation, n)
		}
		return t, nil
	}
	s = strings.ReplaceAll(s, " ", "_")
	for t, name := range itemTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown item type %q", ErrValidation, s)
}

// EffectType is the stat an item modifies. The set is closed; unknown names are
// rejected when an item is written to the catalog.
type EffectType string

const (
	EffectNone    EffectType = "none"
	EffectHp      EffectType = "hp"
	EffectAttack  EffectType = "attack"
	EffectDefense EffectType = "defense"
)

// ParseEffectType resolves an effect name. An empty name means no effect.
func ParseEffectType(s string) (EffectType, error) {
	switch EffectType(strings.ToLower(strings.TrimSpace(s))) {
	case "", EffectNone:
		return EffectNone, nil
	case EffectHp:
		return EffectHp, nil
	case EffectAttack:
		return EffectAttack, nil
	case EffectDefense:
		return EffectDefense, nil
	default:
		return "", fmt.Errorf("%w: unknown effect type %q", ErrValidation, s)
	}
}

// Item is a catalog entry.
type Item struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ItemType   `json:"type"`
	Effect      EffectType `json:"effect_type"`
	EffectValue int        `json:"effect_value"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ItemDefinition is the writable part of an Item, keyed by Name.
type ItemDefinition struct {
	Name        string
	Description string
	Type        ItemType
	Effect      EffectType
	EffectValue int
}

// Normalize trims the definition and checks it against the catalog rules.
func (d ItemDefinition) Normalize() (ItemDefinition, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	if d.Name == "" {
		return d, fmt.Errorf("%w: %s", ErrValidation, ErrMsgEmptyItemName)
	}
	if !d.Type.Valid() {
		return d, fmt.Errorf("%w: unknown item type %d", ErrValidation, int(d.Type))
	}
	effect, err := ParseEffectType(string(d.Effect))
	if err != nil {
		return d, err
	}
	d.Effect = effect
	return d, nil
}
