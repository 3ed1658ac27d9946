package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

const schemaPath = "configs/schemas/items.schema.json"

type fakeWriter struct {
	items   []domain.Item
	created []domain.ItemDefinition
	callers []domain.Caller
	fail    error
}

func (w *fakeWriter) ListItems(ctx context.Context) ([]domain.Item, error) {
	return w.items, nil
}

func (w *fakeWriter) CreateItem(ctx context.Context, caller domain.Caller, def domain.ItemDefinition, initialQuantity int) (*domain.Item, error) {
	if w.fail != nil {
		return nil, w.fail
	}
	w.callers = append(w.callers, caller)
	w.created = append(w.created, def)
	for i := range w.items {
		if w.items[i].Name == def.Name {
			w.items[i].Description, w.items[i].Type = def.Description, def.Type
			w.items[i].Effect, w.items[i].EffectValue = def.Effect, def.EffectValue
			return &w.items[i], nil
		}
	}
	item := domain.Item{
		ID:          int64(len(w.items) + 1),
		Name:        def.Name,
		Description: def.Description,
		Type:        def.Type,
		Effect:      def.Effect,
		EffectValue: def.EffectValue,
	}
	w.items = append(w.items, item)
	return &item, nil
}

type fakeMeta struct {
	hashes map[string]string
}

func (m *fakeMeta) GetSyncHash(ctx context.Context, key string) (string, error) {
	return m.hashes[key], nil
}

func (m *fakeMeta) SetSyncHash(ctx context.Context, key, hash string) error {
	m.hashes[key] = hash
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const seed = `version: "1.0"
items:
  - name: Potion
    type: consumable
    effect_type: hp
    effect_value: 30
  - name: Sword
    type: equipment
    effect_type: attack
    effect_value: 5
  - name: Gold Coin
    type: currency
`

func TestLoader_Parse(t *testing.T) {
	loader := NewLoader(schemaPath)

	t.Run("valid", func(t *testing.T) {
		file, err := loader.Parse([]byte(seed))
		require.NoError(t, err)
		require.Len(t, file.Items, 3)
		assert.Equal(t, "Potion", file.Items[0].Name)
		assert.Equal(t, 30, file.Items[0].EffectValue)
	})

	t.Run("unknown effect is rejected by the schema", func(t *testing.T) {
		_, err := loader.Parse([]byte("version: \"1.0\"\nitems:\n  - name: Ether\n    type: consumable\n    effect_type: mana\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := loader.Parse([]byte("version: \"1.0\"\nitems:\n  - name: Ether\n    type: consumable\n    weight: 3\n"))
		assert.Error(t, err)
	})

	t.Run("empty item list", func(t *testing.T) {
		_, err := loader.Parse([]byte("version: \"1.0\"\nitems: []\n"))
		assert.Error(t, err)
	})
}

func TestLoader_Definitions(t *testing.T) {
	loader := NewLoader(schemaPath)

	t.Run("converts entries", func(t *testing.T) {
		defs, err := loader.Definitions(&File{Items: []Entry{
			{Name: " Sword ", Type: "equipment", EffectType: "attack", EffectValue: 5},
			{Name: "Ore", Type: "4"},
		}})
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "Sword", defs[0].Name)
		assert.Equal(t, domain.ItemTypeEquipment, defs[0].Type)
		assert.Equal(t, domain.EffectAttack, defs[0].Effect)
		assert.Equal(t, domain.ItemTypeCraftingItem, defs[1].Type)
		assert.Equal(t, domain.EffectNone, defs[1].Effect)
	})

	t.Run("duplicate names", func(t *testing.T) {
		_, err := loader.Definitions(&File{Items: []Entry{
			{Name: "Potion", Type: "consumable"},
			{Name: "potion", Type: "consumable"},
		}})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "duplicate item name")
	})

	t.Run("unknown effect", func(t *testing.T) {
		_, err := loader.Definitions(&File{Items: []Entry{{Name: "Ether", Type: "consumable", EffectType: "mana"}}})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("nil file", func(t *testing.T) {
		_, err := loader.Definitions(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoader_Sync(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(schemaPath)
	path := writeFile(t, seed)
	writer := &fakeWriter{}
	meta := &fakeMeta{hashes: map[string]string{}}

	result, err := loader.Sync(ctx, path, writer, meta)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Inserted)
	assert.Zero(t, result.Updated)
	assert.NotEmpty(t, meta.hashes[SyncKey])
	for _, caller := range writer.callers {
		assert.True(t, caller.IsAdmin())
	}

	t.Run("unchanged file is skipped", func(t *testing.T) {
		result, err := loader.Sync(ctx, path, writer, meta)
		require.NoError(t, err)
		assert.True(t, result.Unchanged)
		assert.Len(t, writer.created, 3)
	})

	t.Run("changed file updates only what differs", func(t *testing.T) {
		changed := writeFile(t, seed+"  - name: Buckler\n    type: equipment\n    effect_type: defense\n    effect_value: 4\n")
		writer.items[1].EffectValue = 9

		result, err := loader.Sync(ctx, changed, writer, meta)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, 2, result.Skipped)
		assert.Equal(t, 5, writer.items[1].EffectValue)
	})
}

func TestLoader_SyncFailureKeepsHash(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(schemaPath)
	writer := &fakeWriter{fail: errors.New("db down")}
	meta := &fakeMeta{hashes: map[string]string{}}

	_, err := loader.Sync(ctx, writeFile(t, seed), writer, meta)
	require.Error(t, err)
	assert.Empty(t, meta.hashes[SyncKey], "a failed sync must be retried next start")
}

func TestLoader_ShippedSeedFile(t *testing.T) {
	loader := NewLoader(schemaPath)

	file, _, err := loader.Load(filepath.Join("..", "..", "configs", "items", "items.yaml"))
	require.NoError(t, err)
	defs, err := loader.Definitions(file)
	require.NoError(t, err)
	assert.NotEmpty(t, defs)
}
