package discord

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/handler"
)

func TestInventoryCommand_Empty(t *testing.T) {
	tc := SetupTestContext(t)
	cmd, h := InventoryCommand()

	tc.HandleRegister(7)
	tc.Mux.HandleFunc("GET /api/v1/users/7/inventory", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, handler.InventoryResponse{UserID: 7, Items: []domain.InventorySlot{}})
	})

	h(tc.Session, commandInteraction(cmd.Name), tc.APIClient)

	embed := tc.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Title, "Tester's Inventory")
	assert.Equal(t, MsgEmptyInventory, embed.Description)
}

func TestInventoryCommand_WithItems(t *testing.T) {
	tc := SetupTestContext(t)
	cmd, h := InventoryCommand()

	tc.HandleRegister(7)
	tc.Mux.HandleFunc("GET /api/v1/users/7/inventory", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, handler.InventoryResponse{UserID: 7, Items: []domain.InventorySlot{
			{ItemID: 1, Name: "Health Potion", Type: domain.ItemTypeConsumable, Effect: domain.EffectHp, EffectValue: 30, Quantity: 3},
			{ItemID: 2, Name: "Iron Sword", Type: domain.ItemTypeEquipment, Effect: domain.EffectAttack, EffectValue: 5, Quantity: 1, Equipped: true},
		}})
	})

	h(tc.Session, commandInteraction(cmd.Name), tc.APIClient)

	embed := tc.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "**Health Potion** x3")
	assert.Contains(t, embed.Description, "+30 HP")
	assert.Contains(t, embed.Description, "_equipped_")
}

func TestStatsCommand(t *testing.T) {
	tc := SetupTestContext(t)
	cmd, h := StatsCommand()

	tc.HandleRegister(7)
	tc.Mux.HandleFunc("GET /api/v1/users/7/stats", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.UserStats{UserID: 7, HP: 80, Attack: 5, Defense: 2})
	})

	h(tc.Session, commandInteraction(cmd.Name), tc.APIClient)

	embed := tc.LastEmbed()
	require.NotNil(t, embed)
	assert.Contains(t, embed.Description, "80/100")
}

func TestStatsCommand_NotInitialized(t *testing.T) {
	tc := SetupTestContext(t)
	cmd, h := StatsCommand()

	tc.HandleRegister(7)
	tc.Mux.HandleFunc("GET /api/v1/users/7/stats", func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, handler.ErrMsgStatsNotFoundError)
	})

	h(tc.Session, commandInteraction(cmd.Name), tc.APIClient)

	assert.Nil(t, tc.LastEmbed())
	assert.Equal(t, MsgStatsNotFound, tc.LastContent())
}
