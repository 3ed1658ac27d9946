package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// ItemCommandConfig defines a standard item+quantity action command
type ItemCommandConfig struct {
	Name        string
	Description string
	Action      domain.Action
	// WithQuantity adds the optional quantity argument
	WithQuantity bool
	ResultTitle  string
	ResultColor  int
}

// CreateItemActionCommand returns a command that applies cfg.Action to an
// item the caller holds
func CreateItemActionCommand(cfg ItemCommandConfig) (*discordgo.ApplicationCommand, CommandHandler) {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "item",
			Description:  "Item name",
			Required:     true,
			Autocomplete: true,
		},
	}
	if cfg.WithQuantity {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "quantity",
			Description: "Quantity (default: 1)",
			Required:    false,
			MinValue:    floatPtr(1),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        cfg.Name,
		Description: cfg.Description,
		Options:     options,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			opts := optionMap(getOptions(i))
			itemOpt, ok := opts["item"]
			if !ok {
				return "", errors.New(MsgMissingItemInput)
			}
			quantity := 1
			if q, ok := opts["quantity"]; ok {
				quantity = int(q.IntValue())
			}

			gameUser, err := registerInteractionUser(ctx, i, client)
			if err != nil {
				return "", err
			}
			item, err := client.FindItem(ctx, itemOpt.StringValue())
			if err != nil {
				return "", err
			}
			result, err := client.ActOnItem(ctx, gameUser.ID, item.ID, cfg.Action, quantity)
			if err != nil {
				return "", err
			}
			return formatActionResult(item.Name, quantity, *result), nil
		}, ResponseConfig{
			Title: cfg.ResultTitle,
			Color: cfg.ResultColor,
		})
	}

	return cmd, handler
}

// UseItemCommand consumes items
func UseItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateItemActionCommand(ItemCommandConfig{
		Name:         "use",
		Description:  "Use an item from your inventory",
		Action:       domain.ActionConsume,
		WithQuantity: true,
		ResultTitle:  "🧪 Item Used",
		ResultColor:  ColorItemUsed,
	})
}

// EquipCommand equips an item
func EquipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateItemActionCommand(ItemCommandConfig{
		Name:        "equip",
		Description: "Equip an item for its bonus",
		Action:      domain.ActionEquip,
		ResultTitle: "🛡️ Item Equipped",
		ResultColor: ColorEquip,
	})
}

// UnequipCommand removes an equipped item's bonus
func UnequipCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateItemActionCommand(ItemCommandConfig{
		Name:        "unequip",
		Description: "Unequip an item",
		Action:      domain.ActionUnequip,
		ResultTitle: "🛡️ Item Unequipped",
		ResultColor: ColorEquip,
	})
}

// DiscardCommand deletes items
func DiscardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateItemActionCommand(ItemCommandConfig{
		Name:         "discard",
		Description:  "Throw items away",
		Action:       domain.ActionDelete,
		WithQuantity: true,
		ResultTitle:  "🗑️ Item Discarded",
		ResultColor:  ColorDiscard,
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
