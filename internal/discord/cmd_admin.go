package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var adminPermission int64 = discordgo.PermissionAdministrator

// GiveCommand returns the admin give command definition and handler
func GiveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "give",
		Description:              "[Admin] Give items to a user",
		DefaultMemberPermissions: &adminPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Recipient",
				Required:    true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "item",
				Description:  "Item name",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Quantity (default: 1)",
				Required:    false,
				MinValue:    floatPtr(1),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			opts := optionMap(getOptions(i))
			userOpt, okUser := opts["user"]
			itemOpt, okItem := opts["item"]
			if !okUser || !okItem {
				return "", errors.New(MsgMissingItemInput)
			}
			quantity := 1
			if q, ok := opts["quantity"]; ok {
				quantity = int(q.IntValue())
			}

			// Snowflake of the chosen user; resolving the full user needs session state
			recipientID := fmt.Sprint(userOpt.Value)
			recipient, err := client.RegisterUser(ctx, recipientID)
			if err != nil {
				return "", err
			}
			item, err := client.FindItem(ctx, itemOpt.StringValue())
			if err != nil {
				return "", err
			}
			total, err := client.AssignItem(ctx, recipient.ID, item.ID, quantity)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Gave %d **%s** to <@%s>. They now hold %d.", quantity, item.Name, recipientID, total), nil
		}, ResponseConfig{
			Title:  "🎁 Items Given",
			Color:  ColorAdmin,
			Footer: FooterVesprAdmin,
		})
	}

	return cmd, handler
}
