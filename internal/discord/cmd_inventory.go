package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "View your inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			gameUser, err := registerInteractionUser(ctx, i, client)
			if err != nil {
				return "", err
			}
			slots, err := client.GetInventory(ctx, gameUser.ID)
			if err != nil {
				return "", err
			}
			return formatInventory(slots), nil
		}, ResponseConfig{
			Title: fmt.Sprintf("%s's Inventory", user.Username),
			Color: ColorInventory,
		})
	}

	return cmd, handler
}

// StatsCommand returns the stats command definition and handler
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "View your HP, attack and defense",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)
		handleEmbedResponse(s, i, func(ctx context.Context) (string, error) {
			gameUser, err := registerInteractionUser(ctx, i, client)
			if err != nil {
				return "", err
			}
			stats, err := client.GetStats(ctx, gameUser.ID)
			if err != nil {
				return "", err
			}
			return formatStats(*stats), nil
		}, ResponseConfig{
			Title: fmt.Sprintf("%s's Stats", user.Username),
			Color: ColorStats,
		})
	}

	return cmd, handler
}
