package discord

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "use", "equip", "unequip", "discard":
		handleItemAutocomplete(s, i, client, true)
	case "give":
		handleItemAutocomplete(s, i, client, false)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// focusedValue returns the lower-cased text the user is typing
func focusedValue(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Focused {
			return strings.ToLower(opt.StringValue())
		}
	}
	return ""
}

// handleItemAutocomplete suggests item names, from the caller's inventory when
// ownedOnly is set and from the catalog otherwise
func handleItemAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, ownedOnly bool) {
	ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
	defer cancel()

	names, err := itemNames(ctx, i, client, ownedOnly)
	if err != nil {
		slog.Error("Failed to load items for autocomplete", "error", err)
	}

	choices := filterChoices(names, focusedValue(i))
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		slog.Error("Failed to send autocomplete choices", "error", err)
	}
}

func itemNames(ctx context.Context, i *discordgo.InteractionCreate, client *APIClient, ownedOnly bool) ([]string, error) {
	if ownedOnly {
		gameUser, err := registerInteractionUser(ctx, i, client)
		if err != nil {
			return nil, err
		}
		slots, err := client.GetInventory(ctx, gameUser.ID)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(slots))
		for _, slot := range slots {
			names = append(names, slot.Name)
		}
		return names, nil
	}

	items, err := client.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}

// filterChoices keeps names containing query, capped at Discord's limit
func filterChoices(names []string, query string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
		if len(choices) >= MaxAutocompleteChoices {
			break
		}
	}
	return choices
}
