package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/loginwizjd/Vespr-PBBG-Engine-Plugins/internal/domain"
)

// titleCase renders a catalog word for display. A Caser keeps state, so each
// call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// formatEffect renders an item effect such as "+30 HP", or "" when there is none
func formatEffect(effect domain.EffectType, value int) string {
	if effect == "" || effect == domain.EffectNone {
		return ""
	}
	label := strings.ToUpper(string(effect))
	if effect != domain.EffectHp {
		label = titleCase(string(effect))
	}
	return fmt.Sprintf("%+d %s", value, label)
}

// formatSlot renders one inventory line
func formatSlot(slot domain.InventorySlot) string {
	parts := []string{fmt.Sprintf("**%s** x%d", slot.Name, slot.Quantity), titleCase(slot.Type.String())}
	if e := formatEffect(slot.Effect, slot.EffectValue); e != "" {
		parts = append(parts, e)
	}
	line := strings.Join(parts, " · ")
	if slot.Equipped {
		line += " 🛡️ _equipped_"
	}
	return line
}

// formatInventory renders a whole inventory, one slot per line
func formatInventory(slots []domain.InventorySlot) string {
	if len(slots) == 0 {
		return MsgEmptyInventory
	}
	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		lines = append(lines, formatSlot(slot))
	}
	return strings.Join(lines, "\n")
}

// formatStats renders a stat block
func formatStats(stats domain.UserStats) string {
	return fmt.Sprintf("❤️ **HP** %d/%d\n⚔️ **Attack** %d\n🛡️ **Defense** %d",
		stats.HP, domain.MaxHP, stats.Attack, stats.Defense)
}

// formatActionResult renders the outcome of an item action
func formatActionResult(itemName string, quantity int, result domain.ActionResult) string {
	var verb string
	switch result.Action {
	case domain.ActionConsume:
		verb = fmt.Sprintf("%d %s consumed", quantity, itemName)
	case domain.ActionEquip:
		verb = fmt.Sprintf("%s equipped", itemName)
	case domain.ActionUnequip:
		verb = fmt.Sprintf("%s unequipped", itemName)
	case domain.ActionDelete:
		verb = fmt.Sprintf("%d %s discarded", quantity, itemName)
	default:
		verb = titleCase(string(result.Action))
	}
	return fmt.Sprintf("%s\n\n_%s, %d left_", formatStats(result.Stats), verb, result.Remaining)
}
