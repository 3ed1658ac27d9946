package discord

// Friendly message constants for Discord responses
const (
	// Items & Inventory
	MsgItemNotFound     = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgNotEnoughItems   = "🎒 **Not Enough Items**\nYou don't have enough of that item."
	MsgAlreadyEquipped  = "🛡️ **Already Equipped**\nYou are already using that."
	MsgNotEquipped      = "🛡️ **Not Equipped**\nYou aren't using that right now."
	MsgEmptyInventory   = "Your inventory is empty."
	MsgMissingItemInput = "missing required item argument"

	// User
	MsgUserNotFound  = "👤 **User Not Found**\nHave they registered yet?"
	MsgStatsNotFound = "📊 **No Stats Yet**\nTry again in a moment."
	MsgForbidden     = "🔒 **Not Allowed**\nYou can't do that."

	MsgConnectionError = "Error connecting to game server."
	MsgGenericError    = "❌ Something went wrong."
)
