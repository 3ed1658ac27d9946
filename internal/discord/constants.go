package discord

import "time"

// API client defaults
const (
	DefaultHTTPTimeout = 10 * time.Second
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 500 * time.Millisecond

	// CommandTimeout bounds the API work behind one slash command
	CommandTimeout = 10 * time.Second
)

// DiscordUsernamePrefix namespaces game usernames created for Discord accounts
const DiscordUsernamePrefix = "discord:"

// Discord limits
const (
	MaxAutocompleteChoices = 25
)

// Embed colors
const (
	ColorInventory = 0x9b59b6 // Purple
	ColorStats     = 0x3498db // Blue
	ColorItemUsed  = 0xf39c12 // Orange
	ColorEquip     = 0x2ecc71 // Green
	ColorDiscard   = 0x95a5a6 // Grey
	ColorAdmin     = 0xe74c3c // Red
)

// Footer constants for standardized embed footers
const (
	FooterVespr      = "Vespr"
	FooterVesprAdmin = "Vespr Admin"
)
