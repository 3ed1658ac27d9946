package inventory

import "time"

// Service defaults
const (
	DefaultMaxRetries    = 5
	DefaultItemCacheTTL  = 5 * time.Minute
	DefaultItemCacheSize = 1024
	MaxUsernameLength    = 100
)

// Retry backoff bounds for conflicting transactions
const (
	RetryInitialInterval = 10 * time.Millisecond
	RetryMaxInterval     = 250 * time.Millisecond
	RetryMaxElapsed      = 5 * time.Second
)

// Error messages
const (
	ErrMsgNegativeRestock = "initial quantity cannot be negative"
	ErrMsgSingleUnit      = "equip and unequip act on exactly one unit"
	ErrMsgEmptyUsername   = "username is required"
	ErrMsgLongUsername    = "username is too long"
	ErrMsgInvalidRole     = "invalid role"
	ErrMsgStatsInitFailed = "failed to initialize stats for user"
)

// Log messages
const (
	LogMsgItemDefined       = "Item defined"
	LogMsgItemRestocked     = "Restocked existing inventory rows"
	LogMsgItemAssigned      = "Item assigned"
	LogMsgActionApplied     = "Inventory action applied"
	LogMsgActionFailed      = "Inventory action failed"
	LogMsgTxConflictRetry   = "Transaction conflict, retrying"
	LogMsgUserProvisioned   = "User provisioned"
	LogMsgStatsInitialized  = "Initialized user stats"
	LogMsgStatsBatchDone    = "Initialized stats for users without them"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgStatsInitOnCreate = "Initializing stats for new user"
)
