package postgres

// PostgreSQL Error Codes
const (
	PgErrorCodeUniqueViolation      = "23505"
	PgErrorCodeForeignKeyViolation  = "23503"
	PgErrorCodeCheckViolation       = "23514"
	PgErrorCodeSerializationFailure = "40001"
	PgErrorCodeDeadlockDetected     = "40P01"
)

// Foreign key constraint names from the migrations
const (
	ConstraintInventoryUserFK = "user_inventory_user_id_fkey"
	ConstraintInventoryItemFK = "user_inventory_item_id_fkey"
	ConstraintStatsUserFK     = "user_stats_user_id_fkey"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToUpsertItem  = "failed to upsert item"
	ErrMsgFailedToGetItem     = "failed to get item"
	ErrMsgFailedToListItems   = "failed to list items"
	ErrMsgFailedToRestockItem = "failed to restock item"
	ErrMsgFailedToGetSyncHash = "failed to get sync hash"
	ErrMsgFailedToSetSyncHash = "failed to set sync hash"
)

// Error Messages - Stat Operations
const (
	ErrMsgFailedToGetStats        = "failed to get user stats"
	ErrMsgFailedToApplyStatDelta  = "failed to apply stat delta"
	ErrMsgFailedToEnsureStats     = "failed to initialize user stats"
	ErrMsgFailedToInitializeStats = "failed to initialize missing stats"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetQuantity      = "failed to get quantity"
	ErrMsgFailedToListInventory    = "failed to list inventory"
	ErrMsgFailedToLockEntry        = "failed to lock inventory entry"
	ErrMsgFailedToIncreaseQuantity = "failed to increase quantity"
	ErrMsgFailedToDecreaseQuantity = "failed to decrease quantity"
	ErrMsgFailedToSetEquipped      = "failed to update equipped state"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToCheckUser     = "failed to check user"
	ErrMsgFailedToListUsers     = "failed to list users"
	ErrMsgFailedToInsertUser    = "failed to insert user"
	ErrMsgFailedToGetUserByName = "failed to get user by username"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToGetEvents     = "failed to get events"
	ErrMsgFailedToCleanupEvents = "failed to clean up events"
)
