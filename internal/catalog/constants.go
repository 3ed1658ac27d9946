package catalog

// SyncKey is the sync_metadata key under which the seed file hash is stored
const SyncKey = "items.yaml"

// Error messages
const (
	ErrMsgReadFileFailed     = "failed to read catalog file: %w"
	ErrMsgParseFileFailed    = "failed to parse catalog file: %w"
	ErrMsgSchemaFailed       = "schema validation failed for %s: %w"
	ErrMsgNoItems            = "no items defined"
	ErrMsgDuplicateName      = "duplicate item name %q"
	ErrMsgListItemsFailed    = "failed to list existing items: %w"
	ErrMsgDefineItemFailed   = "failed to define item %q: %w"
	ErrMsgGetSyncHashFailed  = "failed to read sync hash: %w"
	ErrFmtInvalidItemAtIndex = "%w: item %d (%s): %w"
)

// Log messages
const (
	LogMsgUnchanged         = "Catalog file unchanged, skipping sync"
	LogMsgSyncCompleted     = "Catalog sync completed"
	LogMsgInsertedItem      = "Inserted item"
	LogMsgUpdatedItem       = "Updated item"
	LogMsgSetSyncHashFailed = "Failed to record catalog sync hash"
)
