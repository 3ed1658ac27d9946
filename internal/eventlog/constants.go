package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Event payload could not be encoded, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys
const (
	LogFieldType         = "type"
	LogFieldUserID       = "user_id"
	LogFieldError        = "error"
	LogFieldRetention    = "retention"
	LogFieldDuration     = "duration"
	LogFieldDeletedCount = "deleted_count"
)

// DefaultHistoryLimit caps user history reads when no limit is given
const DefaultHistoryLimit = 50
