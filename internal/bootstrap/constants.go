package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Vespr inventory"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Database
// =============================================================================

const (
	LogMsgSchemaReady         = "Database schema ready"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrateSchema = "failed to migrate schema"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsInitializerRegistered = "Stats initializer registered"
	LogMsgEventLogRegistered         = "Event log registered"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// BackgroundWorkers is the worker pool size for scheduled jobs
	BackgroundWorkers   = 1
	// BackgroundQueueSize bounds pending scheduled jobs
	BackgroundQueueSize = 8

	LogMsgBackgroundJobsStarted = "Background jobs started"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog   = "Syncing item catalog from YAML config..."
	LogMsgCatalogSynced    = "Item catalog synced successfully"
	LogMsgCatalogUnchanged = "Item catalog config unchanged, sync skipped"
	LogMsgStatsBackfilled  = "Initialized missing user stats"

	ErrMsgFailedSyncCatalog  = "failed to sync item catalog"
	ErrMsgFailedBackfillStat = "failed to initialize missing stats"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgTracingFlushFailed    = "Tracing shutdown failed"
	LogMsgBackgroundJobsStopped = "Background jobs stopped"
)
