package database

import "time"

const (
	DefaultMaxConnections  = 10
	DefaultApplicationName = "vespr-inventory"

	// PingTimeout bounds the connectivity check in NewPool
	PingTimeout = 10 * time.Second

	RuntimeParamApplicationName = "application_name"
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

const (
	LogMsgConnected        = "Connected to inventory database"
	LogMsgMigrationApplied = "Applied migration"
)
