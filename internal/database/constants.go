package database

// Pool defaults
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
)

// Error message constants
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log message constants
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
